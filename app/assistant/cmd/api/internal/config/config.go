// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package config

import "github.com/zeromicro/go-zero/rest"

type Config struct {
	rest.RestConf

	Ollama struct {
		Url            string
		Model          string
		TimeoutSeconds int `json:",default=30"`
	}

	Redis struct {
		Host string
		Type string `json:",default=node"`
		Pass string `json:",optional"`
	}

	OpenWeather struct {
		ApiKey string `json:",optional"`
	} `json:",optional"`

	Spotify struct {
		ClientId     string `json:",optional"`
		ClientSecret string `json:",optional"`
		RedirectUri  string `json:",optional"`
	} `json:",optional"`

	Speech struct {
		Url      string `json:",optional"`
		Language string `json:",default=en"`
	} `json:",optional"`

	Audit struct {
		Enabled bool   `json:",default=true"`
		File    string `json:",default=logs/tool_audit.log"`
	} `json:",optional"`

	// Declared for deployment parity; enforcement is a planned follow-up.
	RateLimit struct {
		MaxRequestsPerMinute  int `json:",default=30"`
		MaxToolCallsPerMinute int `json:",default=10"`
	} `json:",optional"`
}
