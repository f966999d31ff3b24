// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package svc

import (
	"context"
	"strings"
	"time"

	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/config"
	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/speech"
	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/spotify"
	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/toolgate"
	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/weather"
	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/wikipedia"

	openai "github.com/sashabaranov/go-openai"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type ServiceContext struct {
	Config config.Config

	RedisClient *redis.Redis
	LlmClient   *openai.Client

	SpotifyClient *spotify.Client
	SpeechClient  *speech.Client // nil when no ASR service is configured

	Gate *toolgate.Gate
}

func NewServiceContext(c config.Config) *ServiceContext {
	redisClient := redis.New(c.Redis.Host, func(r *redis.Redis) {
		r.Type = c.Redis.Type
		r.Pass = c.Redis.Pass
	})

	// Ollama exposes an OpenAI-compatible API; the key is a placeholder.
	llmCfg := openai.DefaultConfig("ollama")
	llmCfg.BaseURL = strings.TrimSuffix(c.Ollama.Url, "/")
	llmClient := openai.NewClientWithConfig(llmCfg)

	weatherClient := weather.NewClient(c.OpenWeather.ApiKey)
	wikiClient := wikipedia.NewClient()
	spotifyClient := spotify.NewClient(c.Spotify.ClientId, c.Spotify.ClientSecret, c.Spotify.RedirectUri)

	var speechClient *speech.Client
	if c.Speech.Url != "" {
		var err error
		speechClient, err = speech.NewClient(c.Speech.Url)
		logx.Must(err)
	} else {
		logx.Infof("speech endpoint not configured, /chat/speak is disabled")
	}

	var sink toolgate.Sink
	if c.Audit.Enabled {
		fileSink, err := toolgate.NewFileSink(c.Audit.File)
		logx.Must(err)
		sink = fileSink
	}
	recorder := toolgate.NewRecorder(sink, c.Audit.Enabled, []string{
		c.OpenWeather.ApiKey,
		c.Spotify.ClientSecret,
	})

	// refuses to start when a whitelisted tool lacks a schema or a binding
	gate := toolgate.MustNewGate(
		newBindings(spotifyClient, weatherClient, wikiClient),
		recorder,
		time.Duration(c.Ollama.TimeoutSeconds)*time.Second,
	)

	return &ServiceContext{
		Config:        c,
		RedisClient:   redisClient,
		LlmClient:     llmClient,
		SpotifyClient: spotifyClient,
		SpeechClient:  speechClient,
		Gate:          gate,
	}
}

// newBindings maps every whitelisted tool to its capability function. The
// gate's startup check fails if this table and the whitelist ever drift.
func newBindings(spotifyCli *spotify.Client, weatherCli *weather.Client, wikiCli *wikipedia.Client) map[toolgate.ToolName]toolgate.CapabilityFunc {
	return map[toolgate.ToolName]toolgate.CapabilityFunc{
		toolgate.ToolPlaySong: func(ctx context.Context, args toolgate.Args) (any, error) {
			track, err := spotifyCli.PlaySong(ctx, args.String("song"))
			if err != nil {
				return nil, err
			}
			return map[string]any{"message": "playing " + track.Name, "track": track}, nil
		},
		toolgate.ToolPausePlayback: func(ctx context.Context, args toolgate.Args) (any, error) {
			if err := spotifyCli.Pause(ctx); err != nil {
				return nil, err
			}
			return map[string]any{"message": "playback paused"}, nil
		},
		toolgate.ToolResumePlayback: func(ctx context.Context, args toolgate.Args) (any, error) {
			if err := spotifyCli.Resume(ctx); err != nil {
				return nil, err
			}
			return map[string]any{"message": "playback resumed"}, nil
		},
		toolgate.ToolNextTrack: func(ctx context.Context, args toolgate.Args) (any, error) {
			if err := spotifyCli.NextTrack(ctx); err != nil {
				return nil, err
			}
			return map[string]any{"message": "skipped to next track"}, nil
		},
		toolgate.ToolPreviousTrack: func(ctx context.Context, args toolgate.Args) (any, error) {
			if err := spotifyCli.PreviousTrack(ctx); err != nil {
				return nil, err
			}
			return map[string]any{"message": "returned to previous track"}, nil
		},
		toolgate.ToolGetCurrentTrack: func(ctx context.Context, args toolgate.Args) (any, error) {
			track, err := spotifyCli.CurrentTrack(ctx)
			if err != nil {
				return nil, err
			}
			if track == nil {
				return map[string]any{"message": "nothing is playing"}, nil
			}
			return map[string]any{"track": track}, nil
		},
		toolgate.ToolCheckWeather: func(ctx context.Context, args toolgate.Args) (any, error) {
			return weatherCli.CurrentWeather(ctx, args.String("city"))
		},
		toolgate.ToolGetForecast: func(ctx context.Context, args toolgate.Args) (any, error) {
			return weatherCli.Forecast(ctx, args.String("city"), args.Int("days"))
		},
		toolgate.ToolSearchWiki: func(ctx context.Context, args toolgate.Args) (any, error) {
			return wikiCli.Search(ctx, args.String("query"), args.Int("sentences"))
		},
		toolgate.ToolGetWikiSummary: func(ctx context.Context, args toolgate.Args) (any, error) {
			return wikiCli.Summary(ctx, args.String("page_title"))
		},
	}
}
