// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type ChatMessageReq struct {
	Message        string `json:"message"`
	ConversationId string `json:"conversationId,optional"`
}

type ToolError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type ToolResult struct {
	Success bool        `json:"success"`
	Tool    string      `json:"tool"`
	Result  interface{} `json:"result,omitempty"`
	Error   *ToolError  `json:"error,omitempty"`
}

type ChatMessageResp struct {
	Type           string      `json:"type"` // chat | tool_executed
	ConversationId string      `json:"conversationId"`
	Response       string      `json:"response,omitempty"`
	Tool           string      `json:"tool,omitempty"`
	ToolResult     *ToolResult `json:"toolResult,omitempty"`
}

type ListToolsResp struct {
	AvailableTools []string `json:"availableTools"`
	Count          int      `json:"count"`
}

type SpeakReq struct {
	ConversationId string `form:"conversationId,optional"`
	Language       string `form:"language,optional"`
}

type SpeakResp struct {
	TranscribedText string          `json:"transcribedText"`
	Language        string          `json:"language"`
	Result          ChatMessageResp `json:"result"`
}

type SpotifyCallbackReq struct {
	Code string `form:"code"`
}

type SpotifyCallbackResp struct {
	Authenticated bool   `json:"authenticated"`
	ExpiresAt     string `json:"expiresAt"`
}
