package consts

const (
	ChatMessageRoleUser      = "user"
	ChatMessageRoleAssistant = "assistant"
	ChatMessageRoleSystem    = "system"
	ChatMessageRoleTool      = "tool"
)

const (
	ChatCacheKeyPrefix     = "assistant:chat:"
	ChatCacheExpireSeconds = 60 * 60
	ChatHistoryWindow      = 20
)

const (
	ChatRespTypeChat         = "chat"
	ChatRespTypeToolExecuted = "tool_executed"
)
