package chat

import (
	"encoding/json"

	chatconsts "github.com/fermofou/llm-speak/app/assistant/pkg/consts"

	openai "github.com/sashabaranov/go-openai"
)

// collectHistory loads the most recent messages of a conversation from the
// Redis cache. A cache failure only loses context, it never fails the turn.
func (l *MessageLogic) collectHistory(convID string) []openai.ChatCompletionMessage {
	cacheKey := chatconsts.ChatCacheKeyPrefix + convID

	rawMsgs, err := l.svcCtx.RedisClient.Lrange(cacheKey, -chatconsts.ChatHistoryWindow, -1)
	if err != nil {
		l.Logger.Errorf("failed to get history from redis, key: %s, err: %v", cacheKey, err)
		return nil
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(rawMsgs))
	for idx, raw := range rawMsgs {
		var decoded openai.ChatCompletionMessage
		if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
			l.Logger.Errorf("decode cached message failed, key: %s, index: %d, err: %v", cacheKey, idx, err)
			continue
		}
		messages = append(messages, decoded)
	}
	return messages
}

// appendHistory pushes this turn's messages onto the conversation list and
// refreshes its expiry so active conversations stay warm.
func (l *MessageLogic) appendHistory(convID string, msgs ...openai.ChatCompletionMessage) {
	cacheKey := chatconsts.ChatCacheKeyPrefix + convID

	for _, msg := range msgs {
		encoded, err := json.Marshal(msg)
		if err != nil {
			l.Logger.Errorf("failed to marshal message, err: %v", err)
			continue
		}
		if _, err := l.svcCtx.RedisClient.Rpush(cacheKey, string(encoded)); err != nil {
			l.Logger.Errorf("fail to push message to redis, key: %s, err: %v", cacheKey, err)
		}
	}

	if err := l.svcCtx.RedisClient.Expire(cacheKey, chatconsts.ChatCacheExpireSeconds); err != nil {
		l.Logger.Errorf("fail to refresh history expiry, key: %s, err: %v", cacheKey, err)
	}
}
