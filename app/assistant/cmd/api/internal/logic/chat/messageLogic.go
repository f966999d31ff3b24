// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package chat

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/svc"
	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/toolgate"
	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/types"
	chatconsts "github.com/fermofou/llm-speak/app/assistant/pkg/consts"
	"github.com/fermofou/llm-speak/pkg/xerr"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"github.com/zeromicro/go-zero/core/logx"
)

type MessageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 处理一轮文字对话，模型可以触发工具调用
func NewMessageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *MessageLogic {
	return &MessageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *MessageLogic) Message(req *types.ChatMessageReq) (*types.ChatMessageResp, error) {
	trimmedMsg := strings.TrimSpace(req.Message)
	if trimmedMsg == "" {
		return nil, xerr.NewErrCode(xerr.CHAT_EMPTY_MESSAGE_ERROR)
	}

	convID := strings.TrimSpace(req.ConversationId)
	if convID == "" {
		convID = uuid.New().String()
	}

	history := l.collectHistory(convID)

	userMsg := openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: trimmedMsg,
	}
	messages := append(history, userMsg)

	llmCtx, cancel := context.WithTimeout(l.ctx,
		time.Duration(l.svcCtx.Config.Ollama.TimeoutSeconds)*time.Second)
	defer cancel()

	chatResp, err := l.svcCtx.LlmClient.CreateChatCompletion(llmCtx, openai.ChatCompletionRequest{
		Model:      l.svcCtx.Config.Ollama.Model,
		Messages:   messages,
		Tools:      toolgate.Definitions(),
		ToolChoice: "auto",
	})
	if err != nil {
		l.Logger.Errorf("llm chat completion failed, model=%s, err=%v", l.svcCtx.Config.Ollama.Model, err)
		return nil, xerr.NewErrCode(xerr.CHAT_LLM_ERROR)
	}
	if len(chatResp.Choices) == 0 {
		return nil, xerr.NewErrCode(xerr.CHAT_LLM_ERROR)
	}

	assistantMsg := chatResp.Choices[0].Message

	if len(assistantMsg.ToolCalls) > 0 {
		// one invocation per turn: further calls in the same response are
		// ignored and the model may re-propose on the next turn
		toolCall := assistantMsg.ToolCalls[0]

		var rawArgs map[string]any
		if err := json.Unmarshal([]byte(toolCall.Function.Arguments), &rawArgs); err != nil {
			l.Logger.Errorf("model produced unparseable tool arguments, tool=%s, err=%v", toolCall.Function.Name, err)
			rawArgs = map[string]any{}
		}

		envelope := l.svcCtx.Gate.Propose(l.ctx, toolCall.Function.Name, rawArgs)

		result := &types.ToolResult{
			Success: envelope.Success,
			Tool:    envelope.Tool,
			Result:  envelope.Result,
		}
		if envelope.Error != nil {
			result.Error = &types.ToolError{
				Kind:    string(envelope.Error.Kind),
				Message: envelope.Error.Message,
			}
		}

		l.appendHistory(convID, userMsg, assistantMsg, toolResultMessage(toolCall.ID, envelope))

		return &types.ChatMessageResp{
			Type:           chatconsts.ChatRespTypeToolExecuted,
			ConversationId: convID,
			Tool:           toolCall.Function.Name,
			ToolResult:     result,
		}, nil
	}

	l.appendHistory(convID, userMsg, assistantMsg)

	return &types.ChatMessageResp{
		Type:           chatconsts.ChatRespTypeChat,
		ConversationId: convID,
		Response:       assistantMsg.Content,
	}, nil
}

// toolResultMessage folds the gate envelope back into the conversation so
// the model sees what its tool call produced on the next turn.
func toolResultMessage(toolCallID string, envelope toolgate.Envelope) openai.ChatCompletionMessage {
	content, err := json.Marshal(envelope)
	if err != nil {
		content = []byte(`{"success":false}`)
	}
	return openai.ChatCompletionMessage{
		Role:       openai.ChatMessageRoleTool,
		Content:    string(content),
		ToolCallID: toolCallID,
	}
}
