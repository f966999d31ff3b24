// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package chat

import (
	"net/http"

	"github.com/fermofou/llm-speak/pkg/result"

	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/logic/chat"
	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/svc"
	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// 文字对话
func MessageHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ChatMessageReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := chat.NewMessageLogic(r.Context(), svcCtx)
		resp, err := l.Message(&req)
		result.HttpResult(r, w, resp, err)
	}
}
