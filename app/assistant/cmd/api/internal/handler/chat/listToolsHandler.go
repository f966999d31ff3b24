// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package chat

import (
	"net/http"

	"github.com/fermofou/llm-speak/pkg/result"

	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/logic/chat"
	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/svc"
)

// 查询可用工具列表
func ListToolsHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := chat.NewListToolsLogic(r.Context(), svcCtx)
		resp, err := l.ListTools()
		result.HttpResult(r, w, resp, err)
	}
}
