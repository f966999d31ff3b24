// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package spotify

import (
	"net/http"

	"github.com/fermofou/llm-speak/pkg/result"

	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/logic/spotify"
	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/svc"
	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// Spotify 授权回调
func CallbackHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.SpotifyCallbackReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := spotify.NewCallbackLogic(r.Context(), svcCtx)
		resp, err := l.Callback(&req)
		result.HttpResult(r, w, resp, err)
	}
}
