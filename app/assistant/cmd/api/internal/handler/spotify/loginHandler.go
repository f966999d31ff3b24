// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package spotify

import (
	"net/http"

	"github.com/fermofou/llm-speak/pkg/result"

	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/logic/spotify"
	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/svc"
)

// 跳转 Spotify 授权
func LoginHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := spotify.NewLoginLogic(r.Context(), svcCtx)
		authURL, err := l.Login()
		if err != nil {
			result.HttpResult(r, w, nil, err)
			return
		}
		http.Redirect(w, r, authURL, http.StatusFound)
	}
}
