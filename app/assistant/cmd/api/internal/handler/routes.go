// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	chat "github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/handler/chat"
	spotify "github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/handler/spotify"
	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/message",
				Handler: chat.MessageHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/tools",
				Handler: chat.ListToolsHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/speak",
				Handler: chat.SpeakHandler(serverCtx),
			},
		},
		rest.WithPrefix("/chat"),
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/login",
				Handler: spotify.LoginHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/callback",
				Handler: spotify.CallbackHandler(serverCtx),
			},
		},
		rest.WithPrefix("/spotify"),
	)
}
