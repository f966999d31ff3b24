// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package spotify

import (
	"context"

	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/svc"
	"github.com/fermofou/llm-speak/pkg/xerr"

	"github.com/zeromicro/go-zero/core/logx"
)

type LoginLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 跳转到 Spotify 授权页面
func NewLoginLogic(ctx context.Context, svcCtx *svc.ServiceContext) *LoginLogic {
	return &LoginLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *LoginLogic) Login() (string, error) {
	authURL, err := l.svcCtx.SpotifyClient.AuthURL()
	if err != nil {
		return "", xerr.NewErrCode(xerr.SPOTIFY_NOT_CONFIGURED_ERROR)
	}
	return authURL, nil
}
