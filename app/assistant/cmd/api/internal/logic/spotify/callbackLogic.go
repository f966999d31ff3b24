// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package spotify

import (
	"context"
	"time"

	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/svc"
	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/types"
	"github.com/fermofou/llm-speak/pkg/xerr"

	"github.com/zeromicro/go-zero/core/logx"
)

type CallbackLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 处理 Spotify 授权回调，换取用户令牌
func NewCallbackLogic(ctx context.Context, svcCtx *svc.ServiceContext) *CallbackLogic {
	return &CallbackLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *CallbackLogic) Callback(req *types.SpotifyCallbackReq) (*types.SpotifyCallbackResp, error) {
	if req.Code == "" {
		return nil, xerr.NewErrCode(xerr.REQUEST_PARAM_ERROR)
	}

	token, err := l.svcCtx.SpotifyClient.ExchangeCode(l.ctx, req.Code)
	if err != nil {
		l.Logger.Errorf("spotify code exchange failed, err=%v", err)
		return nil, xerr.NewErrCode(xerr.SPOTIFY_AUTH_ERROR)
	}

	// the token itself stays server-side; the caller only learns it worked
	return &types.SpotifyCallbackResp{
		Authenticated: true,
		ExpiresAt:     token.ExpiresAt.Format(time.RFC3339),
	}, nil
}
