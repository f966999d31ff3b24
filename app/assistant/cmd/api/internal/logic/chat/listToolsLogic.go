// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package chat

import (
	"context"

	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/svc"
	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/toolgate"
	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListToolsLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 列出模型可调用的全部工具
func NewListToolsLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListToolsLogic {
	return &ListToolsLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListToolsLogic) ListTools() (*types.ListToolsResp, error) {
	names := toolgate.AllTools()

	tools := make([]string, 0, len(names))
	for _, name := range names {
		tools = append(tools, string(name))
	}

	return &types.ListToolsResp{
		AvailableTools: tools,
		Count:          len(tools),
	}, nil
}
