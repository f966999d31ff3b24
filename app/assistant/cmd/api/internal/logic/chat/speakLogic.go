// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package chat

import (
	"context"
	"mime/multipart"

	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/svc"
	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/types"
	"github.com/fermofou/llm-speak/pkg/xerr"

	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/logx"
)

type SpeakLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

// 语音输入：转写后走和文字对话相同的流程
func NewSpeakLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SpeakLogic {
	return &SpeakLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SpeakLogic) Speak(req *types.SpeakReq, file multipart.File, header *multipart.FileHeader) (*types.SpeakResp, error) {
	if l.svcCtx.SpeechClient == nil {
		return nil, xerr.NewErrMsg("speech recognition is not configured")
	}

	language := req.Language
	if language == "" {
		language = l.svcCtx.Config.Speech.Language
	}

	transcription, err := l.svcCtx.SpeechClient.Transcribe(l.ctx, header.Filename, file, language)
	if err != nil {
		l.Logger.Errorf("transcription failed, file=%s, err=%v", header.Filename, err)
		return nil, errors.Wrap(xerr.NewErrCode(xerr.SPEECH_TRANSCRIBE_ERROR), err.Error())
	}
	if transcription.Text == "" {
		return nil, xerr.NewErrCode(xerr.SPEECH_TRANSCRIBE_ERROR)
	}

	chatResp, err := NewMessageLogic(l.ctx, l.svcCtx).Message(&types.ChatMessageReq{
		Message:        transcription.Text,
		ConversationId: req.ConversationId,
	})
	if err != nil {
		return nil, err
	}

	return &types.SpeakResp{
		TranscribedText: transcription.Text,
		Language:        transcription.Language,
		Result:          *chatResp,
	}, nil
}
