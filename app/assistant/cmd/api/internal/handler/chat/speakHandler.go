// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package chat

import (
	"net/http"

	"github.com/fermofou/llm-speak/pkg/result"
	"github.com/fermofou/llm-speak/pkg/xerr"

	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/logic/chat"
	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/svc"
	"github.com/fermofou/llm-speak/app/assistant/cmd/api/internal/types"

	"github.com/zeromicro/go-zero/rest/httpx"
)

const maxAudioUploadBytes = 25 << 20

// 语音输入，multipart 上传音频文件
func SpeakHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxAudioUploadBytes); err != nil {
			result.HttpResult(r, w, nil, xerr.NewErrCode(xerr.SPEECH_EMPTY_AUDIO_ERROR))
			return
		}

		var req types.SpeakReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			result.HttpResult(r, w, nil, xerr.NewErrCode(xerr.SPEECH_EMPTY_AUDIO_ERROR))
			return
		}
		defer file.Close()

		l := chat.NewSpeakLogic(r.Context(), svcCtx)
		resp, err := l.Speak(&req, file, header)
		result.HttpResult(r, w, resp, err)
	}
}
