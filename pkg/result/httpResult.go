package result

import (
	"net/http"

	"github.com/fermofou/llm-speak/pkg/xerr"

	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func HttpResult(r *http.Request, w http.ResponseWriter, resp interface{}, err error) {
	if err == nil {
		r := Success(resp)
		httpx.WriteJson(w, http.StatusOK, r)
		return
	}

	errCode := xerr.SERVER_COMMON_ERROR
	errMsg := xerr.MapErrMsg(errCode)

	// 获取错误的根本原因
	causeErr := errors.Cause(err)

	if e, ok := causeErr.(*xerr.CodeError); ok {
		// 自定义的CodeError类型，直接获取错误码和错误信息
		errCode = e.GetErrCode()
		errMsg = e.GetErrMsg()
	}

	logx.WithContext(r.Context()).Errorf("【API-ERR】 : %+v ", err)

	httpx.WriteJson(w, http.StatusBadRequest, Error(errCode, errMsg))
}
