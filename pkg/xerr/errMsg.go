package xerr

var msg map[uint32]string

func init() {
	msg = make(map[uint32]string)
	// 全局错误
	msg[OK] = "SUCCESS"
	msg[SERVER_COMMON_ERROR] = "server is busy, please try again later"
	msg[REQUEST_PARAM_ERROR] = "invalid request parameters"

	// 对话模块
	msg[CHAT_LLM_ERROR] = "language model is unavailable, please try again later"
	msg[CHAT_EMPTY_MESSAGE_ERROR] = "message cannot be empty"

	// 语音模块
	msg[SPEECH_TRANSCRIBE_ERROR] = "speech recognition failed"
	msg[SPEECH_EMPTY_AUDIO_ERROR] = "no audio provided"

	// Spotify 模块
	msg[SPOTIFY_NOT_CONFIGURED_ERROR] = "spotify is not configured"
	msg[SPOTIFY_AUTH_ERROR] = "spotify authorization failed"
}

func MapErrMsg(errcode uint32) string {
	if message, ok := msg[errcode]; ok {
		return message
	} else {
		return "server is busy, please try again later"
	}
}

func IsCodeErr(errCode uint32) bool {
	if _, ok := msg[errCode]; ok {
		return true
	} else {
		return false
	}
}
