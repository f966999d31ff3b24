package xerr

// 成功返回
const OK uint32 = 200

/**(前3位代表业务,后三位代表具体功能)**/

// 全局错误码
const (
	SERVER_COMMON_ERROR uint32 = 100001 // 服务器通用错误
	REQUEST_PARAM_ERROR uint32 = 100002 // 请求参数错误
)

// 对话模块
const (
	CHAT_LLM_ERROR           uint32 = 200001 // LLM 服务调用失败
	CHAT_EMPTY_MESSAGE_ERROR uint32 = 200002 // 空消息
)

// 语音模块
const (
	SPEECH_TRANSCRIBE_ERROR  uint32 = 300001 // 语音转写失败
	SPEECH_EMPTY_AUDIO_ERROR uint32 = 300002 // 未提供音频
)

// Spotify 模块
const (
	SPOTIFY_NOT_CONFIGURED_ERROR uint32 = 400001 // Spotify 未配置
	SPOTIFY_AUTH_ERROR           uint32 = 400002 // Spotify 授权失败
)
