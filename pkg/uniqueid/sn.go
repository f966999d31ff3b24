package uniqueid

import (
	"fmt"
	"time"

	"github.com/fermofou/llm-speak/pkg/tool"
)

// 生成sn单号
type SnPrefix string

const (
	SN_PREFIX_INVOCATION   SnPrefix = "INV" // 工具调用审计流水号
	SN_PREFIX_CONVERSATION SnPrefix = "CHAT"
)

// 生成单号
func GenSn(snPrefix SnPrefix) string {
	return fmt.Sprintf("%s%s%s", snPrefix, time.Now().Format("20060102150405"), tool.Krand(8, tool.KC_RAND_KIND_NUM))
}
