package converter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/riverfjs/mrkdwnify-go/internal/types"
)

const zwsp = '\u200b'

// cleanBoundaries 清理零宽空格：
//   - 连续多个合并为一个
//   - 与空白或换行相邻时删除（空白本身已是单词边界）
//   - 位于文本首尾时删除
func cleanBoundaries(text string) string {
	if !strings.Contains(text, types.ZeroWidthSpace) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))

	var prev rune // last rune written, 0 at start
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r != zwsp {
			b.WriteString(text[i : i+size])
			prev = r
			i += size
			continue
		}

		// skip the whole run, then look at what follows it
		j := i
		for j < len(text) {
			rr, sz := utf8.DecodeRuneInString(text[j:])
			if rr != zwsp {
				break
			}
			j += sz
		}
		if j < len(text) && prev != 0 && !unicode.IsSpace(prev) {
			next, _ := utf8.DecodeRuneInString(text[j:])
			if !unicode.IsSpace(next) {
				b.WriteRune(zwsp)
				prev = zwsp
			}
		}
		i = j
	}
	return b.String()
}
