package converter

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/riverfjs/mrkdwnify-go/internal/buffer"
	"github.com/riverfjs/mrkdwnify-go/internal/types"
)

// Stats 单次转换的统计信息
type Stats struct {
	Spans int           // 受保护片段数量
	Lost  []buffer.Span // 占位符在还原前已被后续步骤删除的片段
}

// state 单次转换的全部可变状态，不跨调用共享
type state struct {
	text   string
	spans  *buffer.Spans
	re     *Patterns
	marker string
	bullet string
}

// Convert 将 Markdown/HTML 文本转换为 Slack mrkdwn
//
// 步骤顺序固定：归一化 → 保护代码/表格 → HTML → 链接 → 去除剩余标签
// → 实体解码 → Markdown 强调/标题/列表 → 还原占位符 → 清理零宽空格
func Convert(input string, config *types.RenderConfig) (string, Stats) {
	if config == nil {
		config = types.DefaultRenderConfig()
	}

	text := normalize(input, config.NormalizeUnicode)
	if text == "" {
		return "", Stats{}
	}

	s := &state{
		text:   text,
		spans:  buffer.New(),
		re:     Table(),
		marker: config.Marker(),
		bullet: config.BulletSymbol(),
	}

	s.protectLiterals()
	s.convertHTML()
	s.convertLinks()
	s.stripTags()
	s.decodeEntities()
	s.convertMarkdown()

	restored, lost := s.spans.Restore(s.text)
	restored = strings.ReplaceAll(restored, buffer.Sentinel, "")
	out := strings.TrimSpace(cleanBoundaries(restored))

	return out, Stats{Spans: s.spans.Len(), Lost: lost}
}

// normalize 统一换行符并去除哨兵字节；之后文本中出现的哨兵字节都来自管道本身
func normalize(input string, nfc bool) string {
	if input == "" {
		return ""
	}
	text := Table().LineEndings.Replace(input)
	if nfc {
		text = norm.NFC.String(text)
	}
	return strings.ReplaceAll(text, buffer.Sentinel, "")
}

// protect 记录替换文本并返回占位符
func (s *state) protect(category types.Category, replacement string) string {
	return s.spans.Protect(category, replacement)
}

// emphasis wraps inner in delimiters, with a boundary marker outside each one.
func (s *state) emphasis(open, inner, closing string) string {
	return s.marker + open + inner + closing + s.marker
}

// template is emphasis for use as a ReplaceAllString template on group 1.
func (s *state) template(open, closing string) string {
	return s.emphasis(open, "${1}", closing)
}

// replaceSubmatch is ReplaceAllStringFunc with access to capture groups.
// Unmatched groups are "".
func replaceSubmatch(re *regexp.Regexp, src string, repl func(groups []string) string) string {
	matches := re.FindAllStringSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return src
	}

	var b strings.Builder
	b.Grow(len(src))
	last := 0
	for _, m := range matches {
		b.WriteString(src[last:m[0]])
		groups := make([]string, len(m)/2)
		for i := range groups {
			if m[2*i] >= 0 {
				groups[i] = src[m[2*i]:m[2*i+1]]
			}
		}
		b.WriteString(repl(groups))
		last = m[1]
	}
	b.WriteString(src[last:])
	return b.String()
}
