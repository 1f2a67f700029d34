package converter

import (
	"strings"

	"github.com/riverfjs/mrkdwnify-go/internal/types"
)

// convertHTML 转换 LLM 输出中常见的 HTML 标签，顺序不可调换
func (s *state) convertHTML() {
	// <pre>/<code> 先于强调处理，避免代码内容被加粗
	s.text = replaceSubmatch(s.re.HTMLPre, s.text, func(g []string) string {
		return s.protect(types.CategoryCodeBlock, "```\n"+g[1]+"\n```")
	})
	s.text = replaceSubmatch(s.re.HTMLCode, s.text, func(g []string) string {
		return s.protect(types.CategoryInlineCode, "`"+g[1]+"`")
	})

	// 粗体立即保护，斜体步骤不会误匹配 * 号
	for _, re := range s.re.HTMLBold {
		s.text = replaceSubmatch(re, s.text, func(g []string) string {
			return s.protect(types.CategoryBold, s.emphasis("*", g[1], "*"))
		})
	}
	for _, re := range s.re.HTMLItalic {
		s.text = re.ReplaceAllString(s.text, s.template("_", "_"))
	}
	for _, re := range s.re.HTMLStrike {
		s.text = re.ReplaceAllString(s.text, s.template("~", "~"))
	}

	s.text = replaceSubmatch(s.re.HTMLLink, s.text, func(g []string) string {
		return s.protect(types.CategoryLink, link(g[1], g[2]))
	})

	s.text = s.re.HTMLBreak.ReplaceAllString(s.text, "\n")

	s.text = replaceSubmatch(s.re.HTMLHeading, s.text, func(g []string) string {
		return "\n" + s.protect(types.CategoryBold, s.emphasis("*", g[1], "*")) + "\n"
	})

	s.text = replaceSubmatch(s.re.HTMLItem, s.text, func(g []string) string {
		return s.bullet + " " + g[1] + "\n"
	})

	s.text = s.re.HTMLPara.ReplaceAllString(s.text, "\n")
	s.text = s.re.HTMLRule.ReplaceAllString(s.text, "")
}

// convertLinks 在去除剩余标签之前处理 Markdown 图片和链接，
// 链接文本里的 <...> 不会被当作标签删掉
func (s *state) convertLinks() {
	s.text = s.re.MDImage.ReplaceAllString(s.text, "${2}")
	s.text = replaceSubmatch(s.re.MDLink, s.text, func(g []string) string {
		return s.protect(types.CategoryLink, link(g[2], g[1]))
	})
}

func (s *state) stripTags() {
	s.text = s.re.HTMLAnyTag.ReplaceAllString(s.text, "")
}

// decodeEntities 按固定顺序解码，&amp; 最后
func (s *state) decodeEntities() {
	for _, entity := range s.re.Entities {
		for _, old := range entity.Olds {
			s.text = strings.ReplaceAll(s.text, old, entity.New)
		}
	}
}

// link formats a mrkdwn link. Angle brackets in the label would close the
// link early, so they are dropped.
func link(url, label string) string {
	return "<" + url + "|" + stripAngleBrackets(label) + ">"
}

func stripAngleBrackets(s string) string {
	return strings.NewReplacer("<", "", ">", "").Replace(s)
}
