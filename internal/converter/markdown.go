package converter

import (
	"strings"

	"github.com/riverfjs/mrkdwnify-go/internal/types"
)

// convertMarkdown 转换 Markdown 强调、标题、列表和分隔线
func (s *state) convertMarkdown() {
	// ***x*** 必须在 **x** 之前，否则粗体会吃掉三个星号中的两个
	s.text = replaceSubmatch(s.re.MDBoldItalic, s.text, func(g []string) string {
		return s.protect(types.CategoryBoldItalic, s.emphasis("*_", g[1], "_*"))
	})

	// 粗体内部的斜体先转换，再整体保护
	italic := s.template("_", "_")
	s.text = replaceSubmatch(s.re.MDBold, s.text, func(g []string) string {
		inner := s.re.MDItalic.ReplaceAllString(g[1], italic)
		return s.protect(types.CategoryBold, s.emphasis("*", inner, "*"))
	})

	// 粗体已是占位符，这里只会匹配到单个 *
	s.text = s.re.MDItalic.ReplaceAllString(s.text, italic)
	s.text = s.re.MDStrikethrough.ReplaceAllString(s.text, s.template("~", "~"))

	s.text = replaceSubmatch(s.re.MDHeading, s.text, func(g []string) string {
		return s.protect(types.CategoryBold, s.emphasis("*", g[1], "*"))
	})

	s.text = s.re.MDListMarker.ReplaceAllString(s.text, "${1}"+escapeTemplate(s.bullet)+" ")
	s.text = s.re.MDHorizontalRule.ReplaceAllString(s.text, "")
	s.text = s.re.ExcessNewlines.ReplaceAllString(s.text, "\n\n")
}

// escapeTemplate quotes $ so a configured bullet is inserted literally.
func escapeTemplate(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}
