package converter

import (
	"strings"

	"github.com/riverfjs/mrkdwnify-go/internal/types"
)

// protectLiterals 保护代码块、行内代码和表格，后续步骤不会改动它们的内容
func (s *state) protectLiterals() {
	// 围栏代码块：丢弃语言标识，只保留正文
	s.text = replaceSubmatch(s.re.FencedCode, s.text, func(g []string) string {
		return s.protect(types.CategoryCodeBlock, "```\n"+g[1]+"```")
	})

	s.text = replaceSubmatch(s.re.InlineCode, s.text, func(g []string) string {
		return s.protect(types.CategoryInlineCode, "`"+g[1]+"`")
	})

	// mrkdwn 没有表格，整体作为代码块保留列对齐
	s.text = replaceSubmatch(s.re.Table, s.text, func(g []string) string {
		return s.protect(types.CategoryTable, "```\n"+formatTable(g[0])+"\n```")
	})
}

// formatTable trims every row and drops trailing blank lines.
func formatTable(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}
