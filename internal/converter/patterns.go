package converter

import (
	"regexp"
	"strings"
	"sync"
)

// Patterns 转换管道使用的全部匹配器，进程内只编译一次，之后只读共享
type Patterns struct {
	// 归一化
	LineEndings *strings.Replacer

	// 字面内容保护
	FencedCode *regexp.Regexp
	InlineCode *regexp.Regexp
	Table      *regexp.Regexp

	// HTML
	HTMLPre     *regexp.Regexp
	HTMLCode    *regexp.Regexp
	HTMLBold    []*regexp.Regexp // <strong>, <b>
	HTMLItalic  []*regexp.Regexp // <em>, <i>
	HTMLStrike  []*regexp.Regexp // <del>, <s>, <strike>
	HTMLLink    *regexp.Regexp
	HTMLBreak   *regexp.Regexp
	HTMLHeading *regexp.Regexp
	HTMLItem    *regexp.Regexp
	HTMLPara    *regexp.Regexp
	HTMLRule    *regexp.Regexp
	HTMLAnyTag  *regexp.Regexp
	Entities    []Entity

	// Markdown
	MDImage          *regexp.Regexp
	MDLink           *regexp.Regexp
	MDBoldItalic     *regexp.Regexp
	MDBold           *regexp.Regexp
	MDItalic         *regexp.Regexp
	MDStrikethrough  *regexp.Regexp
	MDHeading        *regexp.Regexp
	MDListMarker     *regexp.Regexp
	MDHorizontalRule *regexp.Regexp
	ExcessNewlines   *regexp.Regexp
}

// Entity is one HTML entity decoding step. Olds are all spellings of the
// same entity.
type Entity struct {
	Olds []string
	New  string
}

var table = sync.OnceValue(compilePatterns)

// Table returns the shared pattern table, compiling it on first use.
// A malformed pattern panics here: it is a programming error.
func Table() *Patterns {
	return table()
}

func compilePatterns() *Patterns {
	return &Patterns{
		LineEndings: strings.NewReplacer("\r\n", "\n", "\r", "\n"),

		FencedCode: regexp.MustCompile("(?s)```[^\\n]*\\n(.*?)```"),
		InlineCode: regexp.MustCompile("`([^`\\n]+)`"),
		// 表头行 + 分隔行（由 - 和 : 组成）+ 数据行
		Table: regexp.MustCompile(`(?m)((?:^[ \t]*\|.+\|[ \t]*\n)+^[ \t]*\|[\s:]*-[\s:\-|]*\|[ \t]*\n(?:^[ \t]*\|.+\|[ \t]*\n?)*)`),

		HTMLPre:  regexp.MustCompile(`(?si)<pre>(.*?)</pre>`),
		HTMLCode: regexp.MustCompile(`(?si)<code>(.*?)</code>`),
		HTMLBold: []*regexp.Regexp{
			regexp.MustCompile(`(?si)<strong>(.*?)</strong>`),
			regexp.MustCompile(`(?si)<b>(.*?)</b>`),
		},
		HTMLItalic: []*regexp.Regexp{
			regexp.MustCompile(`(?si)<em>(.*?)</em>`),
			regexp.MustCompile(`(?si)<i>(.*?)</i>`),
		},
		HTMLStrike: []*regexp.Regexp{
			regexp.MustCompile(`(?si)<del>(.*?)</del>`),
			regexp.MustCompile(`(?si)<s>(.*?)</s>`),
			regexp.MustCompile(`(?si)<strike>(.*?)</strike>`),
		},
		// Tag bodies never span a sentinel byte, so no placeholder is
		// swallowed by a tag match.
		HTMLLink:    regexp.MustCompile(`(?si)<a\s[^>\x00]*href=["']([^"'\x00]*)["'][^>\x00]*>(.*?)</a>`),
		HTMLBreak:   regexp.MustCompile(`(?i)<br\s*/?>`),
		HTMLHeading: regexp.MustCompile(`(?si)<h[1-6](?:\s[^>\x00]*)?>(.*?)</h[1-6]>`),
		HTMLItem:    regexp.MustCompile(`(?si)<li(?:\s[^>\x00]*)?>(.*?)</li>`),
		HTMLPara:    regexp.MustCompile(`(?i)</?p(?:\s[^>\x00]*)?>`),
		HTMLRule:    regexp.MustCompile(`(?i)<hr\s*/?>`),
		HTMLAnyTag:  regexp.MustCompile(`<[^>\x00]+>`),
		// &amp; 必须最后解码，否则 &amp;lt; 会被二次反转义
		Entities: []Entity{
			{Olds: []string{"&lt;"}, New: "<"},
			{Olds: []string{"&gt;"}, New: ">"},
			{Olds: []string{"&quot;"}, New: `"`},
			{Olds: []string{"&apos;", "&#39;", "&#039;"}, New: "'"},
			{Olds: []string{"&amp;"}, New: "&"},
		},

		MDImage:          regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`),
		MDLink:           regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`),
		MDBoldItalic:     regexp.MustCompile(`\*\*\*(.+?)\*\*\*`),
		MDBold:           regexp.MustCompile(`\*\*(.+?)\*\*`),
		MDItalic:         regexp.MustCompile(`\*([^*\n]+?)\*`),
		MDStrikethrough:  regexp.MustCompile(`~~(.+?)~~`),
		MDHeading:        regexp.MustCompile(`(?m)^#{1,6}\s+(.+)$`),
		MDListMarker:     regexp.MustCompile(`(?m)^(\s*)[-*] `),
		MDHorizontalRule: regexp.MustCompile(`(?m)^[-*_]{3,}\s*$`),
		ExcessNewlines:   regexp.MustCompile(`\n{3,}`),
	}
}
