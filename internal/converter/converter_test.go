package converter

import (
	"strings"
	"testing"

	"github.com/riverfjs/mrkdwnify-go/internal/types"
)

const zw = "\u200b"

func convert(input string) string {
	out, _ := Convert(input, nil)
	return out
}

// TestConvert_Exact 测试完整输出
func TestConvert_Exact(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// 基本格式
		{"empty", "", ""},
		{"bold", "**hello**", "*hello*"},
		{"italic", "*hello*", "_hello_"},
		{"bold italic", "***hello***", "*_hello_*"},
		{"strikethrough", "~~hello~~", "~hello~"},
		{"nested italic in bold", "**bold and *italic* inside**", "*bold and _italic_ inside*"},
		{"bold in sentence", "The **重要** item", "The *重要* item"},
		{"unicode bold", "**太字**", "*太字*"},
		{"unicode italic", "*斜体*", "_斜体_"},
		{"emoji bold", "**🎉 celebration 🎉**", "*🎉 celebration 🎉*"},

		// 代码
		{"inline code preserved", "use `**raw**` here", "use `**raw**` here"},
		{"code block language dropped", "```python\ndef hello():\n    pass\n```", "```\ndef hello():\n    pass\n```"},

		// 链接
		{"link", "[click](https://example.com)", "<https://example.com|click>"},
		{"image", "![alt](https://example.com/img.png)", "https://example.com/img.png"},
		{"link text with angle brackets", "[click <here>](https://example.com)", "<https://example.com|click here>"},
		{"link text with inline code", "[`cfg`](https://example.com)", "<https://example.com|`cfg`>"},

		// 标题
		{"h1", "# Hello", "*Hello*"},
		{"h2", "## World", "*World*"},
		{"h3", "### Deep", "*Deep*"},
		{"h6", "###### Six", "*Six*"},
		{"seven hashes", "####### seven", "####### seven"},

		// 列表
		{"dash list", "- item 1\n- item 2", "• item 1\n• item 2"},
		{"star list", "* item 1\n* item 2", "• item 1\n• item 2"},
		{"nested list keeps indent", "- top\n  - nested", "• top\n  • nested"},
		{"ordered list passthrough", "1. first\n2. second", "1. first\n2. second"},

		// 引用、分隔线
		{"blockquote passthrough", "> quoted text", "> quoted text"},
		{"dash rule removed", "above\n---\nbelow", "above\n\nbelow"},
		{"star rule removed", "above\n***\nbelow", "above\n\nbelow"},
		{"underscore rule removed", "above\n___\nbelow", "above\n\nbelow"},

		// 表格
		{"table", "| A | B |\n|---|---|\n| 1 | 2 |", "```\n| A | B |\n|---|---|\n| 1 | 2 |\n```"},
		{"table trailing whitespace", "| A | B |  \n|---|---|\n| 1 | 2 |  \n", "```\n| A | B |\n|---|---|\n| 1 | 2 |\n```"},
		{"table leading whitespace", "  | A | B |\n  |---|---|\n  | 1 | 2 |", "```\n| A | B |\n|---|---|\n| 1 | 2 |\n```"},
		{"table alignment row", "| L | R |\n|:--|--:|\n| a | b |", "```\n| L | R |\n|:--|--:|\n| a | b |\n```"},

		// HTML
		{"html strong", "<strong>hello</strong>", "*hello*"},
		{"html b", "<b>hello</b>", "*hello*"},
		{"html em", "<em>hello</em>", "_hello_"},
		{"html i", "<i>hello</i>", "_hello_"},
		{"html del", "<del>hello</del>", "~hello~"},
		{"html s", "<s>hello</s>", "~hello~"},
		{"html strike", "<strike>hello</strike>", "~hello~"},
		{"html uppercase", "<B>hello</B>", "*hello*"},
		{"html link", `<a href="https://example.com">click</a>`, "<https://example.com|click>"},
		{"html link attributes", `<a target="_blank" href='https://x.y'>go</a>`, "<https://x.y|go>"},
		{"html br", "hello<br>world", "hello\nworld"},
		{"html br self closing", "hello<br/>world", "hello\nworld"},
		{"html br spaced", "hello<br />world", "hello\nworld"},
		{"html code", "<code>foo</code>", "`foo`"},
		{"html code keeps stars", "<code>**x**</code>", "`**x**`"},
		{"html pre", "<pre>some code</pre>", "```\nsome code\n```"},
		{"html heading", "<h1>Title</h1>", "*Title*"},
		{"html heading with attributes", `<h2 class="t">Title</h2>after`, "*Title*\nafter"},
		{"html list items", "<li>first</li><li>second</li>", "• first\n• second"},
		{"html paragraphs", "<p>one</p><p>two</p>", "one\n\ntwo"},
		{"html rule", "a<hr/>b", "ab"},
		{"html tags stripped", "<div><span>hello</span></div>", "hello"},

		// 实体
		{"entities", "a &amp; b &lt; c &gt; d", "a & b < c > d"},
		{"entity quot", "&quot;hello&quot;", `"hello"`},
		{"entity apos", "&#39;a&#39; &apos;b&apos; &#039;c&#039;", "'a' 'b' 'c'"},
		{"amp decoded last", "&amp;lt;", "&lt;"},
		{"decoded tags stay literal", "&lt;b&gt;x&lt;/b&gt;", "<b>x</b>"},

		// 边界情况
		{"plain text", "hello world", "hello world"},
		{"crlf", "hello\r\nworld", "hello\nworld"},
		{"lone cr", "a\rb", "a\nb"},
		{"excess newlines", "a\n\n\n\nb", "a\n\nb"},
		{"sentinel stripped", "a\x00b", "ab"},
		{"forged placeholder", "\x00CB0\x00", "CB0"},
		{"tag strip keeps placeholders", "x < y `code` z > w", "x < y `code` z > w"},
		{"consecutive bold", "**a****b**", "*a*" + zw + "*b*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := convert(tt.input); got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestConvert_FencedCodeBlockPreserved 测试代码块内容不被转换
func TestConvert_FencedCodeBlockPreserved(t *testing.T) {
	input := "text **bold**\n```\n**not bold**\n```\nmore **bold**"
	want := "text *bold*\n```\n**not bold**\n```\nmore *bold*"
	if got := convert(input); got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

// TestConvert_CodeBlockSpecialCharacters 测试代码块中的 HTML、实体、表格原样保留
func TestConvert_CodeBlockSpecialCharacters(t *testing.T) {
	body := "<b>x</b> &amp; [a](b) ~~s~~\n| A | B |\n|---|---|\n# not heading\n- not bullet\n"
	got := convert("```html\n" + body + "```")
	want := "```\n" + body + "```"
	if got != want {
		t.Errorf("Convert() = %q, want %q", got, want)
	}
}

// TestConvert_ZeroWidthBoundary 测试 CJK 文本旁的零宽空格
func TestConvert_ZeroWidthBoundary(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bold before japanese", "**シンプル**な構成", "*シンプル*" + zw + "な構成"},
		{"italic before japanese", "*重要*です", "_重要_" + zw + "です"},
		{"strike before japanese", "~~削除~~された", "~削除~" + zw + "された"},
		{"html strong before kanji", "<strong>武</strong>士", "*武*" + zw + "士"},
		{"html strong before katakana", "<strong>太字</strong>テスト", "*太字*" + zw + "テスト"},
		{"japanese before bold", "これは**重要**", "これは" + zw + "*重要*"},
		{"bold followed by space", "**bold** text", "*bold* text"},
		{"list item with bold", "- **シンプル**な構成で学習しやすい", "• *シンプル*" + zw + "な構成で学習しやすい"},
		{"bold before punctuation", "1. **First**: do this", "1. *First*" + zw + ": do this"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convert(tt.input)
			if got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if strings.Contains(got, zw+zw) {
				t.Errorf("Convert(%q) contains doubled zero-width space", tt.input)
			}
		})
	}
}

// TestConvert_PlainTextUnchanged 测试不含特殊字符的文本保持不变
func TestConvert_PlainTextUnchanged(t *testing.T) {
	inputs := []string{
		"hello world",
		"The quick brown fox.\nJumps over the lazy dog.",
		"日本語のテキスト、句読点。",
		"numbers 1, 2, 3 and 4.5%",
		"emoji 🎉 and symbols @ # $ ? !",
	}
	for _, input := range inputs {
		if got := convert(input); got != input {
			t.Errorf("Convert(%q) = %q, want unchanged", input, got)
		}
	}
}

// TestConvert_Config 测试渲染配置
func TestConvert_Config(t *testing.T) {
	tests := []struct {
		name   string
		config *types.RenderConfig
		input  string
		want   string
	}{
		{
			name:   "no word boundary",
			config: &types.RenderConfig{Bullet: "•", WordBoundary: false},
			input:  "**シンプル**な構成",
			want:   "*シンプル*な構成",
		},
		{
			name:   "custom bullet",
			config: &types.RenderConfig{Bullet: "-", WordBoundary: true},
			input:  "- a\n* b\n<li>c</li>",
			want:   "- a\n- b\n- c",
		},
		{
			name:   "bullet with dollar",
			config: &types.RenderConfig{Bullet: "$", WordBoundary: true},
			input:  "- a",
			want:   "$ a",
		},
		{
			name:   "empty bullet falls back",
			config: &types.RenderConfig{WordBoundary: true},
			input:  "- a",
			want:   "• a",
		},
		{
			name:   "nfc",
			config: &types.RenderConfig{Bullet: "•", NormalizeUnicode: true},
			input:  "cafe\u0301",
			want:   "caf\u00e9",
		},
		{
			name:   "no nfc",
			config: &types.RenderConfig{Bullet: "•"},
			input:  "cafe\u0301",
			want:   "cafe\u0301",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Convert(tt.input, tt.config)
			if got != tt.want {
				t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestConvert_Stats 测试受保护片段统计
func TestConvert_Stats(t *testing.T) {
	_, stats := Convert("**a** `b` [c](https://d)", nil)
	if stats.Spans != 3 {
		t.Errorf("Spans = %d, want 3", stats.Spans)
	}
	if len(stats.Lost) != 0 {
		t.Errorf("Lost = %v, want none", stats.Lost)
	}

	// 图片的 alt 文本会被丢弃，其中的占位符也随之丢失
	out, stats := Convert("![`x`](https://i.png)", nil)
	if out != "https://i.png" {
		t.Errorf("Convert() = %q, want %q", out, "https://i.png")
	}
	if len(stats.Lost) != 1 || stats.Lost[0].Category != types.CategoryInlineCode {
		t.Errorf("Lost = %v, want one inline code span", stats.Lost)
	}
}

// TestConvert_LLMOutput 测试典型 LLM 输出
func TestConvert_LLMOutput(t *testing.T) {
	input := `Here's a summary:

## Key Points

1. **First point**: This is important
2. **Second point**: Also relevant

- Use ` + "`code`" + ` for examples
- Check [the docs](https://docs.example.com)

` + "```python\ndef hello():\n    print(\"**not converted**\")\n```" + `

> Note: This is a blockquote`

	output := convert(input)
	for _, want := range []string{
		"*Key Points*",
		"*First point*",
		"<https://docs.example.com|the docs>",
		"```\ndef hello():\n    print(\"**not converted**\")\n```",
		"> Note: This is a blockquote",
		"`code`",
		"• Use",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %q, got %q", want, output)
		}
	}
}

// TestConvert_Concurrent 测试并发调用结果一致
func TestConvert_Concurrent(t *testing.T) {
	input := "# T\n\n**a** *b* ~~c~~ `d` [e](https://f)\n\n| x | y |\n|---|---|\n| 1 | 2 |"
	want := convert(input)

	done := make(chan string, 32)
	for i := 0; i < cap(done); i++ {
		go func() { done <- convert(input) }()
	}
	for i := 0; i < cap(done); i++ {
		if got := <-done; got != want {
			t.Errorf("concurrent Convert() = %q, want %q", got, want)
		}
	}
}
