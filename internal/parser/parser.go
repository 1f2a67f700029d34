package parser

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// StandardOptions goldmark 扩展配置：GFM（表格、删除线、任务列表、自动链接）
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,
	),
}

// Report 统计 Markdown 文本中各类结构的数量
type Report struct {
	Headings      int      `json:"headings" yaml:"headings"`
	Bold          int      `json:"bold" yaml:"bold"`
	Italic        int      `json:"italic" yaml:"italic"`
	Strikethrough int      `json:"strikethrough" yaml:"strikethrough"`
	Links         int      `json:"links" yaml:"links"`
	Images        int      `json:"images" yaml:"images"`
	CodeSpans     int      `json:"code_spans" yaml:"code_spans"`
	CodeBlocks    int      `json:"code_blocks" yaml:"code_blocks"`
	Tables        int      `json:"tables" yaml:"tables"`
	ListItems     int      `json:"list_items" yaml:"list_items"`
	Blockquotes   int      `json:"blockquotes" yaml:"blockquotes"`
	RawHTML       int      `json:"raw_html" yaml:"raw_html"`
	Languages     []string `json:"languages,omitempty" yaml:"languages,omitempty"`
}

// CodeBlock 围栏代码块的语言和正文
type CodeBlock struct {
	Language string
	Body     string
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(markdown string) (ast.Node, []byte) {
	md := goldmark.New(StandardOptions...)
	source := []byte(markdown)
	return md.Parser().Parse(text.NewReader(source)), source
}

// Inspect 解析 Markdown 并统计结构数量
func Inspect(markdown string) Report {
	var report Report
	node, source := ParseAST(markdown)

	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			report.Headings++
		case *ast.Emphasis:
			// Level 1 = italic, Level 2 = bold
			if n.Level == 2 {
				report.Bold++
			} else {
				report.Italic++
			}
		case *east.Strikethrough:
			report.Strikethrough++
		case *ast.Link, *ast.AutoLink:
			report.Links++
		case *ast.Image:
			report.Images++
		case *ast.CodeSpan:
			report.CodeSpans++
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			report.CodeBlocks++
			if lang := string(n.Language(source)); lang != "" {
				report.Languages = append(report.Languages, lang)
			}
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			report.CodeBlocks++
			return ast.WalkSkipChildren, nil
		case *east.Table:
			report.Tables++
		case *ast.ListItem:
			report.ListItems++
		case *ast.Blockquote:
			report.Blockquotes++
		case *ast.RawHTML, *ast.HTMLBlock:
			report.RawHTML++
		}
		return ast.WalkContinue, nil
	})

	return report
}

// FencedCodeBlocks 返回所有围栏代码块（语言 + 原始正文）
func FencedCodeBlocks(markdown string) []CodeBlock {
	var blocks []CodeBlock
	node, source := ParseAST(markdown)

	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fenced, ok := n.(*ast.FencedCodeBlock)
		if !ok || !entering {
			return ast.WalkContinue, nil
		}
		var body strings.Builder
		lines := fenced.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			body.Write(seg.Value(source))
		}
		blocks = append(blocks, CodeBlock{
			Language: string(fenced.Language(source)),
			Body:     body.String(),
		})
		return ast.WalkSkipChildren, nil
	})

	return blocks
}
