// Package mrkdwnify 将 Markdown（以及 LLM 常输出的简单 HTML）转换为 Slack mrkdwn
//
// mrkdwn 只有单字符的粗体/斜体/删除线标记、<url|text> 形式的链接，
// 没有标题、表格和嵌套强调。这个包负责把这些结构折叠为 mrkdwn 能表达的形式：
//   - 代码块、行内代码原样保留（丢弃语言标识）
//   - 表格转为代码块，保留列对齐
//   - 标题转为粗体
//   - 列表标记转为 •
//   - 强调符号外侧插入零宽空格，中日韩文本中也能正确渲染
//
// 主要 API：
//   - Convert(): 转换，返回可直接放入消息 text 字段的字符串
//   - Inspect(): 统计 Markdown 中的结构，用于诊断
//
// 示例：
//
//	text := mrkdwnify.Convert("**重要**な変更です")
//	// text == "*重要*\u200bな変更です"
//
//	// 关闭零宽空格、修改列表符号
//	text = mrkdwnify.Convert(md, mrkdwnify.WithWordBoundary(false), mrkdwnify.WithBullet("-"))
package mrkdwnify

import (
	"github.com/riverfjs/mrkdwnify-go/internal/parser"
)

// Report 是 Inspect 的结果
type Report = parser.Report

// Inspect 统计 Markdown 文本中的结构（标题、强调、链接、代码块、表格等）
//
// 仅用于诊断，不影响 Convert 的输出。
func Inspect(markdown string) Report {
	return parser.Inspect(markdown)
}
