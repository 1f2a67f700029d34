package mrkdwnify

import (
	"github.com/riverfjs/mrkdwnify-go/internal/converter"
)

// Convert 将 Markdown/HTML 转换为 Slack mrkdwn
//
// 参数:
//   - markdown: 原始文本，可以为空
//   - opts: 可选配置，不传时使用 DefaultConfig()
//
// 返回:
//   - string: mrkdwn 文本；空输入返回空字符串
//
// 转换不会失败：无法识别的标记原样保留。可并发调用。
func Convert(markdown string, opts ...Option) string {
	options := applyOptions(opts...)
	return ConvertWithConfig(markdown, options.Config)
}

// ConvertWithConfig 使用指定配置转换，config 为 nil 时使用默认配置
func ConvertWithConfig(markdown string, config *RenderConfig) string {
	if config == nil {
		config = DefaultConfig()
	}

	text, stats := converter.Convert(markdown, config)

	Logger.Debug().
		Int("input_bytes", len(markdown)).
		Int("output_bytes", len(text)).
		Int("spans", stats.Spans).
		Msg("converted")
	for _, span := range stats.Lost {
		Logger.Debug().
			Str("category", string(span.Category)).
			Int("index", span.Index).
			Msg("placeholder dropped before restore")
	}

	return text
}
