package mrkdwnify

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger 全局日志记录器，转换过程只输出 debug 级别日志
var Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	Level(zerolog.InfoLevel).
	With().
	Timestamp().
	Str("component", "mrkdwnify").
	Logger()

// SetLogger 设置自定义日志记录器
func SetLogger(logger zerolog.Logger) {
	Logger = logger
}
