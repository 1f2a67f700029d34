package types

// Category 标识受保护片段的种类，仅用于生成占位符
type Category string

const (
	CategoryCodeBlock  Category = "CB"
	CategoryInlineCode Category = "IC"
	CategoryTable      Category = "TB"
	CategoryLink       Category = "LK"
	CategoryBoldItalic Category = "BI"
	CategoryBold       Category = "BD"
)

// Categories lists every category in the order tokens are documented.
var Categories = []Category{
	CategoryCodeBlock,
	CategoryInlineCode,
	CategoryTable,
	CategoryLink,
	CategoryBoldItalic,
	CategoryBold,
}

const (
	// DefaultBullet replaces "- " and "* " list markers.
	DefaultBullet = "•"
	// ZeroWidthSpace is the word-boundary marker Slack accepts next to
	// emphasis delimiters.
	ZeroWidthSpace = "\u200b"
)

// RenderConfig 渲染配置
type RenderConfig struct {
	// Bullet 无序列表符号
	Bullet string
	// WordBoundary 在强调符号外侧插入零宽空格（CJK 文本需要）
	WordBoundary bool
	// NormalizeUnicode 在转换前执行 NFC 归一化
	NormalizeUnicode bool
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Bullet:           DefaultBullet,
		WordBoundary:     true,
		NormalizeUnicode: false,
	}
}

// Marker returns the boundary marker inserted around emphasis, or "" when
// boundary marking is disabled.
func (c *RenderConfig) Marker() string {
	if c == nil || c.WordBoundary {
		return ZeroWidthSpace
	}
	return ""
}

// BulletSymbol returns the configured bullet, falling back to the default.
func (c *RenderConfig) BulletSymbol() string {
	if c == nil || c.Bullet == "" {
		return DefaultBullet
	}
	return c.Bullet
}
