package mrkdwnify

// ConvertOptions holds options for markdown conversion.
type ConvertOptions struct {
	Config *RenderConfig
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig replaces the whole RenderConfig. Options applied after it
// modify a copy, never config itself.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		if config == nil {
			return
		}
		c := *config
		opts.Config = &c
	}
}

// WithBullet sets the symbol that replaces "- " and "* " list markers.
func WithBullet(bullet string) Option {
	return func(opts *ConvertOptions) {
		opts.Config.Bullet = bullet
	}
}

// WithWordBoundary sets whether zero-width spaces are inserted around
// emphasis delimiters.
func WithWordBoundary(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.Config.WordBoundary = enable
	}
}

// WithNormalizeUnicode sets whether input is NFC-normalized first.
func WithNormalizeUnicode(enable bool) Option {
	return func(opts *ConvertOptions) {
		opts.Config.NormalizeUnicode = enable
	}
}

// defaultConvertOptions returns the default conversion options.
func defaultConvertOptions() *ConvertOptions {
	c := *DefaultConfig()
	return &ConvertOptions{
		Config: &c,
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
