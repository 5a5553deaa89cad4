package lz77

// Default match search bounds.
const (
	DefaultWindowSize    = 100
	DefaultLookaheadSize = 8
)

// MaxTokenLength is the largest Token.Length that Decompress accepts.
// Compress clamps LookaheadSize to it.
const MaxTokenLength = 1 << 16

// Options configures Compress.
type Options struct {
	// WindowSize is the number of already-processed bytes eligible as a
	// match source.  Values <= 0 mean DefaultWindowSize.
	WindowSize int
	// LookaheadSize is the longest match considered.  Values <= 0 mean
	// DefaultLookaheadSize; values above MaxTokenLength mean MaxTokenLength.
	LookaheadSize int
}

// DefaultOptions returns options for default compression (window 100,
// lookahead 8).
func DefaultOptions() *Options {
	return &Options{
		WindowSize:    DefaultWindowSize,
		LookaheadSize: DefaultLookaheadSize,
	}
}

func (opts *Options) bounds() (window int, lookahead int) {
	if opts == nil {
		opts = DefaultOptions()
	}
	window, lookahead = opts.WindowSize, opts.LookaheadSize
	if window <= 0 {
		window = DefaultWindowSize
	}
	if lookahead <= 0 {
		lookahead = DefaultLookaheadSize
	}
	if lookahead > MaxTokenLength {
		lookahead = MaxTokenLength
	}
	return window, lookahead
}
