package lz77

// Compress splits text into Tokens.  Options nil means DefaultOptions().
//
// At each cursor position the longest match of m bytes is taken from
// FindMatch.  A match that would run to the end of text is shortened by one
// byte, so that the last byte of text is always carried as a literal.  If a
// match of at least one byte remains, Compress emits {cursor-start, m,
// text[cursor+m]} and advances by m+1; otherwise it emits the raw literal
// {0, 0, text[cursor]} and advances by one.
func Compress(text string, opts *Options) []Token {
	window, lookahead := opts.bounds()

	tokens := make([]Token, 0, len(text)/2+1)
	cursor := 0
	for cursor < len(text) {
		start, length := FindMatch(text, cursor, window, lookahead)
		if cursor+length == len(text) {
			length--
		}

		if length > 0 {
			tokens = append(tokens, Token{
				Offset:  cursor - start,
				Length:  length,
				Literal: text[cursor+length],
			})
			cursor += length + 1
		} else {
			tokens = append(tokens, Token{Literal: text[cursor]})
			cursor++
		}
	}
	return tokens
}

// CompressString is Compress followed by FormatTokens.
func CompressString(text string, opts *Options) string {
	return FormatTokens(Compress(text, opts))
}
