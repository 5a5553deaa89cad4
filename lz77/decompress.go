package lz77

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Decompress rebuilds the text from tokens.  It returns an error wrapping
// ErrMalformedToken if any token refers to output that has not been produced
// yet, or has a Length above MaxTokenLength; no partial output is returned.
func Decompress(tokens []Token) (string, error) {
	out := make([]byte, 0, 2*len(tokens))
	for index, t := range tokens {
		if !t.IsLiteral() {
			if err := checkToken(t, len(out)); err != nil {
				return "", fmt.Errorf("%w: token %d %s: %v", ErrMalformedToken, index, t, err)
			}

			// Byte at a time: with Offset < Length the source overlaps the
			// bytes being written.
			from := len(out) - t.Offset
			for k := 0; k < t.Length; k++ {
				assert.Assertf(from+k < len(out), "copy source %d not below output length %d", from+k, len(out))
				out = append(out, out[from+k])
			}
		}
		out = append(out, t.Literal)
	}
	return string(out), nil
}

func checkToken(t Token, produced int) error {
	switch {
	case t.Offset < 0:
		return fmt.Errorf("negative offset %d", t.Offset)
	case t.Length < 0:
		return fmt.Errorf("negative length %d", t.Length)
	case t.Length > MaxTokenLength:
		return fmt.Errorf("length %d exceeds maximum %d", t.Length, MaxTokenLength)
	case t.Offset == 0:
		return fmt.Errorf("zero offset with length %d", t.Length)
	case t.Offset > produced:
		return fmt.Errorf("offset %d exceeds the %d bytes decoded so far", t.Offset, produced)
	}
	return nil
}

// DecompressString is ParseTokens followed by Decompress.
func DecompressString(s string) (string, error) {
	tokens, err := ParseTokens(s)
	if err != nil {
		return "", err
	}
	return Decompress(tokens)
}
