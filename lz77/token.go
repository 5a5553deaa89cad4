package lz77

import (
	"fmt"
	"strconv"
	"strings"
)

// Token is one step of the compressed stream.
type Token struct {
	Offset  int
	Length  int
	Literal byte
}

// IsLiteral returns true iff this Token carries no back-reference.
func (t Token) IsLiteral() bool {
	return t.Offset == 0 && t.Length == 0
}

// String returns the "[offset|length|literal]" form of this Token.
func (t Token) String() string {
	return string(t.appendTo(make([]byte, 0, 8)))
}

func (t Token) appendTo(buf []byte) []byte {
	buf = append(buf, '[')
	buf = strconv.AppendInt(buf, int64(t.Offset), 10)
	buf = append(buf, '|')
	buf = strconv.AppendInt(buf, int64(t.Length), 10)
	buf = append(buf, '|', t.Literal, ']')
	return buf
}

var _ fmt.Stringer = Token{}

// FormatTokens writes tokens in their concatenated text form.
func FormatTokens(tokens []Token) string {
	buf := make([]byte, 0, 8*len(tokens))
	for _, t := range tokens {
		buf = t.appendTo(buf)
	}
	return string(buf)
}

// ParseTokens parses the text form written by FormatTokens.  The literal
// field is positional, so any byte (including '|', '[' and ']') is accepted
// as a literal.  It returns an error wrapping ErrMalformedToken on the first
// record that does not parse.
func ParseTokens(s string) ([]Token, error) {
	tokens := make([]Token, 0, len(s)/7)
	pos := 0
	for pos < len(s) {
		t, next, err := parseToken(s, pos)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d: %v", ErrMalformedToken, len(tokens), err)
		}
		tokens = append(tokens, t)
		pos = next
	}
	return tokens, nil
}

func parseToken(s string, pos int) (Token, int, error) {
	if s[pos] != '[' {
		return Token{}, pos, fmt.Errorf("expected '[' at byte %d, got %q", pos, s[pos])
	}
	pos++

	offset, pos, err := parseField(s, pos)
	if err != nil {
		return Token{}, pos, err
	}
	length, pos, err := parseField(s, pos)
	if err != nil {
		return Token{}, pos, err
	}

	if pos+1 >= len(s) {
		return Token{}, pos, fmt.Errorf("truncated record at byte %d", pos)
	}
	if s[pos+1] != ']' {
		return Token{}, pos, fmt.Errorf("expected ']' at byte %d, got %q", pos+1, s[pos+1])
	}
	return Token{Offset: offset, Length: length, Literal: s[pos]}, pos + 2, nil
}

// parseField reads a non-empty run of decimal digits terminated by '|', and
// returns its value and the position just past the '|'.
func parseField(s string, pos int) (int, int, error) {
	end := strings.IndexByte(s[pos:], '|')
	if end < 0 {
		return 0, pos, fmt.Errorf("missing '|' after byte %d", pos)
	}
	digits := s[pos : pos+end]
	if digits == "" {
		return 0, pos, fmt.Errorf("empty number at byte %d", pos)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, pos, fmt.Errorf("expected digit at byte %d, got %q", pos+i, digits[i])
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, pos, fmt.Errorf("number at byte %d: %v", pos, err)
	}
	return n, pos + end + 1, nil
}
