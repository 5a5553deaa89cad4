package lz77

import "errors"

// ErrMalformedToken is returned for a token that references output not yet
// produced, or for a token record that cannot be parsed.
var ErrMalformedToken = errors.New("lz77: malformed token")
