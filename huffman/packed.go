package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/icza/bitio"
)

// PackBits packs a string of '0' and '1' characters into bytes, most
// significant bit first.  The final byte is padded with zero bits.
func PackBits(bits string) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow((len(bits) + 7) / 8)
	w := bitio.NewWriter(&buf)
	for i := 0; i < len(bits); i++ {
		var bit bool
		switch bits[i] {
		case '0':
		case '1':
			bit = true
		default:
			return nil, fmt.Errorf("%w: byte %q at bit %d is not a bit", ErrMalformedEncoding, bits[i], i)
		}
		if err := w.WriteBool(bit); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnpackBits is the inverse of PackBits: it reads the first n bits of data
// back into a string of '0' and '1' characters.
func UnpackBits(data []byte, n int) (string, error) {
	if n < 0 || n > 8*len(data) {
		return "", fmt.Errorf("%w: bit count %d outside 0 .. %d", ErrMalformedEncoding, n, 8*len(data))
	}

	var sb strings.Builder
	sb.Grow(n)
	r := bitio.NewReader(bytes.NewReader(data))
	for i := 0; i < n; i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", err
		}
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String(), nil
}

// EncodePacked is Encode followed by PackBits.  It returns the packed bytes
// and the number of valid bits.
func (c *Codec) EncodePacked(text string) ([]byte, int, error) {
	bits, err := c.Encode(text)
	if err != nil {
		return nil, 0, err
	}
	data, err := PackBits(bits)
	if err != nil {
		return nil, 0, err
	}
	return data, len(bits), nil
}

// DecodePacked is UnpackBits followed by Decode.
func (c *Codec) DecodePacked(data []byte, n int) (string, error) {
	bits, err := UnpackBits(data, n)
	if err != nil {
		return "", err
	}
	return c.Decode(bits)
}
