/*
Package lz77 implements a small sliding-window Lempel-Ziv compressor over byte
strings.

Compress emits a sequence of Tokens.  A Token with Offset 0 and Length 0 is a
raw literal.  Any other Token copies Length bytes starting Offset bytes behind
the end of the output produced so far, then appends its Literal.  The copy is
done one byte at a time, so a Token may read bytes that it wrote itself
(Offset < Length expands a short run into a long one).

The match search looks back at most Options.WindowSize bytes and considers
at most Options.LookaheadSize bytes ahead of the cursor.  The defaults are 100
and 8.

Tokens have a text form: each token is written as "[offset|length|literal]"
with decimal offset and length and exactly one literal byte, and tokens are
concatenated with no separator.

# Examples

Round-trip through the text form:

	s := lz77.CompressString("ABABABA,,,...", nil)
	// s == "[0|0|A][0|0|B][2|2|A][4|2|,][1|1|,][0|0|.][1|1|.]"
	text, err := lz77.DecompressString(s)
	if err != nil {
		return err
	}

Compress with a wider window:

	tokens := lz77.Compress(data, &lz77.Options{WindowSize: 4096, LookaheadSize: 16})
	text, err := lz77.Decompress(tokens)
*/
package lz77
