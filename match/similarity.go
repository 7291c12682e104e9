package match

import "github.com/xrash/smetrics"

// similarity scores two folded name keys in [0, 1] as normalized edit
// distance: 1 means identical, 0 means nothing in common.
//
// The strings are interned to one byte per distinct rune before the edit
// distance runs, so a Hangul syllable counts as a single edit the same way
// an ASCII letter does.
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	ia, ib := internRunes(ra, rb)
	dist := smetrics.WagnerFischer(ia, ib, 1, 1, 1)

	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	score := 1 - float64(dist)/float64(maxLen)
	if score < 0 {
		return 0
	}
	return score
}

// internRunes maps every distinct rune across both inputs to a single byte,
// preserving equality. Department and institution names are far shorter
// than the 256 distinct runes the mapping can hold.
func internRunes(a, b []rune) (string, string) {
	codes := make(map[rune]byte, len(a)+len(b))
	intern := func(runes []rune) string {
		out := make([]byte, len(runes))
		for i, r := range runes {
			code, ok := codes[r]
			if !ok {
				code = byte(len(codes))
				codes[r] = code
			}
			out[i] = code
		}
		return string(out)
	}
	return intern(a), intern(b)
}
