package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, similarity("컴퓨터공학과", "컴퓨터공학과"))
	assert.Equal(t, 0.0, similarity("", "컴퓨터공학과"))
	assert.Equal(t, 0.0, similarity("컴퓨터공학과", ""))

	// One syllable of six differs.
	assert.InDelta(t, 5.0/6.0, similarity("컴퓨터공학과", "컴퓨터공학부"), 1e-9)

	// Nothing in common.
	assert.Equal(t, 0.0, similarity("간호학과", "xyz"))

	// A Hangul syllable costs one edit, not one per byte.
	assert.InDelta(t, 3.0/5.0, similarity("한양대학교", "없는대학교"), 1e-9)
}
