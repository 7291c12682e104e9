package taxonomy

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTaxonomy() *Taxonomy {
	return New(map[string][]string{
		"공학계열": {
			"컴퓨터 / 소프트웨어 / 인공지능",
			"전기 / 전자 / 통신",
			"기계 / 로봇",
		},
		"자연계열": {
			"수학 / 통계",
			"물리 / 화학",
		},
	})
}

func TestExpand_BroadCategory(t *testing.T) {
	tax := testTaxonomy()

	tokens, embedText := tax.Expand("공학계열")
	assert.Equal(t, []string{"컴퓨터", "소프트웨어", "인공지능", "전기", "전자", "통신", "기계", "로봇"}, tokens)
	assert.Equal(t, "컴퓨터 소프트웨어 인공지능 전기 전자 통신 기계 로봇", embedText)
}

func TestExpand_SubCategory(t *testing.T) {
	tax := testTaxonomy()

	tokens, _ := tax.Expand("컴퓨터 / 소프트웨어 / 인공지능")
	assert.Equal(t, []string{"컴퓨터", "소프트웨어", "인공지능"}, tokens)

	// Partial sub-category text also matches rule 2.
	tokens, _ = tax.Expand("소프트웨어 / 인공지능")
	assert.Equal(t, []string{"소프트웨어", "인공지능"}, tokens)
}

func TestExpand_Idempotent(t *testing.T) {
	tax := testTaxonomy()

	first, embedText := tax.Expand("컴퓨터 / 소프트웨어 / 인공지능")
	second, _ := tax.Expand(embedText)
	assert.Equal(t, first, second)
}

func TestExpand_PlainQuery(t *testing.T) {
	tax := testTaxonomy()

	tokens, embedText := tax.Expand("AI, 데이터")
	assert.Equal(t, []string{"AI", "데이터"}, tokens)
	assert.Equal(t, "AI 데이터", embedText)

	tokens, embedText = tax.Expand("간호학과")
	assert.Equal(t, []string{"간호학과"}, tokens)
	assert.Equal(t, "간호학과", embedText)
}

func TestExpand_DuplicateTokens(t *testing.T) {
	tax := New(map[string][]string{
		"중복계열": {"컴퓨터 / 소프트웨어", "소프트웨어 / 게임"},
	})

	tokens, _ := tax.Expand("중복계열")
	assert.Equal(t, []string{"컴퓨터", "소프트웨어", "게임"}, tokens)
}

func TestExpand_BlankQuery(t *testing.T) {
	tax := testTaxonomy()

	tokens, embedText := tax.Expand("   ")
	assert.Empty(t, tokens)
	assert.Empty(t, embedText)
}

func TestExpand_EmptyTaxonomy(t *testing.T) {
	tax := New(nil)

	tokens, embedText := tax.Expand("컴퓨터 / 소프트웨어")
	assert.Equal(t, []string{"컴퓨터", "소프트웨어"}, tokens)
	assert.Equal(t, "컴퓨터 소프트웨어", embedText)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "categories.json")
		err := os.WriteFile(path, []byte(`{"공학계열": ["컴퓨터 / 소프트웨어"]}`), 0644)
		require.NoError(t, err)

		tax := Load(path, slog.Default())
		assert.Equal(t, 1, tax.Len())
		assert.Equal(t, []string{"컴퓨터 / 소프트웨어"}, tax.SubCategories("공학계열"))
	})

	t.Run("missing file degrades to empty", func(t *testing.T) {
		tax := Load(filepath.Join(dir, "nope.json"), slog.Default())
		assert.Equal(t, 0, tax.Len())
	})

	t.Run("malformed file degrades to empty", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(path, []byte(`["not","a","map"]`), 0644))

		tax := Load(path, nil)
		assert.Equal(t, 0, tax.Len())
	})
}
