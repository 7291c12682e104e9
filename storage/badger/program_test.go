package badger

import (
	"context"
	"testing"

	"github.com/majormentor/unigo/core"
	"github.com/majormentor/unigo/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPrograms(t *testing.T, programs storage.ProgramRepository) {
	t.Helper()
	ctx := context.Background()

	records := []*core.ProgramRecord{
		{
			ProgramID: "major-1",
			Name:      "컴퓨터공학과",
			Aliases:   []string{"컴공", "컴퓨터공학"},
			Offerings: []byte(`[{"schoolName":"서울대학교","majorName":"컴퓨터공학부"},{"schoolName":"한양대학교[본교]"}]`),
		},
		{
			ProgramID: "major-2",
			Name:      "소프트웨어학과",
			Aliases:   []string{"소프트웨어공학과"},
			Offerings: []byte(`[{"schoolName":"한양대학교[본교]","majorName":"소프트웨어학부"}]`),
		},
		{
			ProgramID: "major-3",
			Name:      "간호학과",
		},
	}
	require.NoError(t, programs.AddPrograms(ctx, records...))
}

func TestProgramRepository_ExactName(t *testing.T) {
	programs, _, _, backend, err := NewMemoryCatalog()
	require.NoError(t, err)
	defer backend.Close()

	seedPrograms(t, programs)
	ctx := context.Background()

	record, err := programs.GetProgramByName(ctx, "컴퓨터공학과")
	require.NoError(t, err)
	assert.Equal(t, "major-1", record.ProgramID)

	// Key comparison ignores whitespace and case.
	record, err = programs.GetProgramByName(ctx, "컴퓨터 공학과")
	require.NoError(t, err)
	assert.Equal(t, "major-1", record.ProgramID)

	_, err = programs.GetProgramByName(ctx, "천문학과")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestProgramRepository_FindByAlias(t *testing.T) {
	programs, _, _, backend, err := NewMemoryCatalog()
	require.NoError(t, err)
	defer backend.Close()

	seedPrograms(t, programs)
	ctx := context.Background()

	record, err := programs.FindByAlias(ctx, "컴공")
	require.NoError(t, err)
	assert.Equal(t, "major-1", record.ProgramID)

	_, err = programs.FindByAlias(ctx, "의예과")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestProgramRepository_FindByNameContains(t *testing.T) {
	programs, _, _, backend, err := NewMemoryCatalog()
	require.NoError(t, err)
	defer backend.Close()

	seedPrograms(t, programs)
	ctx := context.Background()

	matches, err := programs.FindByNameContains(ctx, "학과", 10)
	require.NoError(t, err)
	require.Len(t, matches, 3)
	// Name order keeps results stable.
	assert.Equal(t, "간호학과", matches[0].Name)

	matches, err = programs.FindByNameContains(ctx, "학과", 2)
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestProgramRepository_FindByOfferingContains(t *testing.T) {
	programs, _, _, backend, err := NewMemoryCatalog()
	require.NoError(t, err)
	defer backend.Close()

	seedPrograms(t, programs)
	ctx := context.Background()

	matches, err := programs.FindByOfferingContains(ctx, "한양대학교")
	require.NoError(t, err)
	assert.Len(t, matches, 2)

	// Whitespace in the query does not matter.
	matches, err = programs.FindByOfferingContains(ctx, "서울 대학교")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "major-1", matches[0].ProgramID)
}

func TestProgramRepository_ListNamesAndCount(t *testing.T) {
	programs, _, _, backend, err := NewMemoryCatalog()
	require.NoError(t, err)
	defer backend.Close()

	seedPrograms(t, programs)
	ctx := context.Background()

	names, err := programs.ListNames(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"간호학과", "소프트웨어학과", "컴퓨터공학과"}, names)

	names, err = programs.ListNames(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, names, 2)

	count, err := programs.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestProgramRepository_Batch(t *testing.T) {
	programs, _, _, backend, err := NewMemoryCatalog()
	require.NoError(t, err)
	defer backend.Close()

	seedPrograms(t, programs)
	ctx := context.Background()

	ids := []core.ID{
		core.IDFromContent("major-1"),
		core.IDFromContent("missing"),
		core.IDFromContent("major-3"),
	}
	records, err := programs.GetPrograms(ctx, ids...)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "major-1", records[0].ProgramID)
	assert.Equal(t, "major-3", records[1].ProgramID)
}

func TestInstitutionRepository_Lookup(t *testing.T) {
	_, institutions, _, backend, err := NewMemoryCatalog()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	require.NoError(t, institutions.AddInstitutions(ctx,
		&core.InstitutionRecord{Name: "한양대학교[본교]", Code: "0021", URL: "https://adiga.kr/univ/0021"},
		&core.InstitutionRecord{Name: "서울대학교", Code: "0001", URL: "https://adiga.kr/univ/0001"},
	))

	// Bracketed campus suffix and whitespace are ignored on lookup.
	record, err := institutions.Lookup(ctx, "한양 대학교")
	require.NoError(t, err)
	assert.Equal(t, "0021", record.Code)

	_, err = institutions.Lookup(ctx, "없는대학교")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	all, err := institutions.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "서울대학교", all[0].Name)
}

func TestDocRepository_FindNearest(t *testing.T) {
	_, _, docs, backend, err := NewMemoryCatalog()
	require.NoError(t, err)
	defer backend.Close()

	ctx := context.Background()
	require.NoError(t, docs.PutDocs(ctx,
		&storage.SearchDoc{Program: 1, Doc: core.DocSummary, Vector: []float32{1, 0, 0}},
		&storage.SearchDoc{Program: 1, Doc: core.DocJobs, Vector: []float32{0.9, 0.1, 0}},
		&storage.SearchDoc{Program: 2, Doc: core.DocSummary, Vector: []float32{0, 1, 0}},
		&storage.SearchDoc{Program: 3, Doc: core.DocSummary, Vector: []float32{0, 0, 1}},
	))

	hits, err := docs.FindNearest(ctx, []float32{1, 0, 0}, 3)
	require.NoError(t, err)
	require.Len(t, hits, 3)

	assert.Equal(t, core.ID(1), hits[0].Program)
	assert.Equal(t, core.DocSummary, hits[0].Doc)
	for i := 0; i < len(hits)-1; i++ {
		assert.GreaterOrEqual(t, hits[i].Score, hits[i+1].Score)
	}
}
