package unigo

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/majormentor/unigo/ai/mock"
	"github.com/majormentor/unigo/core"
	"github.com/majormentor/unigo/match"
	"github.com/majormentor/unigo/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	catalog, err := NewCatalog("",
		WithInMemory(),
		WithEmbedder(mock.NewMockEmbedder()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { catalog.Close() })

	ctx := context.Background()
	pipeline, err := catalog.NewIngestPipeline()
	require.NoError(t, err)
	defer pipeline.Release()

	require.NoError(t, pipeline.IngestPrograms(ctx,
		&core.ProgramRecord{
			ProgramID: "major-ai",
			Name:      "지능정보학과",
			Summary:   "인공지능",
			JobText:   "AI엔지니어, 데이터사이언티스트",
			Offerings: json.RawMessage(`[{"schoolName":"서울대학교","majorName":"지능정보학부"}]`),
		},
		&core.ProgramRecord{
			ProgramID:      "major-cs",
			Name:           "컴퓨터공학과",
			Aliases:        []string{"컴공"},
			Summary:        "컴퓨터 시스템",
			JobText:        "소프트웨어개발자",
			Qualifications: json.RawMessage(`["정보처리기사"]`),
			Salary:         json.RawMessage(`350`),
			ChartData:      json.RawMessage(`[{"gender":"남 70% / 여 30%","satisfaction":4.1}]`),
			Offerings: json.RawMessage(`[
				{"schoolName":"한양대학교[본교]"},
				{"schoolName":"서울대학교","majorName":"컴퓨터공학부"}
			]`),
		},
		&core.ProgramRecord{
			ProgramID: "major-nurse",
			Name:      "간호학과",
			Summary:   "간호",
		},
	))

	require.NoError(t, catalog.InstitutionRepository().AddInstitutions(ctx,
		&core.InstitutionRecord{Name: "한양대학교[본교]", Code: "0021", URL: "https://adiga.kr/univ/0021"},
		&core.InstitutionRecord{Name: "서울대학교", Code: "0001", URL: "https://adiga.kr/univ/0001"},
	))

	return catalog
}

func TestListDepartments_All(t *testing.T) {
	catalog := newTestCatalog(t)

	out, err := catalog.ListDepartments(context.Background(), "전체", 10)
	require.NoError(t, err)

	assert.Contains(t, out, "(총 3개 중 상위 3개 표시)")
	assert.Contains(t, out, "`간호학과`")
	assert.Contains(t, out, "`컴퓨터공학과`")
	assert.Contains(t, out, "개설 대학 예시: 한양대학교[본교] 컴퓨터공학과, 서울대학교 컴퓨터공학부")
}

func TestListDepartments_Keyword(t *testing.T) {
	catalog := newTestCatalog(t)

	// The summary document of 지능정보학과 was embedded from exactly this
	// text, so the deterministic mock embedding makes it the top vector hit.
	out, err := catalog.ListDepartments(context.Background(), "인공지능", 5)
	require.NoError(t, err)
	assert.Contains(t, out, "`지능정보학과`")
}

func TestListDepartments_ExactName(t *testing.T) {
	catalog := newTestCatalog(t)

	out, err := catalog.ListDepartments(context.Background(), "컴퓨터공학과", 5)
	require.NoError(t, err)
	assert.Contains(t, out, "1. `컴퓨터공학과`")
}

func TestCareerInfo(t *testing.T) {
	catalog := newTestCatalog(t)

	info, err := catalog.CareerInfo(context.Background(), "컴퓨터공학과")
	require.NoError(t, err)

	assert.Equal(t, "컴퓨터공학과", info.Major)
	assert.Equal(t, []string{"소프트웨어개발자"}, info.Jobs)
	assert.Equal(t, "정보처리기사", info.Qualifications)
	assert.Equal(t, "남 70% / 여 30%", info.GenderRatio)
	assert.Equal(t, "4.1", info.Satisfaction)
	assert.Equal(t, 4200.0, info.AnnualSalary)
	assert.NotEmpty(t, info.Notice)
}

func TestCareerInfo_EmptyQuery(t *testing.T) {
	catalog := newTestCatalog(t)

	_, err := catalog.CareerInfo(context.Background(), "  ")
	assert.ErrorIs(t, err, resolve.ErrEmptyQuery)
}

func TestUniversitiesByDepartment(t *testing.T) {
	catalog := newTestCatalog(t)

	offerings, err := catalog.UniversitiesByDepartment(context.Background(), "컴퓨터공학과")
	require.NoError(t, err)
	require.Len(t, offerings, 2)
	assert.Equal(t, "한양대학교[본교]", offerings[0].Institution)
	assert.Equal(t, "컴퓨터공학과", offerings[0].Department)
	assert.Equal(t, "컴퓨터공학부", offerings[1].Department)
}

func TestUniversitiesByDepartment_Alias(t *testing.T) {
	catalog := newTestCatalog(t)

	offerings, err := catalog.UniversitiesByDepartment(context.Background(), "컴공")
	require.NoError(t, err)
	require.NotEmpty(t, offerings)
	assert.Equal(t, "한양대학교[본교]", offerings[0].Institution)
}

func TestUniversitiesByDepartment_NoOfferings(t *testing.T) {
	catalog := newTestCatalog(t)

	// 간호학과 exists but carries no offering entries.
	_, err := catalog.UniversitiesByDepartment(context.Background(), "간호학과")
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestAdmissionInfo_Confirmed(t *testing.T) {
	catalog := newTestCatalog(t)

	info, err := catalog.AdmissionInfo(context.Background(), "한양대학교", "컴퓨터공학과")
	require.NoError(t, err)

	assert.Equal(t, "0021", info.Institution.Code)
	assert.Equal(t, match.Confirmed, info.Verification.Outcome)
	assert.Contains(t, info.Message, "컴퓨터공학과 입시정보 확인하기")
	assert.NotEmpty(t, info.Guide)
	assert.Empty(t, info.SuggestedDepartments)
}

func TestAdmissionInfo_Suggested(t *testing.T) {
	catalog := newTestCatalog(t)

	info, err := catalog.AdmissionInfo(context.Background(), "서울대학교", "컴퓨터공학")
	require.NoError(t, err)

	assert.Equal(t, match.Suggested, info.Verification.Outcome)
	assert.Contains(t, info.SuggestedDepartments, "컴퓨터공학부")
	assert.Contains(t, info.Message, "정확한 학과명을 찾을 수 없습니다")
}

func TestAdmissionInfo_NoDepartment(t *testing.T) {
	catalog := newTestCatalog(t)

	info, err := catalog.AdmissionInfo(context.Background(), "서울대학교", "")
	require.NoError(t, err)
	assert.Nil(t, info.Verification)
	assert.Equal(t, "[서울대학교 입시정보 확인하기](https://adiga.kr/univ/0001)", info.Message)
}

func TestAdmissionInfo_UnknownInstitution(t *testing.T) {
	catalog := newTestCatalog(t)

	_, err := catalog.AdmissionInfo(context.Background(), "국제우주정거장", "컴퓨터공학과")
	assert.ErrorIs(t, err, match.ErrInstitutionNotFound)
}

func TestSearchHelp(t *testing.T) {
	catalog := newTestCatalog(t)
	assert.Contains(t, catalog.SearchHelp(), "검색 가이드")
}
