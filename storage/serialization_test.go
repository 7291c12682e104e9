package storage

import (
	"testing"

	"github.com/majormentor/unigo/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstitutionRoundTrip(t *testing.T) {
	record := &core.InstitutionRecord{
		Name: "서울대학교",
		Code: "0001",
		URL:  "https://adiga.kr/univ/0001",
	}

	data := MarshalInstitution(record)
	got, err := UnmarshalInstitution(data)
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestInstitutionUnmarshal_Truncated(t *testing.T) {
	record := &core.InstitutionRecord{Name: "연세대학교", Code: "0002"}
	data := MarshalInstitution(record)

	_, err := UnmarshalInstitution(data[:len(data)-2])
	assert.ErrorIs(t, err, ErrSerializationFailed)
}

func TestSearchDocRoundTrip(t *testing.T) {
	doc := &SearchDoc{
		Program: core.IDFromContent("major-100"),
		Doc:     core.DocSubjects,
		Vector:  []float32{0.25, -0.5, 0.75},
	}

	data := MarshalSearchDoc(doc)
	got, err := UnmarshalSearchDoc(data)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestProgramRoundTrip(t *testing.T) {
	record := &core.ProgramRecord{
		Id:        core.IDFromContent("major-7"),
		ProgramID: "major-7",
		Name:      "컴퓨터공학과",
		Aliases:   []string{"컴공", "컴퓨터공학"},
		Summary:   "컴퓨터 시스템과 소프트웨어를 다룬다.",
		JobText:   "소프트웨어개발자, 데이터엔지니어",
		Offerings: []byte(`[{"schoolName":"서울대학교","majorName":"컴퓨터공학부"}]`),
		Salary:    []byte(`320`),
	}

	data, err := MarshalProgram(record)
	require.NoError(t, err)

	got, err := UnmarshalProgram(data)
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestUnmarshalProgram_Malformed(t *testing.T) {
	_, err := UnmarshalProgram([]byte("{not json"))
	assert.ErrorIs(t, err, ErrSerializationFailed)
}
