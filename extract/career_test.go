package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobs(t *testing.T) {
	jobs := Jobs("소프트웨어개발자, 데이터분석가/웹개발자\n소프트웨어개발자, a")
	assert.Equal(t, []string{"소프트웨어개발자", "데이터분석가", "웹개발자"}, jobs)

	assert.Empty(t, Jobs(""))
	assert.Empty(t, Jobs(" , / "))
}

func TestCareerFields(t *testing.T) {
	raw := json.RawMessage(`[
		{"gradeuate": "기업 및 산업체", "description": "<p>IT 기업</p>"},
		{"graduate": "연구소", "description": "정부출연 연구소"},
		{"description": ""},
		"not-an-object"
	]`)

	fields := CareerFields(raw)
	assert.Equal(t, []CareerField{
		{Category: "기업 및 산업체", Description: "IT 기업"},
		{Category: "연구소", Description: "정부출연 연구소"},
	}, fields)
}

func TestCareerFields_Malformed(t *testing.T) {
	assert.Empty(t, CareerFields(nil))
	assert.Empty(t, CareerFields(json.RawMessage(`null`)))
	assert.Empty(t, CareerFields(json.RawMessage(`{"not":"a list"}`)))
	assert.Empty(t, CareerFields(json.RawMessage(`{{{`)))
}

func TestActivities(t *testing.T) {
	raw := json.RawMessage(`[
		{"act_name": "코딩대회", "act_description": "<b>알고리즘</b> 대회 참가"},
		{"act_name": "", "act_description": ""},
		{"act_name": "동아리"}
	]`)

	activities := Activities(raw)
	assert.Equal(t, []Activity{
		{Name: "코딩대회", Description: "알고리즘 대회 참가"},
		{Name: "동아리"},
	}, activities)
}

func TestSubjects_KeyDrift(t *testing.T) {
	raw := json.RawMessage(`[
		{"SBJECT_NM": "자료구조", "SBJECT_SUMRY": "<p>자료의 구조</p>"},
		{"subject_name": "운영체제", "subject_description": "OS 기초"},
		{}
	]`)

	subjects := Subjects(raw)
	assert.Equal(t, []Subject{
		{Name: "자료구조", Summary: "자료의 구조"},
		{Name: "운영체제", Summary: "OS 기초"},
	}, subjects)
}

func TestQualifications(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		joined, list := Qualifications(json.RawMessage(`["정보처리기사", " 네트워크관리사 ", "정보처리기사"]`))
		assert.Equal(t, "정보처리기사, 네트워크관리사", joined)
		assert.Equal(t, []string{"정보처리기사", "네트워크관리사"}, list)
	})

	t.Run("delimited string", func(t *testing.T) {
		joined, list := Qualifications(json.RawMessage(`"정보처리기사, 네트워크관리사/리눅스마스터"`))
		assert.Equal(t, "정보처리기사, 네트워크관리사, 리눅스마스터", joined)
		assert.Len(t, list, 3)
	})

	t.Run("null", func(t *testing.T) {
		joined, list := Qualifications(json.RawMessage(`null`))
		assert.Equal(t, "", joined)
		assert.Nil(t, list)
	})

	t.Run("malformed", func(t *testing.T) {
		joined, list := Qualifications(json.RawMessage(`12345`))
		assert.Equal(t, "", joined)
		assert.Nil(t, list)
	})
}
