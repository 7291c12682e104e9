package format

import (
	"strings"
	"testing"

	"github.com/majormentor/unigo/core"
	"github.com/majormentor/unigo/match"
	"github.com/stretchr/testify/assert"
)

func TestDepartmentList(t *testing.T) {
	out := DepartmentList("인공지능", []string{"지능정보학과", "소프트웨어학과"}, -1,
		map[string][]string{
			"지능정보학과": {"서울대학교 지능정보학과", "고려대학교 지능정보학부"},
		})

	assert.Contains(t, out, "'인공지능'에 대한 학과 2개")
	assert.Contains(t, out, "1. `지능정보학과`")
	assert.Contains(t, out, "2. `소프트웨어학과`")
	assert.Contains(t, out, "개설 대학 예시: 서울대학교 지능정보학과, 고려대학교 지능정보학부")
	assert.NotContains(t, out, "중 상위")
}

func TestDepartmentList_WithTotal(t *testing.T) {
	out := DepartmentList("전체", []string{"간호학과"}, 312, nil)
	assert.Contains(t, out, "(총 312개 중 상위 1개 표시)")
}

func TestAdmissionMessage(t *testing.T) {
	institution := &core.InstitutionRecord{
		Name: "한양대학교[본교]",
		Code: "0021",
		URL:  "https://adiga.kr/univ/0021",
	}

	t.Run("confirmed", func(t *testing.T) {
		msg := AdmissionMessage(&match.Result{
			Outcome:     match.Confirmed,
			Institution: institution,
		}, "컴퓨터공학과")
		assert.Equal(t, "[한양대학교[본교] 컴퓨터공학과 입시정보 확인하기](https://adiga.kr/univ/0021)", msg)
	})

	t.Run("suggested", func(t *testing.T) {
		msg := AdmissionMessage(&match.Result{
			Outcome:     match.Suggested,
			Institution: institution,
			Candidates:  []core.Candidate{{Name: "소프트웨어학부", Score: 0.9}},
		}, "소프트웨어")
		assert.Contains(t, msg, "정확한 학과명을 찾을 수 없습니다")
		assert.Contains(t, msg, "**'소프트웨어학부'**")
	})

	t.Run("global fallback", func(t *testing.T) {
		msg := AdmissionMessage(&match.Result{
			Outcome:      match.GlobalFallback,
			Institution:  institution,
			FallbackName: "컴퓨터공학과",
		}, "컴공")
		assert.Contains(t, msg, "관련된 **'컴퓨터공학과'**가 확인되었습니다")
	})

	t.Run("not found", func(t *testing.T) {
		msg := AdmissionMessage(&match.Result{
			Outcome:     match.NotFound,
			Institution: institution,
		}, "간호학과")
		assert.Contains(t, msg, "개설 여부가 확인되지 않습니다")
		assert.True(t, strings.HasPrefix(msg, "[한양대학교[본교] 입시정보 확인하기]"))
	})
}

func TestSearchGuide(t *testing.T) {
	guide := SearchGuide()
	assert.Contains(t, guide, "전공 탐색")
	assert.Contains(t, guide, "개설 대학 찾기")
	assert.Contains(t, guide, "진로 및 상세 정보")
}
