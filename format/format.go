// Copyright 2025 Major Mentor
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package format renders catalog results as the user-facing Korean text the
// assistant layer passes through verbatim. Department names are wrapped in
// backticks so they can be copied exactly; the surrounding layer relies on
// that convention.
package format

import (
	"fmt"
	"strings"

	"github.com/majormentor/unigo/match"
)

var separatorLine = strings.Repeat("=", 80)

// NoResults is returned when a department search produced nothing.
const NoResults = "검색 결과가 없습니다. 다른 키워드로 검색해보세요."

// AdmissionGuide is appended to every admission-info response.
const AdmissionGuide = "입시제도에 대해서는 해당 링크 클릭 후 좌측 메뉴의 '평가기준 및 입시결과'를 참고해주세요!"

// DepartmentList renders a department search result. totalAvailable is the
// full catalog count for unfiltered listings; pass a negative value to omit
// it. examples maps a department name to "institution department" sample
// strings shown beneath it.
func DepartmentList(query string, departments []string, totalAvailable int, examples map[string][]string) string {
	var b strings.Builder

	b.WriteString(separatorLine + "\n")
	fmt.Fprintf(&b, "🎯 검색 결과: '%s'에 대한 학과 %d개\n", query, len(departments))
	if totalAvailable >= 0 {
		fmt.Fprintf(&b, "(총 %d개 중 상위 %d개 표시)\n", totalAvailable, len(departments))
	}
	b.WriteString(separatorLine + "\n")
	b.WriteString("\n")
	b.WriteString("📋 **정확한 학과명 목록** (아래 백틱 안의 이름을 그대로 복사하세요):\n")
	b.WriteString("\n")

	for i, department := range departments {
		fmt.Fprintf(&b, "%d. `%s`\n", i+1, department)
		if institutions := examples[department]; len(institutions) > 0 {
			fmt.Fprintf(&b, "   - 개설 대학 예시: %s\n", strings.Join(institutions, ", "))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// AdmissionLink renders the base admission-info link line for an
// institution, naming the department when one was confirmed.
func AdmissionLink(institution, department, url string) string {
	if department != "" {
		return fmt.Sprintf("[%s %s 입시정보 확인하기](%s)", institution, department, url)
	}
	return fmt.Sprintf("[%s 입시정보 확인하기](%s)", institution, url)
}

// AdmissionMessage renders the admission-info message for a department
// verification result. Everything except a confirmed match gets a warning
// block explaining what was and was not found.
func AdmissionMessage(result *match.Result, department string) string {
	institution := result.Institution.Name
	url := result.Institution.URL

	switch result.Outcome {
	case match.Confirmed:
		return AdmissionLink(institution, department, url)

	case match.Suggested:
		quoted := make([]string, len(result.Candidates))
		for i, candidate := range result.Candidates {
			quoted[i] = fmt.Sprintf("'%s'", candidate.Name)
		}
		return AdmissionLink(institution, "", url) + fmt.Sprintf(
			"\n\n⚠️ **주의**: '%s'에서 '%s'라는 정확한 학과명을 찾을 수 없습니다. "+
				"혹시 **%s** 등을 찾으시나요? 아래 링크에서 정확한 모집 요강을 확인해주세요.",
			institution, department, strings.Join(quoted, ", "))

	case match.GlobalFallback:
		return AdmissionLink(institution, "", url) + fmt.Sprintf(
			"\n\n⚠️ **주의**: '%s' 명칭으로는 '%s' 데이터를 찾지 못했지만, "+
				"관련된 **'%s'**가 확인되었습니다. 이 학과 정보를 찾으시는지 확인해 주세요.",
			department, institution, result.FallbackName)

	default:
		return AdmissionLink(institution, "", url) + fmt.Sprintf(
			"\n\n⚠️ **주의**: '%s' 데이터베이스에서 '%s' 개설 여부가 확인되지 않습니다. "+
				"아래 링크를 통해 정확한 정보를 직접 확인해주시기 바랍니다.",
			institution, department)
	}
}

// SearchGuide returns the help message describing what can be asked.
func SearchGuide() string {
	return `🤖 **Major Mentor 검색 가이드**

저희는 **전국 대학의 전공 정보, 개설 대학, 그리고 졸업 후 진로 데이터**를 보유하고 있습니다!
궁금한 점을 아래와 같이 물어보시면 자세히 답변해 드릴 수 있어요.

### 1️⃣ **전공 탐색**
관심 있는 분야나 키워드로 어떤 학과들이 있는지 찾아보세요.
- "인공지능 관련 학과 알려줘"
- "공학 계열에는 어떤 전공이 있어?"
- "경영학과랑 비슷한 학과 추천해줘"

### 2️⃣ **개설 대학 찾기**
특정 학과가 어느 대학에 개설되어 있는지 알려드립니다.
- "컴퓨터공학과가 있는 대학 어디야?"
- "서울에 있는 심리학과 알려줘"
- "간호학과 개설 대학 목록 보여줘"

### 3️⃣ **진로 및 상세 정보**
졸업 후 어떤 직업을 갖게 되는지, 연봉이나 필요한 자격증은 무엇인지 확인해보세요.
- "컴퓨터공학과 나오면 무슨 일 해?"
- "기계공학과 졸업 후 연봉은 얼마야?"
- "사회복지학과 가려면 어떤 자격증이 필요해?"
- "경영학과에서는 주로 뭘 배워?"

💡 **팁**: 질문이 구체적일수록 더 정확한 정보를 드릴 수 있습니다!`
}
