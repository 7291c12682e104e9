package core

import (
	"reflect"
	"testing"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain text unchanged",
			input: "컴퓨터공학과",
			want:  "컴퓨터공학과",
		},
		{
			name:  "single tag removed",
			input: "<p>졸업 후 진로</p>",
			want:  "졸업 후 진로",
		},
		{
			name:  "nested markup removed",
			input: "소프트웨어<br/>개발자 및 <b>데이터</b> 분석가",
			want:  "소프트웨어 개발자 및 데이터 분석가",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMarkup(tt.input); got != tt.want {
				t.Errorf("StripMarkup(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "whitespace removed",
			input: "컴퓨터 공학과",
			want:  "컴퓨터공학과",
		},
		{
			name:  "case folded",
			input: "AI 융합학부",
			want:  "ai융합학부",
		},
		{
			name:  "full width latin folds",
			input: "ＡＩ학과",
			want:  "ai학과",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeKey(tt.input); got != tt.want {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestInstitutionKey(t *testing.T) {
	if InstitutionKey("한양대학교[본교]") != InstitutionKey("한양 대학교") {
		t.Errorf("bracketed campus suffix should not affect the institution key")
	}
	if InstitutionKey("한양대학교[ERICA]") == InstitutionKey("고려대학교") {
		t.Errorf("distinct institutions must keep distinct keys")
	}
}

func TestDedupPreserveOrder(t *testing.T) {
	got := DedupPreserveOrder([]string{"a", "b", "a", "c"})
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DedupPreserveOrder() = %v, want %v", got, want)
	}

	got = DedupPreserveOrder([]string{"", "x", "", "x"})
	want = []string{"x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("DedupPreserveOrder() with empties = %v, want %v", got, want)
	}
}

func TestSplitAny(t *testing.T) {
	got := SplitAny("컴퓨터 / 소프트웨어 / 인공지능", "/,()")
	want := []string{"컴퓨터", "소프트웨어", "인공지능"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitAny() = %v, want %v", got, want)
	}

	if got := SplitAny("   ", "/,"); len(got) != 0 {
		t.Errorf("SplitAny() on blank input = %v, want empty", got)
	}
}

func TestIDFromContent(t *testing.T) {
	if IDFromContent("major-001") != IDFromContent("major-001") {
		t.Errorf("IDFromContent() must be deterministic")
	}
	if IDFromContent("major-001") == IDFromContent("major-002") {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}
