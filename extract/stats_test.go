package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChartStats(t *testing.T) {
	gender, satisfaction := ChartStats(json.RawMessage(
		`[{"gender": "남 70% / 여 30%", "satisfaction": 4.2}, {"ignored": true}]`))
	assert.Equal(t, "남 70% / 여 30%", gender)
	assert.Equal(t, "4.2", satisfaction)

	gender, satisfaction = ChartStats(json.RawMessage(`[{"gender": "남 50% / 여 50%"}]`))
	assert.Equal(t, "남 50% / 여 50%", gender)
	assert.Equal(t, "", satisfaction)
}

func TestChartStats_Malformed(t *testing.T) {
	for _, raw := range []string{``, `null`, `[]`, `["scalar"]`, `{"not":"list"}`} {
		gender, satisfaction := ChartStats(json.RawMessage(raw))
		assert.Equal(t, "", gender, raw)
		assert.Equal(t, "", satisfaction, raw)
	}
}

func TestAnnualSalary(t *testing.T) {
	annual, ok := AnnualSalary(json.RawMessage(`350`))
	assert.True(t, ok)
	assert.Equal(t, 4200.0, annual)

	annual, ok = AnnualSalary(json.RawMessage(`"280.5"`))
	assert.True(t, ok)
	assert.Equal(t, 3366.0, annual)

	_, ok = AnnualSalary(json.RawMessage(`null`))
	assert.False(t, ok)

	_, ok = AnnualSalary(json.RawMessage(`"월 300"`))
	assert.False(t, ok)

	_, ok = AnnualSalary(json.RawMessage(`0`))
	assert.False(t, ok)
}
