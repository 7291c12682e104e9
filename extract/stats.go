package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ChartStats pulls the gender ratio and satisfaction score out of a record's
// chart payload. Both live in the first block of the chart list; values may
// be numbers or strings in the source and are returned as display strings.
// A missing or malformed payload yields two empty strings.
func ChartStats(raw json.RawMessage) (gender, satisfaction string) {
	if isEmptyJSON(raw) {
		return "", ""
	}
	var blocks []any
	if err := json.Unmarshal(raw, &blocks); err != nil || len(blocks) == 0 {
		return "", ""
	}
	stats, ok := blocks[0].(map[string]any)
	if !ok {
		return "", ""
	}
	return displayValue(stats["gender"]), displayValue(stats["satisfaction"])
}

// AnnualSalary converts the record's monthly salary figure, which arrives as
// either a number or a numeric string, to an annual amount. The second
// return value reports whether a usable figure was present.
func AnnualSalary(raw json.RawMessage) (float64, bool) {
	if isEmptyJSON(raw) {
		return 0, false
	}

	var monthly float64
	if err := json.Unmarshal(raw, &monthly); err != nil {
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, false
		}
		monthly, err = strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return 0, false
		}
	}
	if monthly == 0 {
		return 0, false
	}
	return monthly * 12, true
}

// displayValue renders a decoded JSON scalar as a display string.
func displayValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
