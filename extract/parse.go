package extract

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/rentscout"
	"github.com/titanous/json5"
)

// attempt tries to recover a JSON object from a response.
type attempt func(text string) (map[string]any, bool)

// attempts are tried in order until one matches.
var attempts = []attempt{
	parseBare,
	parseFenced,
	parseEmbedded,
}

// ParseResponse recovers the JSON object from a generated response.
// Returns EUNPARSABLE if no attempt matches.
func ParseResponse(text string) (map[string]any, error) {
	for _, try := range attempts {
		if obj, ok := try(text); ok {
			return obj, nil
		}
	}
	return nil, rentscout.Errorf(rentscout.EUNPARSABLE, "no JSON object in response (%d bytes)", len(text))
}

// parseBare matches a response that is exactly one JSON object.
func parseBare(text string) (map[string]any, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "{") || !strings.HasSuffix(text, "}") {
		return nil, false
	}
	return decodeObject(text)
}

var fence = regexp.MustCompile("(?s)```(?i:json)?(.*?)```")

// parseFenced matches an object inside a triple-backtick block, optionally
// tagged json. Blocks are tried in order.
func parseFenced(text string) (map[string]any, bool) {
	for _, m := range fence.FindAllStringSubmatch(text, -1) {
		if obj, ok := parseBare(m[1]); ok {
			return obj, true
		}
	}
	return nil, false
}

// parseEmbedded matches the first balanced {...} span in free text that
// decodes as an object.
func parseEmbedded(text string) (map[string]any, bool) {
	for start := strings.IndexByte(text, '{'); start >= 0; {
		if end := balancedEnd(text, start); end > start {
			if obj, ok := decodeObject(text[start : end+1]); ok {
				return obj, true
			}
		}
		next := strings.IndexByte(text[start+1:], '{')
		if next < 0 {
			break
		}
		start += next + 1
	}
	return nil, false
}

// balancedEnd returns the index of the brace closing the one at start,
// ignoring braces inside strings, or -1.
func balancedEnd(text string, start int) int {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// decodeObject decodes strict JSON first, then JSON5 for the trailing
// commas, comments and single quotes models sometimes produce.
func decodeObject(s string) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(s), &obj); err == nil && obj != nil {
		return obj, true
	}
	obj = nil
	if err := json5.Unmarshal([]byte(s), &obj); err == nil && obj != nil {
		return obj, true
	}
	return nil, false
}

// Coerce maps a decoded object onto the fixed record shape. Missing or
// falsy text fields become "", numbers are formatted without trailing
// zeros, and allowsPets is true only for boolean true or the strings
// "true" and "yes". Unknown fields are discarded.
func Coerce(obj map[string]any) *rentscout.ExtractionResult {
	return &rentscout.ExtractionResult{
		Address:        coerceString(obj["address"]),
		ListingCreator: coerceString(obj["listingCreator"]),
		ContactInfo:    coerceString(obj["contactInfo"]),
		Price:          coerceString(obj["price"]),
		Bedrooms:       coerceString(obj["bedrooms"]),
		Bathrooms:      coerceString(obj["bathrooms"]),
		AllowsPets:     coerceBool(obj["allowsPets"]),
	}
}

func coerceString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func coerceBool(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		return s == "true" || s == "yes"
	}
	return false
}
