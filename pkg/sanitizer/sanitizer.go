package sanitizer

import (
	"fmt"
	"math"
	"strings"
)

// Profile sanitizes a raw profile payload for the given profile type. The
// owner id is always injected under OwnerIDField and wins over any value in
// the raw payload. Output keys are a subset of the allow-list plus
// OwnerIDField.
func Profile(raw map[string]any, profileType ProfileType, userID string) map[string]any {
	allowed := allowedProfileFields(profileType)
	sanitized := map[string]any{OwnerIDField: userID}

	for key, value := range raw {
		if _, ok := allowed[key]; !ok {
			continue
		}

		if key == idField {
			if s, ok := value.(string); ok && s != "" && !strings.HasPrefix(s, TempIDPrefix) {
				sanitized[idField] = s
			}
			continue
		}

		if _, ok := geoFields[key]; ok {
			if n, ok := finiteNumber(value); ok {
				sanitized[key] = n
			}
			continue
		}

		if _, ok := addressFields[key]; ok {
			if value == nil {
				sanitized[key] = nil
			} else {
				sanitized[key] = strings.TrimSpace(stringify(value))
			}
			continue
		}

		if v, ok := keepValue(value); ok {
			sanitized[key] = v
		}
	}

	return sanitized
}

// ScheduledJob sanitizes a scheduled-job payload: allow-list, drop nulls,
// trim strings and drop blanks. No key is injected.
func ScheduledJob(raw map[string]any) map[string]any {
	sanitized := map[string]any{}

	for key, value := range raw {
		if _, ok := scheduledJobFields[key]; !ok {
			continue
		}
		if v, ok := keepValue(value); ok {
			sanitized[key] = v
		}
	}

	return sanitized
}

// HasProfileFields reports whether a sanitized profile carries anything worth
// persisting beyond the injected owner id.
func HasProfileFields(sanitized map[string]any) bool {
	return len(sanitized) > 1
}

func keepValue(value any) (any, bool) {
	if value == nil {
		return nil, false
	}
	if s, ok := value.(string); ok {
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			return nil, false
		}
		return trimmed, true
	}
	return value, true
}

// finiteNumber accepts the numeric types JSON and BSON decoding produce.
// Strings holding digits are not numbers.
func finiteNumber(value any) (float64, bool) {
	var n float64
	switch v := value.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int32:
		n = float64(v)
	case int64:
		n = float64(v)
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
