package utils

import (
	"encoding/json"
	"math"
	"strconv"
)

// ParseNum coerces an arbitrary JSON value to a usable float64. Absent,
// null, non-numeric and NaN/Inf inputs all become 0 so that a bad value can
// never poison an aggregation sum.
func ParseNum(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return sanitize(n)
	case float32:
		return sanitize(float64(n))
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return sanitize(f)
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return sanitize(f)
	default:
		return 0
	}
}

func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
