package neo4j

import (
	"galapagos/internal/pkg/errs"
)

// The graph stores numeric properties as either integers or floats depending
// on how they were seeded. These helpers normalize both shapes at the
// adapter boundary so domain code only ever sees float64 and int.

func toFloat64(param string, value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case int:
		return float64(v), nil
	default:
		return 0, errs.NewValueIsInvalidError(param)
	}
}

func toInt(param string, value any) (int, error) {
	switch v := value.(type) {
	case int64:
		return int(v), nil
	case int:
		return v, nil
	case float64:
		return int(v), nil
	default:
		return 0, errs.NewValueIsInvalidError(param)
	}
}

func toString(param string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", errs.NewValueIsInvalidError(param)
	}
	return s, nil
}
