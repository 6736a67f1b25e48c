package normalizer

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Candidates - упорядоченный список путей-кандидатов одного логического поля.
// Побеждает первый путь, по которому найдено значение, отличное от null.
type Candidates [][]string

// Paths - собирает кандидатов из путей вида "shipping.address" или "images.0"
func Paths(paths ...string) Candidates {
	c := make(Candidates, 0, len(paths))
	for _, p := range paths {
		c = append(c, strings.Split(p, "."))
	}
	return c
}

// Lookup - возвращает первое найденное значение
func (c Candidates) Lookup(obj map[string]any) (any, bool) {
	for _, path := range c {
		if v, ok := walk(obj, path); ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// String - первое значение, представимое строкой
func (c Candidates) String(obj map[string]any) string {
	for _, path := range c {
		v, ok := walk(obj, path)
		if !ok || v == nil {
			continue
		}
		if s, ok := asString(v); ok {
			return s
		}
	}
	return ""
}

func walk(obj map[string]any, path []string) (any, bool) {
	var cur any = obj
	for _, key := range path {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[key]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			idx, err := strconv.Atoi(key)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		default:
			return nil, false
		}
	}
	return cur, true
}

func asString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case json.Number:
		return val.String(), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		return "", false
	}
}

// coerceNumber - числовое приведение значения: "" и null дают 0,
// нечисловые строки и составные значения не приводятся.
func coerceNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case nil:
		return 0, true
	case json.Number:
		f, err := val.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return 0, false
		}
		return f, true
	case bool:
		if val {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
