package actionitem

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Coerce flattens c into a list of elements. Scalars and empty candidates
// are not coercible.
func Coerce(c Candidate) ([]any, bool) {
	switch c.Kind {
	case KindObject:
		return []any{c.Object}, true
	case KindArray:
		return c.Array, true
	case KindSalvage:
		out := make([]any, len(c.Salvaged))
		for i, rec := range c.Salvaged {
			out[i] = rec
		}
		return out, true
	case KindScalar, KindNone:
		return nil, false
	default:
		return nil, false
	}
}

// Enforce validates c against the action item schema. Elements that are not
// objects or have an empty task are skipped. The result is never nil.
func Enforce(c Candidate) []ActionItem {
	elems, ok := Coerce(c)
	if !ok {
		return []ActionItem{}
	}

	items := make([]ActionItem, 0, len(elems))
	for _, e := range elems {
		var get func(key string) string
		switch rec := e.(type) {
		case map[string]any:
			get = func(key string) string { return strings.TrimSpace(toText(rec[key])) }
		case map[string]string:
			get = func(key string) string { return strings.TrimSpace(rec[key]) }
		default:
			continue
		}

		task := get(KeyTask)
		if task == "" {
			continue
		}
		items = append(items, ActionItem{
			Task:    task,
			Owner:   get(KeyOwner),
			DueDate: get(KeyDueDate),
		})
	}
	return items
}

// Extract recovers and enforces raw model output in one step.
func Extract(raw string) []ActionItem {
	c, ok := Recover(raw)
	if !ok {
		return []ActionItem{}
	}
	return Enforce(c)
}

// toText converts a decoded JSON value to text. null (and a missing key)
// become the empty string.
func toText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		s, err := compactJSON(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return s
	}
}
