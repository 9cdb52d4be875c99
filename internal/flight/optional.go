package flight

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// The upstream response is loosely typed: any field may be missing, null, or
// of an unexpected JSON type. The types below absorb those cases at decode
// time so that nothing downstream has to re-check them. Their UnmarshalJSON
// methods never return an error.

var jsonNull = []byte("null")

// OptString holds a non-empty string. Numbers and booleans are kept in their
// literal text form; empty strings, null, objects and arrays are absent.
type OptString struct {
	Value string
	Valid bool
}

func (o *OptString) UnmarshalJSON(b []byte) error {
	*o = OptString{}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if s != "" {
			*o = OptString{Value: s, Valid: true}
		}
		return nil
	}

	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("true")) || bytes.Equal(b, []byte("false")) {
		*o = OptString{Value: string(b), Valid: true}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*o = OptString{Value: n.String(), Valid: true}
	}
	return nil
}

func (o OptString) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return jsonNull, nil
	}
	return json.Marshal(o.Value)
}

// Or returns the value, or fallback when absent.
func (o OptString) Or(fallback string) string {
	if o.Valid {
		return o.Value
	}
	return fallback
}

// OptInt holds an integral count. Fractional values are truncated.
type OptInt struct {
	Value int
	Valid bool
}

func (o *OptInt) UnmarshalJSON(b []byte) error {
	*o = OptInt{}
	if f, ok := parseNumeric(b); ok {
		*o = OptInt{Value: int(f), Valid: true}
	}
	return nil
}

func (o OptInt) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return jsonNull, nil
	}
	return []byte(strconv.Itoa(o.Value)), nil
}

func parseNumeric(b []byte) (float64, bool) {
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return 0, false
		}
		n = json.Number(strings.TrimSpace(s))
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Object holds a nested JSON object. Anything other than an object
// (null, string, number, array) leaves it absent.
type Object[T any] struct {
	Value T
	Valid bool
}

func (o *Object[T]) UnmarshalJSON(b []byte) error {
	*o = Object[T]{}

	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		return nil
	}

	var v T
	_ = json.Unmarshal(b, &v)
	*o = Object[T]{Value: v, Valid: true}
	return nil
}

func (o Object[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return jsonNull, nil
	}
	return json.Marshal(o.Value)
}

// List holds a JSON array. A non-array value decodes to an empty list; an
// element of the wrong shape keeps its position as a zero value so that
// upstream ordering is preserved.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(b []byte) error {
	*l = nil

	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil || items == nil {
		return nil
	}

	out := make(List[T], 0, len(items))
	for _, item := range items {
		var v T
		_ = json.Unmarshal(item, &v)
		out = append(out, v)
	}
	*l = out
	return nil
}

func (r *APIResponse) UnmarshalJSON(b []byte) error {
	type plain APIResponse
	var p plain
	_ = json.Unmarshal(b, &p)

	*r = APIResponse(p)
	r.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// MarshalJSON emits the upstream body verbatim when it is known, so the
// diagnostics view shows exactly what was received.
func (r APIResponse) MarshalJSON() ([]byte, error) {
	if len(r.Raw) > 0 {
		return r.Raw, nil
	}
	type plain APIResponse
	return json.Marshal(plain(r))
}
