package identity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Canonical reduces an identifier to its canonical string form.
//
// Primitives render as their direct string form. Structured values render
// as JSON with recursively sorted object keys, so two semantically equal
// values always produce identical bytes. The same function runs on both the
// invalidate and verify paths; a record written for an identifier is only
// ever matched through this form.
func Canonical(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", ErrNilIdentifier
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int8, int16, int32, int64:
		return fmt.Sprintf("%d", x), nil
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", x), nil
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case json.Number:
		return x.String(), nil
	default:
		return canonicalJSON(v)
	}
}

// canonicalJSON round-trips the value through a generic decode so that
// struct field order and map iteration order cannot leak into the output.
// encoding/json sorts map keys on marshal, which makes the re-encoded form
// deterministic; json.Number preserves numeric literals exactly.
func canonicalJSON(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("identifier not canonicalizable: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var generic any
	if err := dec.Decode(&generic); err != nil {
		return "", fmt.Errorf("identifier not canonicalizable: %w", err)
	}

	out, err := json.Marshal(generic)
	if err != nil {
		return "", fmt.Errorf("identifier not canonicalizable: %w", err)
	}

	return string(out), nil
}
