package envelope

import "encoding/json"

// HeaderKey is the JWT header parameter that carries the envelope.
const HeaderKey = "grv"

const (
	fieldUser     = "u"
	fieldClient   = "c"
	fieldIssuedAt = "ts"
	fieldWrapped  = "w"
)

// Metadata is the auxiliary identity metadata stamped into a token at sign
// time and read back at verification time.
//
// Absent fields are omitted from the encoded form entirely. A nil User or
// Client means the token is anonymous for that scope; an IssuedAt of zero
// means no precise instant was stamped and verification falls back to the
// signing service's whole-second issued-at claim.
type Metadata struct {
	User     any
	Client   any
	IssuedAt float64
	Wrapped  bool
}

// Empty reports whether the metadata carries nothing worth embedding.
func (m Metadata) Empty() bool {
	return m.User == nil && m.Client == nil && m.IssuedAt == 0 && !m.Wrapped
}

// Encode renders the metadata as the header entry map to merge into a
// token's header, or nil when there is nothing to embed.
func (m Metadata) Encode() map[string]any {
	if m.Empty() {
		return nil
	}

	entry := make(map[string]any, 4)
	if m.User != nil {
		entry[fieldUser] = m.User
	}
	if m.Client != nil {
		entry[fieldClient] = m.Client
	}
	if m.IssuedAt > 0 {
		entry[fieldIssuedAt] = m.IssuedAt
	}
	if m.Wrapped {
		entry[fieldWrapped] = true
	}

	return map[string]any{HeaderKey: entry}
}

// Extract decodes the envelope from a token header without any signature
// validation. The second return is false when the token carries no
// envelope at all, which is how tokens issued outside goRevoke present.
func Extract(header map[string]any) (Metadata, bool) {
	raw, ok := header[HeaderKey]
	if !ok {
		return Metadata{}, false
	}

	entry, ok := raw.(map[string]any)
	if !ok {
		return Metadata{}, false
	}

	var m Metadata
	if u, ok := entry[fieldUser]; ok {
		m.User = u
	}
	if c, ok := entry[fieldClient]; ok {
		m.Client = c
	}
	m.IssuedAt = numeric(entry[fieldIssuedAt])
	if w, ok := entry[fieldWrapped].(bool); ok {
		m.Wrapped = w
	}

	return m, true
}

// numeric tolerates both decode shapes golang-jwt can hand back for header
// values: float64 from a plain unmarshal and json.Number when a caller
// decoded with UseNumber.
func numeric(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0
		}
		return f
	case int64:
		return float64(x)
	default:
		return 0
	}
}
