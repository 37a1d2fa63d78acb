package envelope

import (
	"encoding/json"
	"testing"
)

func TestEncodeOmitsAbsentFields(t *testing.T) {
	header := Metadata{User: "alice"}.Encode()
	entry, ok := header[HeaderKey].(map[string]any)
	if !ok {
		t.Fatalf("missing envelope entry in %v", header)
	}

	if entry["u"] != "alice" {
		t.Fatalf("expected user alice, got %v", entry["u"])
	}
	if _, present := entry["c"]; present {
		t.Fatalf("absent client must be omitted, got %v", entry["c"])
	}
	if _, present := entry["ts"]; present {
		t.Fatalf("unset instant must be omitted, got %v", entry["ts"])
	}
}

func TestEncodeEmptyMetadataIsNil(t *testing.T) {
	if header := (Metadata{}).Encode(); header != nil {
		t.Fatalf("expected nil header for empty metadata, got %v", header)
	}
}

func TestExtractRoundTrip(t *testing.T) {
	in := Metadata{User: "alice", Client: "web", IssuedAt: 1724567890.123, Wrapped: true}

	// Round-trip through JSON the way a real token header travels.
	raw, err := json.Marshal(in.Encode())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var header map[string]any
	if err := json.Unmarshal(raw, &header); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	out, ok := Extract(header)
	if !ok {
		t.Fatalf("envelope not found after round trip")
	}
	if out.User != "alice" || out.Client != "web" {
		t.Fatalf("identifiers lost: %+v", out)
	}
	if out.IssuedAt != in.IssuedAt {
		t.Fatalf("expected instant %v, got %v", in.IssuedAt, out.IssuedAt)
	}
	if !out.Wrapped {
		t.Fatalf("wrapped marker lost")
	}
}

func TestExtractAbsent(t *testing.T) {
	if _, ok := Extract(map[string]any{"alg": "HS256", "typ": "JWT"}); ok {
		t.Fatalf("expected absent envelope")
	}
}

func TestExtractMalformedEntry(t *testing.T) {
	if _, ok := Extract(map[string]any{HeaderKey: "not-a-map"}); ok {
		t.Fatalf("malformed envelope must read as absent")
	}
}

func TestExtractNonNumericInstant(t *testing.T) {
	header := map[string]any{HeaderKey: map[string]any{"u": "alice", "ts": "soon"}}

	m, ok := Extract(header)
	if !ok {
		t.Fatalf("envelope not found")
	}
	if m.IssuedAt != 0 {
		t.Fatalf("non-numeric instant must read as unset, got %v", m.IssuedAt)
	}
	if m.User != "alice" {
		t.Fatalf("user lost alongside bad instant: %+v", m)
	}
}

func TestNumericShapes(t *testing.T) {
	header := map[string]any{HeaderKey: map[string]any{"ts": json.Number("1700000000.500")}}

	m, ok := Extract(header)
	if !ok {
		t.Fatalf("envelope not found")
	}
	if m.IssuedAt != 1700000000.5 {
		t.Fatalf("json.Number instant mishandled: %v", m.IssuedAt)
	}
}
