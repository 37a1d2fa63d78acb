package prometheus

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goRevoke "github.com/MrEthical07/goRevoke"
)

type fakeSource struct {
	counters map[goRevoke.MetricID]uint64
	dropped  uint64
}

func (f *fakeSource) MetricsSnapshot() goRevoke.MetricsSnapshot {
	return goRevoke.MetricsSnapshot{Counters: f.counters}
}

func (f *fakeSource) AuditDropped() uint64 {
	return f.dropped
}

func TestRenderExpositionFormat(t *testing.T) {
	source := &fakeSource{
		counters: map[goRevoke.MetricID]uint64{
			goRevoke.MetricSignIssued:    42,
			goRevoke.MetricVerifyRevoked: 3,
		},
		dropped: 7,
	}

	out := NewPrometheusExporterFromSource(source).Render()

	for _, want := range []string{
		"# HELP gorevoke_sign_issued_total ",
		"# TYPE gorevoke_sign_issued_total counter\n",
		"gorevoke_sign_issued_total 42\n",
		"gorevoke_verify_revoked_total 3\n",
		"gorevoke_verify_valid_total 0\n",
		"gorevoke_audit_dropped_total 7\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in rendered output:\n%s", want, out)
		}
	}
}

func TestHandlerServesMetrics(t *testing.T) {
	source := &fakeSource{
		counters: map[goRevoke.MetricID]uint64{goRevoke.MetricInvalidation: 5},
	}

	rec := httptest.NewRecorder()
	NewPrometheusExporterFromSource(source).Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "gorevoke_invalidation_total 5\n") {
		t.Fatalf("counter missing from response:\n%s", rec.Body.String())
	}
}

func TestRenderNilSafe(t *testing.T) {
	var p *PrometheusExporter
	if out := p.Render(); out != "" {
		t.Fatalf("nil exporter must render empty, got %q", out)
	}
	if out := NewPrometheusExporter(nil).Render(); out != "" {
		t.Fatalf("nil engine source must render empty, got %q", out)
	}
}
