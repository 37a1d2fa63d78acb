package goRevoke

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MrEthical07/goRevoke/identity"
	"github.com/MrEthical07/goRevoke/registry"
)

func TestInvalidateThenRevertRestoresToken(t *testing.T) {
	engine, _, done := newEngineTest(t)
	defer done()
	ctx := context.Background()

	token, err := engine.Sign("session-77", testSecret, SignOptions{User: "alice"})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	time.Sleep(instantGap)

	if err := engine.Invalidate(ctx, identity.User("alice")); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, err := engine.Verify(ctx, token, testSecret); !errors.Is(err, ErrTokenRevoked) {
		t.Fatalf("expected revocation, got %v", err)
	}

	reverted, err := engine.Revert(ctx, identity.User("alice"))
	if err != nil {
		t.Fatalf("revert: %v", err)
	}
	if !reverted {
		t.Fatalf("expected revert to remove the record")
	}

	if _, err := engine.Verify(ctx, token, testSecret); err != nil {
		t.Fatalf("token must be valid after revert: %v", err)
	}
}

func TestRevertWithoutRecordReportsFalse(t *testing.T) {
	engine, _, done := newEngineTest(t)
	defer done()

	reverted, err := engine.Revert(context.Background(), identity.User("nobody"))
	if err != nil {
		t.Fatalf("revert: %v", err)
	}
	if reverted {
		t.Fatalf("revert of a never-invalidated identity must report false")
	}

	snap := engine.MetricsSnapshot()
	if snap.Counters[MetricRevertMiss] != 1 || snap.Counters[MetricRevertHit] != 0 {
		t.Fatalf("unexpected revert counters: %v", snap.Counters)
	}
}

func TestInvalidateStoreOutagePropagates(t *testing.T) {
	engine, mr, done := newEngineTest(t)
	defer done()

	mr.Close()

	err := engine.Invalidate(context.Background(), identity.User("alice"))
	if !errors.Is(err, registry.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
	if got := engine.MetricsSnapshot().Counters[MetricInvalidationFailure]; got != 1 {
		t.Fatalf("expected one invalidation failure counted, got %d", got)
	}
}

func TestRevertStoreOutagePropagates(t *testing.T) {
	engine, mr, done := newEngineTest(t)
	defer done()

	mr.Close()

	if _, err := engine.Revert(context.Background(), identity.User("alice")); !errors.Is(err, registry.ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestInvalidateEmitsAuditEvents(t *testing.T) {
	sink := NewChannelSink(16)
	engine, _, done := newEngineTestWithSink(t, sink)
	defer done()
	ctx := context.Background()

	if err := engine.Invalidate(ctx, identity.User("alice")); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, err := engine.Revert(ctx, identity.User("alice")); err != nil {
		t.Fatalf("revert: %v", err)
	}

	expect := []string{EventInvalidate, EventRevert}
	for _, want := range expect {
		select {
		case event := <-sink.Events():
			if event.EventType != want {
				t.Fatalf("expected %s event, got %s", want, event.EventType)
			}
			if !event.Success {
				t.Fatalf("%s event must report success: %+v", want, event)
			}
			if event.ID == "" || event.Timestamp.IsZero() {
				t.Fatalf("dispatcher must stamp id and timestamp: %+v", event)
			}
			if event.Scope != "user" {
				t.Fatalf("expected user scope, got %q", event.Scope)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("no %s audit event", want)
		}
	}
}
