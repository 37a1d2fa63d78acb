package goRevoke

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var testSecret = []byte("engine-test-secret")

func newEngineTest(t *testing.T) (*Engine, *miniredis.Miniredis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	engine, err := New().WithRedis(rdb).Build()
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}

	return engine, mr, func() {
		engine.Close()
		rdb.Close()
		mr.Close()
	}
}

func newEngineTestWithSink(t *testing.T, sink AuditSink) (*Engine, *miniredis.Miniredis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	engine, err := New().WithRedis(rdb).WithAuditSink(sink).Build()
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}

	return engine, mr, func() {
		engine.Close()
		rdb.Close()
		mr.Close()
	}
}

func TestBuilderRequiresStore(t *testing.T) {
	if _, err := New().Build(); err == nil {
		t.Fatalf("expected build failure without store")
	}
}

func TestBuilderSingleUse(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	b := New().WithRedis(rdb)
	if _, err := b.Build(); err != nil {
		t.Fatalf("first build: %v", err)
	}
	if _, err := b.Build(); err == nil {
		t.Fatalf("expected second build to fail")
	}
}

func TestBuilderRejectsInvalidConfig(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	cfg := defaultConfig()
	cfg.JWT.SigningMethod = "rot13"

	if _, err := New().WithRedis(rdb).WithConfig(cfg).Build(); err == nil {
		t.Fatalf("expected invalid signing method rejection")
	}
}
