package goRevoke

import (
	"errors"
	"time"

	"github.com/MrEthical07/goRevoke/jwt"
	"github.com/MrEthical07/goRevoke/registry"
	"github.com/redis/go-redis/v9"
)

// Builder wires an [Engine] from a configuration and an externally owned
// store handle. A builder is single use; Build fails on reuse.
type Builder struct {
	config Config
	redis  redis.UniversalClient
	store  registry.Store

	auditSink AuditSink

	built bool
}

// New returns a builder seeded with the default configuration.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis injects the shared Redis client the invalidation registry
// persists into. The caller owns the client lifecycle.
func (b *Builder) WithRedis(client redis.UniversalClient) *Builder {
	b.redis = client
	return b
}

// WithStore injects a custom key/value store instead of Redis. Takes
// precedence over WithRedis when both are set.
func (b *Builder) WithStore(store registry.Store) *Builder {
	b.store = store
	return b
}

// WithAuditSink sets the observability sink for engine events.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	if sink != nil {
		b.config.Audit.Enabled = true
	}
	return b
}

// WithMetricsEnabled toggles counter collection.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration, wires the registry, signing adapter,
// audit dispatcher, and metrics, and returns the engine.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store := b.store
	if store == nil {
		if b.redis == nil {
			return nil, ErrStoreRequired
		}
		store = registry.NewRedisStore(b.redis, cfg.Store.RedisPrefix)
	}

	jm, err := jwt.NewManager(jwt.Config{
		SigningMethod: jwt.SigningMethod(cfg.JWT.SigningMethod),
		Issuer:        cfg.JWT.Issuer,
		Leeway:        cfg.JWT.Leeway,
		MaxFutureIAT:  cfg.JWT.MaxFutureIAT,
	})
	if err != nil {
		return nil, err
	}

	engine := &Engine{
		config:     cfg,
		jwtManager: jm,
		registry:   registry.New(store),
		audit:      newAuditDispatcher(cfg.Audit, b.auditSink),
		metrics:    NewMetrics(cfg.Metrics),
		now:        time.Now,
	}

	b.built = true

	return engine, nil
}
