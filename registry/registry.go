package registry

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MrEthical07/goRevoke/identity"
)

// ErrCorruptRecord wraps a stored value that does not parse as an instant.
var ErrCorruptRecord = errors.New("corrupt invalidation record")

// EncodeInstant renders a wall-clock time as the stored decimal form:
// seconds since epoch with a millisecond fractional part.
func EncodeInstant(t time.Time) string {
	return strconv.FormatFloat(InstantSeconds(t), 'f', 3, 64)
}

// ParseInstant parses the stored decimal form back into fractional seconds.
func ParseInstant(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrCorruptRecord, s)
	}
	return v, nil
}

// InstantSeconds converts a time to fractional epoch seconds at millisecond
// precision, the resolution every invalidation comparison runs at.
func InstantSeconds(t time.Time) float64 {
	return float64(t.UnixMilli()) / 1000
}

// Registry maps canonical identity keys to invalidation instants on top of
// an injected [Store]. All methods are single logical operations with no
// internal locking; concurrent invalidations of the same identity resolve
// last-write-wins, which is sufficient because revocation only needs
// "invalidated no earlier than this instant".
type Registry struct {
	store Store
	now   func() time.Time
}

// New wraps a caller-owned store.
func New(store Store) *Registry {
	return &Registry{store: store, now: time.Now}
}

// Invalidate records the current instant for the identity, unconditionally
// overwriting any prior record. Write failures propagate: a revocation
// request that silently fails to persist must not be hidden.
func (r *Registry) Invalidate(ctx context.Context, id identity.Identity) error {
	key, err := id.Key()
	if err != nil {
		return err
	}
	return r.store.Set(ctx, key, EncodeInstant(r.now()))
}

// Lookup returns the invalidation instant for the identity, or found=false
// when no record exists. Transport and parse failures are returned as
// errors; the verification layer decides whether to fail open.
func (r *Registry) Lookup(ctx context.Context, id identity.Identity) (float64, bool, error) {
	key, err := id.Key()
	if err != nil {
		return 0, false, err
	}

	value, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}

	instant, err := ParseInstant(value)
	if err != nil {
		return 0, false, err
	}

	return instant, true, nil
}

// Remove deletes the identity's record. Removing an identity with no record
// is a no-op.
func (r *Registry) Remove(ctx context.Context, id identity.Identity) error {
	key, err := id.Key()
	if err != nil {
		return err
	}
	return r.store.Delete(ctx, key)
}

// Revert looks up and removes the identity's record, reporting whether a
// record was present. Concurrent reverts of the same identity may both
// report true; the final state is identical either way, so the race is
// benign. Reverting and never having invalidated are indistinguishable
// afterwards.
func (r *Registry) Revert(ctx context.Context, id identity.Identity) (bool, error) {
	key, err := id.Key()
	if err != nil {
		return false, err
	}

	// A corrupt value still counts as present: revert must clear it.
	if _, err := r.store.Get(ctx, key); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := r.store.Delete(ctx, key); err != nil {
		return false, err
	}

	return true, nil
}
