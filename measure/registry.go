// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import "sync"

// A Registry tracks unscoped timed operations by description and ID, so that
// an operation can be begun and ended from unrelated places in a program.
//
// Operations that are begun and never ended stay in the registry for the
// life of the process; the registry does not expire them.
//
// A Registry holds one lock while it completes an operation displaced by
// BeginUnscoped, and that completion writes to the Meter's Sink. A Sink must
// therefore not call back into that registry (BeginUnscoped, EndUnscoped,
// Len or Reset on it); doing so deadlocks. A separate Registry is fine.
type Registry struct {
	mu  sync.Mutex
	ops map[registryKey]*TimedOperation
}

type registryKey struct {
	description string
	id          string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ops: map[registryKey]*TimedOperation{}}
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// DefaultRegistry returns the process-wide registry, creating it on first
// use. Meters created without an explicit Registry share it.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() { defaultRegistry = NewRegistry() })
	return defaultRegistry
}

// Len returns the number of live operations.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ops)
}

// Reset discards every live operation without completing it.
// It is intended for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.ops)
}

// put starts op and installs it. Any live operation under the same key is
// completed first, so its event precedes op's begin event and op's clock
// does not include that write. All of it happens under the lock.
func (r *Registry) put(op *TimedOperation) error {
	k := registryKey{op.description, op.id}
	r.mu.Lock()
	defer r.mu.Unlock()
	var err error
	if prev := r.ops[k]; prev != nil {
		err = prev.Complete()
	}
	op.begin()
	r.ops[k] = op
	return err
}

// take removes and returns the live operation under the key, if any.
func (r *Registry) take(description, id string) *TimedOperation {
	k := registryKey{description, id}
	r.mu.Lock()
	defer r.mu.Unlock()
	op := r.ops[k]
	delete(r.ops, k)
	return op
}

// BeginUnscoped starts timing description under id and stores the operation
// in m's registry instead of returning it. If an operation with the same
// description and id is live, it is completed (writing its event) and
// replaced; its completion error, if any, is returned and the new operation
// is installed regardless.
//
// The ID in opts is ignored; an empty id is a valid key.
func (m *Meter) BeginUnscoped(description, id string, opts *TimedOptions, values ...any) error {
	return m.registry.put(m.newOperation(description, id, opts, values))
}

// EndUnscoped completes the live operation begun with BeginUnscoped under
// description and id and removes it from the registry.
//
// If there is no such operation EndUnscoped does nothing and returns nil.
// A mismatched description or id therefore goes unnoticed; callers that need
// strict pairing should check Registry().Len() or track the keys themselves.
func (m *Meter) EndUnscoped(description, id string) error {
	return m.registry.take(description, id).Complete()
}
