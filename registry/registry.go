// Package registry provides collections of boxed services keyed by name.
// It is the storage half of a routing layer: callers resolve a name to a
// handle and serve through it; how names are chosen is up to the caller.
package registry

import (
	"context"
	"sort"
	"sync"

	"github.com/go-kit/log"
	"github.com/pkg/errors"

	"github.com/svc-kit/svc"
)

// ErrNotFound indicates a name has no corresponding service.
var ErrNotFound = errors.New("service not found")

// Source yields boxed services by name. It may be backed by a fixed map, a
// mutable Registry, or anything that can resolve names to services.
type Source[Request, Response any] interface {
	Lookup(name string) (svc.BoxService[Request, Response], error)
}

// SourceFunc is an adapter to allow the use of ordinary functions as
// Sources. If f is a function with the appropriate signature, SourceFunc(f)
// is a Source that calls f.
type SourceFunc[Request, Response any] func(name string) (svc.BoxService[Request, Response], error)

// Lookup calls f(name).
func (f SourceFunc[Request, Response]) Lookup(name string) (svc.BoxService[Request, Response], error) {
	return f(name)
}

// Fixed yields a fixed set of services.
type Fixed[Request, Response any] map[string]svc.BoxService[Request, Response]

// Lookup implements Source.
func (f Fixed[Request, Response]) Lookup(name string) (svc.BoxService[Request, Response], error) {
	s, ok := f[name]
	if !ok {
		return svc.BoxService[Request, Response]{}, ErrNotFound
	}
	return s, nil
}

// Registry is a mutable, concurrency-safe collection of boxed services. The
// zero value is not usable; construct with New. Registry implements Source.
type Registry[Request, Response any] struct {
	mtx      sync.RWMutex
	services map[string]svc.BoxService[Request, Response]
	logger   log.Logger
}

// Option configures a Registry.
type Option func(*options)

type options struct {
	logger log.Logger
}

// WithLogger instructs the Registry to log registration changes to logger.
// By default nothing is logged.
func WithLogger(logger log.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New returns an empty Registry, ready for registrations.
func New[Request, Response any](opts ...Option) *Registry[Request, Response] {
	o := options{
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry[Request, Response]{
		services: map[string]svc.BoxService[Request, Response]{},
		logger:   o.logger,
	}
}

// Register boxes s and stores it under name, replacing any previous entry.
// Registering an already boxed service stores the same handle, so the
// underlying implementation is never re-wrapped or duplicated.
func (r *Registry[Request, Response]) Register(name string, s svc.Service[Request, Response]) {
	b := svc.Box(s)
	r.mtx.Lock()
	r.services[name] = b
	r.mtx.Unlock()
	r.logger.Log("event", "register", "name", name)
}

// Deregister removes the service stored under name, if any. Handles already
// resolved through Lookup keep working; deregistration only stops new
// lookups from finding the service.
func (r *Registry[Request, Response]) Deregister(name string) {
	r.mtx.Lock()
	delete(r.services, name)
	r.mtx.Unlock()
	r.logger.Log("event", "deregister", "name", name)
}

// Lookup implements Source. Unknown names fail with ErrNotFound.
func (r *Registry[Request, Response]) Lookup(name string) (svc.BoxService[Request, Response], error) {
	r.mtx.RLock()
	b, ok := r.services[name]
	r.mtx.RUnlock()
	if !ok {
		return svc.BoxService[Request, Response]{}, errors.Wrap(ErrNotFound, name)
	}
	return b, nil
}

// Names returns the currently registered names, ordered lexicographically.
func (r *Registry[Request, Response]) Names() []string {
	r.mtx.RLock()
	names := make([]string, 0, len(r.services))
	for name := range r.services {
		names = append(names, name)
	}
	r.mtx.RUnlock()
	sort.Strings(names)
	return names
}

// Serve resolves name and serves req through the named service. Lookup
// failures surface as ErrNotFound; outcomes of the service itself pass
// through untouched.
func (r *Registry[Request, Response]) Serve(ctx context.Context, name string, req Request) (Response, error) {
	b, err := r.Lookup(name)
	if err != nil {
		var resp Response
		return resp, err
	}
	return b.Serve(ctx, req)
}
