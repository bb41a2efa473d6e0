package svc

import (
	"context"
)

// BoxService is a Service whose concrete implementation is hidden behind
// dynamic dispatch, so that services of differing concrete types can be
// stored together and invoked through one uniform surface.
//
// BoxService values are cheap to copy. Every copy, whether by assignment or
// by Clone, shares the single underlying Service; boxing and copying never
// duplicate implementer state. The underlying Service stays reachable until
// the last handle referring to it is dropped.
type BoxService[Request, Response any] struct {
	inner Service[Request, Response]
}

// Box hides the concrete type of s behind a BoxService handle. Boxing an
// already boxed service returns the same handle rather than nesting one
// inside another.
//
// The zero BoxService holds no service; calling Serve on it panics.
func Box[Request, Response any](s Service[Request, Response]) BoxService[Request, Response] {
	if b, ok := s.(BoxService[Request, Response]); ok {
		return b
	}
	return BoxService[Request, Response]{inner: s}
}

// Serve implements Service by forwarding to the boxed service. Responses and
// errors surface exactly as the boxed service produced them.
func (b BoxService[Request, Response]) Serve(ctx context.Context, req Request) (Response, error) {
	return b.inner.Serve(ctx, req)
}

// Clone returns a handle to the same underlying service. It exists to make
// the sharing explicit; plain assignment of a BoxService behaves identically.
func (b BoxService[Request, Response]) Clone() BoxService[Request, Response] {
	return b
}

// String renders the handle opaquely. The boxed service is deliberately not
// introspectable through its handle.
func (b BoxService[Request, Response]) String() string {
	return "svc.BoxService"
}
