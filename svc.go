package svc

import (
	"context"
)

// Service is the fundamental building block of request-processing pipelines.
// It represents a single request/response capability.
//
// Serve must be safe for concurrent use: one Service value may be invoked
// from many goroutines at once, and Serve is granted no exclusive access to
// the implementer. Implementations that keep mutable state must synchronize
// it themselves.
//
// The context carries cancellation and deadlines for the in-flight call. A
// caller that no longer wants the result cancels the context; any cleanup
// beyond that is best effort and up to the implementation.
//
// Errors returned by Serve surface to callers exactly as produced. Nothing
// in this package wraps, translates, or suppresses them.
type Service[Request, Response any] interface {
	Serve(ctx context.Context, req Request) (Response, error)
}

// Func is an adapter to allow the use of ordinary functions as services. If
// f is a function with the appropriate signature, Func(f) is a Service that
// calls f.
type Func[Request, Response any] func(ctx context.Context, req Request) (Response, error)

// Serve implements Service by calling f(ctx, req).
func (f Func[Request, Response]) Serve(ctx context.Context, req Request) (Response, error) {
	return f(ctx, req)
}

// Nop returns a service that ignores its request and returns the zero
// Response and a nil error. Useful for tests.
func Nop[Request, Response any]() Service[Request, Response] {
	return Func[Request, Response](func(context.Context, Request) (Response, error) {
		var resp Response
		return resp, nil
	})
}
