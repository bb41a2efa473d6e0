// Package svctest provides canned service implementations and assertion
// helpers for testing code built around svc abstractions.
package svctest

import (
	"context"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/svc-kit/svc"
)

// Const returns a service that answers every request with resp.
func Const[Request, Response any](resp Response) svc.Service[Request, Response] {
	return svc.Func[Request, Response](func(context.Context, Request) (Response, error) {
		return resp, nil
	})
}

// Failing returns a service that fails every request with err.
func Failing[Request, Response any](err error) svc.Service[Request, Response] {
	return svc.Func[Request, Response](func(context.Context, Request) (Response, error) {
		var resp Response
		return resp, err
	})
}

// Echo returns a service that answers with its own request.
func Echo[T any]() svc.Service[T, T] {
	return svc.Func[T, T](func(_ context.Context, req T) (T, error) {
		return req, nil
	})
}

// Hang returns a service that blocks until the context is done and then
// fails with the context's error. Useful for exercising cancellation.
func Hang[Request, Response any]() svc.Service[Request, Response] {
	return svc.Func[Request, Response](func(ctx context.Context, _ Request) (Response, error) {
		<-ctx.Done()
		var resp Response
		return resp, ctx.Err()
	})
}

// Recorder wraps a service and records every request served through it.
// Recorders are safe for concurrent use, so one instance can verify
// behavior observed across goroutines and across shared handles.
type Recorder[Request, Response any] struct {
	next svc.Service[Request, Response]

	mtx  sync.Mutex
	reqs []Request
}

// NewRecorder returns a Recorder that forwards to next.
func NewRecorder[Request, Response any](next svc.Service[Request, Response]) *Recorder[Request, Response] {
	return &Recorder[Request, Response]{next: next}
}

// Serve implements svc.Service, recording req before forwarding it.
func (r *Recorder[Request, Response]) Serve(ctx context.Context, req Request) (Response, error) {
	r.mtx.Lock()
	r.reqs = append(r.reqs, req)
	r.mtx.Unlock()
	return r.next.Serve(ctx, req)
}

// Calls returns the number of requests served so far.
func (r *Recorder[Request, Response]) Calls() int {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return len(r.reqs)
}

// Requests returns a copy of the recorded requests, in arrival order.
func (r *Recorder[Request, Response]) Requests() []Request {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	return append([]Request(nil), r.reqs...)
}

// AssertServe serves req through s and fails t unless the call succeeds
// with want.
func AssertServe[Request, Response any](t testing.TB, s svc.Service[Request, Response], req Request, want Response) {
	t.Helper()
	have, err := s.Serve(context.Background(), req)
	if err != nil {
		t.Fatalf("Serve(%v): unexpected error: %v", req, err)
	}
	if diff := cmp.Diff(want, have); diff != "" {
		t.Fatalf("Serve(%v): unexpected response (-want +have):\n%s", req, diff)
	}
}

// AssertServeError serves req through s and fails t unless the call fails
// with want, directly or wrapped.
func AssertServeError[Request, Response any](t testing.TB, s svc.Service[Request, Response], req Request, want error) {
	t.Helper()
	if _, err := s.Serve(context.Background(), req); !errors.Is(err, want) {
		t.Fatalf("Serve(%v): want error %v, have %v", req, want, err)
	}
}
