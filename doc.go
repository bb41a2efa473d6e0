// Package svc provides a uniform abstraction for a thing that turns a
// request into a response or an error.
//
// The fundamental interface is Service. Anything that can serve a typed
// request and produce a typed response implements it, from one-line
// functions (via Func) to long-lived stateful components. Layered
// request-processing systems, such as transport handlers and middleware
// stacks, are built by external packages that consume this interface; svc
// itself composes nothing and schedules nothing.
//
// # Type erasure
//
// Concrete Service implementations have distinct types, which gets in the
// way of storing them together, for example in a map from route names to
// handlers. Box hides the concrete type behind a BoxService handle with a
// uniform call surface. Handles are cheap to copy and every copy shares the
// one underlying implementation.
//
// # Concurrent safety
//
// A Service must be safe for concurrent use. Serve is invoked through a
// shared view of the implementer, so any mutable state belongs to the
// implementation and must be synchronized by it. Callers supply their own
// concurrency: invoking one Service or BoxService from many goroutines at
// once is expected usage, and no ordering is imposed between in-flight
// calls.
package svc
