// svcload measures how fast a boxed service can be driven by concurrent
// callers. It serves a fixed number of requests through a purely in-process
// demo service, optionally paced by a rate limit and padded with simulated
// work, and prints latency quantiles when done.
package main

import (
	"context"
	"fmt"
	"hash/fnv"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/VividCortex/gohistogram"
	"github.com/go-kit/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/svc-kit/svc"
)

var (
	requests int
	workers  int
	rps      float64
	work     time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "svcload",
	Short: "Drive an in-process service from a worker pool and report latency quantiles",
	RunE:  run,
}

func init() {
	rootCmd.Flags().IntVar(&requests, "requests", 10000, "total requests to serve")
	rootCmd.Flags().IntVar(&workers, "workers", 16, "concurrent callers")
	rootCmd.Flags().Float64Var(&rps, "rps", 0, "request rate limit, 0 means unlimited")
	rootCmd.Flags().DurationVar(&work, "work", 0, "simulated work per request")
}

func run(*cobra.Command, []string) error {
	var logger log.Logger
	logger = log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	hasher := svc.Box[string, uint64](svc.Func[string, uint64](func(ctx context.Context, req string) (uint64, error) {
		if work > 0 {
			select {
			case <-time.After(work):
			case <-ctx.Done():
				return 0, ctx.Err()
			}
		}
		h := fnv.New64a()
		h.Write([]byte(req))
		return h.Sum64(), nil
	}))

	limiter := rate.NewLimiter(rate.Inf, 1)
	if rps > 0 {
		limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}

	var (
		mtx      sync.Mutex
		hist     = gohistogram.NewHistogram(50)
		failures uint64
		begin    = time.Now()
	)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(workers)
	for i := 0; i < requests; i++ {
		req := fmt.Sprintf("payload-%d", i)
		g.Go(func() error {
			if err := limiter.Wait(ctx); err != nil {
				return err
			}
			t0 := time.Now()
			_, err := hasher.Serve(ctx, req)
			d := time.Since(t0)
			mtx.Lock()
			hist.Add(d.Seconds())
			mtx.Unlock()
			if err != nil {
				atomic.AddUint64(&failures, 1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	took := time.Since(begin)

	quantile := func(q float64) time.Duration {
		mtx.Lock()
		defer mtx.Unlock()
		return time.Duration(hist.Quantile(q) * float64(time.Second))
	}
	logger.Log(
		"requests", requests,
		"workers", workers,
		"failures", atomic.LoadUint64(&failures),
		"took", took,
		"rate", fmt.Sprintf("%.0f/s", float64(requests)/took.Seconds()),
		"p50", quantile(0.50),
		"p90", quantile(0.90),
		"p99", quantile(0.99),
	)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
