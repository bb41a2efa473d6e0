package svctest_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/svc-kit/svc"
	"github.com/svc-kit/svc/svctest"
)

func TestConst(t *testing.T) {
	pong := svctest.Const[string, string]("pong")
	for _, req := range []string{"", "ping", "anything at all"} {
		resp, err := pong.Serve(context.Background(), req)
		if err != nil {
			t.Fatal(err)
		}
		if want, have := "pong", resp; want != have {
			t.Errorf("request %q: want %q, have %q", req, want, have)
		}
	}
}

func TestFailing(t *testing.T) {
	boom := errors.New("boom")
	failing := svctest.Failing[string, string](boom)

	resp, err := failing.Serve(context.Background(), "ping")
	if !errors.Is(err, boom) {
		t.Errorf("want %v, have %v", boom, err)
	}
	if want, have := "", resp; want != have {
		t.Errorf("want zero response, have %q", have)
	}
}

func TestEcho(t *testing.T) {
	echo := svctest.Echo[int]()
	resp, err := echo.Serve(context.Background(), 17)
	if err != nil {
		t.Fatal(err)
	}
	if want, have := 17, resp; want != have {
		t.Errorf("want %d, have %d", want, have)
	}
}

func TestHang(t *testing.T) {
	hang := svctest.Hang[string, string]()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := hang.Serve(ctx, "request")
		done <- err
	}()

	select {
	case err := <-done:
		t.Fatalf("service returned early: %v", err)
	case <-time.After(10 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		if want, have := context.Canceled, err; want != have {
			t.Errorf("want %v, have %v", want, have)
		}
	case <-time.After(time.Second):
		t.Fatal("service did not observe cancellation in time")
	}
}

func TestRecorder(t *testing.T) {
	rec := svctest.NewRecorder(svctest.Echo[string]())

	for _, req := range []string{"a", "b", "c"} {
		if _, err := rec.Serve(context.Background(), req); err != nil {
			t.Fatal(err)
		}
	}

	if want, have := 3, rec.Calls(); want != have {
		t.Errorf("want %d calls, have %d", want, have)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, rec.Requests()); diff != "" {
		t.Errorf("unexpected requests (-want +have):\n%s", diff)
	}
}

func TestRecorderConcurrent(t *testing.T) {
	rec := svctest.NewRecorder(svctest.Echo[string]())
	shared := svc.Box[string, string](rec)

	var g errgroup.Group
	for i := 0; i < 50; i++ {
		g.Go(func() error {
			req := "request-" + strconv.Itoa(i)
			resp, err := shared.Serve(context.Background(), req)
			if err != nil {
				return err
			}
			if resp != req {
				return errors.Errorf("request %q: have %q", req, resp)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	if want, have := 50, rec.Calls(); want != have {
		t.Errorf("want %d calls, have %d", want, have)
	}
}

// failCapture downgrades fatal assertion failures to a recorded flag so the
// helpers themselves can be tested.
type failCapture struct {
	testing.TB
	failed bool
}

func (c *failCapture) Helper() {}

func (c *failCapture) Fatalf(string, ...interface{}) { c.failed = true }

func TestAssertServe(t *testing.T) {
	pong := svctest.Const[string, string]("pong")

	svctest.AssertServe(t, pong, "ping", "pong")

	capture := &failCapture{TB: t}
	svctest.AssertServe(capture, pong, "ping", "not pong")
	if !capture.failed {
		t.Error("mismatched response should have failed the test")
	}
}

func TestAssertServeError(t *testing.T) {
	boom := errors.New("boom")

	svctest.AssertServeError(t, svctest.Failing[string, string](boom), "ping", boom)

	capture := &failCapture{TB: t}
	svctest.AssertServeError(capture, svctest.Const[string, string]("pong"), "ping", boom)
	if !capture.failed {
		t.Error("missing error should have failed the test")
	}
}
