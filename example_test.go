package svc_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/svc-kit/svc"
)

func ExampleFunc() {
	upper := svc.Func[string, string](func(_ context.Context, req string) (string, error) {
		return strings.ToUpper(req), nil
	})

	resp, _ := upper.Serve(context.Background(), "ping")
	fmt.Println(resp)

	// Output:
	// PING
}

func ExampleBox() {
	handlers := map[string]svc.BoxService[string, string]{
		"ping": svc.Box[string, string](svc.Func[string, string](func(context.Context, string) (string, error) {
			return "pong", nil
		})),
		"echo": svc.Box[string, string](svc.Func[string, string](func(_ context.Context, req string) (string, error) {
			return req, nil
		})),
	}

	for _, name := range []string{"ping", "echo"} {
		resp, _ := handlers[name].Serve(context.Background(), "hello")
		fmt.Println(name, resp)
	}

	// Output:
	// ping pong
	// echo hello
}
