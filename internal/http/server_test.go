package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestServerHandler(t *testing.T) {
	var order []string

	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	root := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("root:" + r.URL.Path))
	})

	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("metrics:" + r.URL.Path))
	})

	server := NewServer(
		WithMount("/", root),
		WithMount("/metrics/", metrics),
		WithMiddlewares(tag("first"), tag("second")),
	)

	handler := server.Handler()

	type testCase struct {
		Path     string
		Expected string
	}

	testCases := []testCase{
		{Path: "/get-readings", Expected: "root:/get-readings"},
		{Path: "/metrics", Expected: "metrics:"},
		{Path: "/metrics/", Expected: "metrics:/"},
	}

	for _, tc := range testCases {
		order = nil

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, httptest.NewRequest(http.MethodGet, tc.Path, nil))

		if e, g := tc.Expected, res.Body.String(); e != g {
			t.Errorf("GET %s: expected body '%s', got '%s'", tc.Path, e, g)
		}

		if e, g := 2, len(order); e != g {
			t.Fatalf("len(order): expected %d, got %d", e, g)
		}

		if e, g := "first", order[0]; e != g {
			t.Errorf("order[0]: expected %s, got %s", e, g)
		}
	}
}

func TestServerRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	hookCalled := make(chan struct{})

	server := NewServer(
		WithAddress("127.0.0.1:0"),
		WithShutdownHook(func(ctx context.Context) error {
			close(hookCalled)
			return nil
		}),
	)

	errs := make(chan error, 1)
	go func() {
		errs <- server.Run(ctx)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-errs:
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	select {
	case <-hookCalled:
	default:
		t.Error("shutdown hook was not called")
	}
}
