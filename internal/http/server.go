package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	opts *Options
}

// Handler returns the server root handler, with every mount and middleware
// applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	for prefix, handler := range s.opts.Mounts {
		trimmed := strings.TrimSuffix(prefix, "/")
		if trimmed == "" {
			mux.Handle("/", handler)
			continue
		}

		stripped := http.StripPrefix(trimmed, handler)
		mux.Handle(trimmed, stripped)
		mux.Handle(trimmed+"/", stripped)
	}

	var handler http.Handler = mux
	for i := len(s.opts.Middlewares) - 1; i >= 0; i-- {
		handler = s.opts.Middlewares[i](handler)
	}

	return handler
}

// Run serves requests until the given context is canceled.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return errors.Wrapf(err, "could not listen on '%s'", s.opts.Address)
	}

	server := &http.Server{
		Handler: s.Handler(),
	}

	errs := make(chan error, 1)

	go func() {
		defer close(errs)
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- errors.WithStack(err)
		}
	}()

	slog.InfoContext(ctx, "http server listening", slog.String("address", listener.Addr().String()))

	select {
	case err := <-errs:
		return errors.WithStack(err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	slog.InfoContext(shutdownCtx, "shutting down http server")

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "could not shutdown http server")
	}

	for _, hook := range s.opts.ShutdownHooks {
		if err := hook(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "shutdown hook failed", slog.Any("error", errors.WithStack(err)))
		}
	}

	return nil
}

func NewServer(funcs ...OptionFunc) *Server {
	opts := NewOptions(funcs...)
	return &Server{
		opts: opts,
	}
}
