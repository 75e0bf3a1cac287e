package http

import (
	"context"
	"net/http"
)

type Middleware func(http.Handler) http.Handler

type ShutdownHook func(ctx context.Context) error

type Options struct {
	Address       string
	Mounts        map[string]http.Handler
	Middlewares   []Middleware
	ShutdownHooks []ShutdownHook
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Address:       ":8000",
		Mounts:        map[string]http.Handler{},
		Middlewares:   []Middleware{},
		ShutdownHooks: []ShutdownHook{},
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithMount(prefix string, handler http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.Mounts[prefix] = handler
	}
}

func WithAddress(addr string) OptionFunc {
	return func(opts *Options) {
		opts.Address = addr
	}
}

// WithMiddlewares appends middlewares to the server chain. The first
// middleware is the outermost one.
func WithMiddlewares(middlewares ...Middleware) OptionFunc {
	return func(opts *Options) {
		opts.Middlewares = append(opts.Middlewares, middlewares...)
	}
}

// WithShutdownHook registers a function called once the server stopped
// accepting requests.
func WithShutdownHook(hook ShutdownHook) OptionFunc {
	return func(opts *Options) {
		opts.ShutdownHooks = append(opts.ShutdownHooks, hook)
	}
}
