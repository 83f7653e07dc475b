package main

import (
	"context"
	"io"
	"net/http"

	"go.uber.org/fx"
)

// provideHTTP assembles the HTTP client and the single-request run
// lifecycle.  Each process invocation performs exactly one operation, then
// shuts the application down.
func provideHTTP(stdout, stderr io.Writer) fx.Option {
	return fx.Options(
		fx.Provide(
			func() *http.Client {
				return new(http.Client)
			},
			func(cl CommandLine, client *http.Client, logger Logger) *Beelay {
				return &Beelay{
					Client: client,
					Server: fixServerAddr(cl.Server),
					Logger: logger,
					Stdout: stdout,
					Stderr: stderr,
				}
			},
		),
		fx.Invoke(
			func(l fx.Lifecycle, s fx.Shutdowner, cl CommandLine, cmd Command, b *Beelay) {
				l.Append(fx.Hook{
					OnStart: func(context.Context) error {
						go func() {
							defer s.Shutdown()
							if err := b.Run(cmd, cl); err != nil {
								b.reportError(err)
							}
						}()

						return nil
					},
				})
			},
		),
	)
}
