package main

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	bhttp "brandsight/http"
)

// Run executes the serve command. It blocks until the context is
// canceled or the listener fails.
func (c *ServeCmd) Run(deps *Dependencies) error {
	handler := bhttp.NewHandler(deps.Service, deps.Logger)

	server := &http.Server{
		Addr:              c.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-deps.Ctx.Done()
		_ = server.Close()
	}()

	fmt.Fprintf(deps.Stderr, "Listening on %s\n", c.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
