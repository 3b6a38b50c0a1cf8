// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DefaultShutdownTimeout bounds graceful HTTP shutdown when none is given.
const DefaultShutdownTimeout = 5 * time.Second

// HTTPServer is the lifecycle subset of *http.Server.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPServerService runs an HTTP server under suture supervision.
//
// ListenAndServe runs in a goroutine. When ctx is canceled the server is
// shut down with a fresh timeout context, since ctx itself is already done.
type HTTPServerService struct {
	name            string
	server          HTTPServer
	shutdownTimeout time.Duration
}

// NewHTTPServerService wraps server. A non-positive shutdownTimeout uses
// DefaultShutdownTimeout.
func NewHTTPServerService(name string, server HTTPServer, shutdownTimeout time.Duration) *HTTPServerService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = DefaultShutdownTimeout
	}
	if name == "" {
		name = "http-server"
	}
	return &HTTPServerService{
		name:            name,
		server:          server,
		shutdownTimeout: shutdownTimeout,
	}
}

// Serve implements suture.Service. http.ErrServerClosed is not an error.
func (h *HTTPServerService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("%s failed: %w", h.name, err)
		}
		return nil

	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s shutdown failed: %w", h.name, err)
		}
		<-errCh
		return ctx.Err()
	}
}

// String implements fmt.Stringer. Suture uses it in event logs.
func (h *HTTPServerService) String() string {
	return h.name
}
