// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/pastime/internal/logging"
)

// stubService runs until canceled, optionally failing its first starts.
type stubService struct {
	name     string
	starts   atomic.Int32
	failures int32
}

func (s *stubService) Serve(ctx context.Context) error {
	n := s.starts.Add(1)
	if n <= s.failures {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *stubService) String() string {
	return s.name
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSupervisorTreeConstruction(t *testing.T) {
	t.Run("creates hierarchical supervisor tree", func(t *testing.T) {
		tree, err := NewSupervisorTree(testLogger(), TreeConfig{
			FailureThreshold: 5,
			FailureBackoff:   time.Second,
			ShutdownTimeout:  10 * time.Second,
		})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}
		if tree.Root() == nil {
			t.Error("root supervisor should not be nil")
		}
	})

	t.Run("applies default values for zero config", func(t *testing.T) {
		tree, err := NewSupervisorTree(testLogger(), TreeConfig{})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}
		if got, want := tree.Config(), DefaultTreeConfig(); got != want {
			t.Errorf("Config() = %+v, want %+v", got, want)
		}
	})

	t.Run("accepts zerolog-backed slog logger", func(t *testing.T) {
		logger := slog.New(logging.NewSlogHandler(zerolog.Nop()))
		if _, err := NewSupervisorTree(logger, DefaultTreeConfig()); err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}
	})
}

func TestSupervisorTreeLifecycle(t *testing.T) {
	t.Run("tree starts and stops gracefully", func(t *testing.T) {
		tree, err := NewSupervisorTree(testLogger(), TreeConfig{
			FailureBackoff:  100 * time.Millisecond,
			ShutdownTimeout: time.Second,
		})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}

		engineSvc := &stubService{name: "engine"}
		apiSvc := &stubService{name: "api"}
		tree.AddEngineService(engineSvc)
		tree.AddAPIService(apiSvc)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := tree.ServeBackground(ctx)

		time.Sleep(100 * time.Millisecond)
		if engineSvc.starts.Load() < 1 || apiSvc.starts.Load() < 1 {
			t.Errorf("starts engine=%d api=%d, want both >= 1", engineSvc.starts.Load(), apiSvc.starts.Load())
		}

		cancel()
		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				t.Errorf("unexpected error: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Error("tree did not shut down in time")
		}

		report, err := tree.UnstoppedServiceReport()
		if err != nil {
			t.Fatalf("UnstoppedServiceReport() error = %v", err)
		}
		if len(report) != 0 {
			t.Errorf("unstopped services: %v", report)
		}
	})

	t.Run("removed api service is stopped", func(t *testing.T) {
		tree, _ := NewSupervisorTree(testLogger(), TreeConfig{ShutdownTimeout: time.Second})

		svc := &stubService{name: "api"}
		token := tree.AddAPIService(svc)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		errCh := tree.ServeBackground(ctx)

		time.Sleep(50 * time.Millisecond)
		if err := tree.RemoveAPIService(token); err != nil {
			t.Errorf("RemoveAPIService() error = %v", err)
		}

		cancel()
		<-errCh
	})
}

func TestSupervisorTreeFailureHandling(t *testing.T) {
	tree, _ := NewSupervisorTree(testLogger(), TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})

	failing := &stubService{name: "failing", failures: 2}
	stable := &stubService{name: "stable"}
	tree.AddAPIService(failing)
	tree.AddEngineService(stable)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	errCh := tree.ServeBackground(ctx)
	time.Sleep(200 * time.Millisecond)

	if failing.starts.Load() < 3 {
		t.Errorf("expected at least 3 starts for failing service, got %d", failing.starts.Load())
	}
	if stable.starts.Load() != 1 {
		t.Errorf("stable service started %d times, want 1", stable.starts.Load())
	}

	cancel()
	<-errCh
}

func TestDefaultTreeConfig(t *testing.T) {
	config := DefaultTreeConfig()

	if config.FailureThreshold != 5.0 {
		t.Errorf("expected FailureThreshold 5.0, got %f", config.FailureThreshold)
	}
	if config.FailureDecay != 30.0 {
		t.Errorf("expected FailureDecay 30.0, got %f", config.FailureDecay)
	}
	if config.FailureBackoff != 15*time.Second {
		t.Errorf("expected FailureBackoff 15s, got %v", config.FailureBackoff)
	}
	if config.ShutdownTimeout != 10*time.Second {
		t.Errorf("expected ShutdownTimeout 10s, got %v", config.ShutdownTimeout)
	}
}
