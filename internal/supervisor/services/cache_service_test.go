// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

type countingPurger struct {
	calls atomic.Int32
}

func (p *countingPurger) PurgeExpired() int {
	p.calls.Add(1)
	return 1
}

func TestCacheJanitorService_Interface(t *testing.T) {
	var _ suture.Service = (*CacheJanitorService)(nil)
}

func TestNewCacheJanitorService_DefaultInterval(t *testing.T) {
	svc := NewCacheJanitorService(&countingPurger{}, 0, zerolog.Nop())
	if svc.interval != DefaultSweepInterval {
		t.Errorf("interval = %v, want %v", svc.interval, DefaultSweepInterval)
	}
	if svc.String() != "cache-janitor" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestCacheJanitorService_Serve(t *testing.T) {
	purger := &countingPurger{}
	svc := NewCacheJanitorService(purger, 10*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(ctx)
	}()

	deadline := time.After(time.Second)
	for purger.calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("purger called %d times, want at least 2", purger.calls.Load())
		case <-time.After(5 * time.Millisecond):
		}
	}

	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Error("Serve did not return after cancellation")
	}
}
