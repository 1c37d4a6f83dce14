package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/draftpost/internal/config"
)

type fakeService struct {
	name     string
	startErr error
	block    bool
	stopped  atomic.Bool
}

func (s *fakeService) Name() string { return s.name }

func (s *fakeService) Start(ctx context.Context) error {
	if s.block {
		<-ctx.Done()
		return nil
	}
	return s.startErr
}

func (s *fakeService) Stop(context.Context) error {
	s.stopped.Store(true)
	return nil
}

func TestRunnerStopsAllOnFailure(t *testing.T) {
	boom := errors.New("boom")
	failing := &fakeService{name: "failing", startErr: boom}
	healthy := &fakeService{name: "healthy", block: true}

	err := NewRunner(failing, healthy).Run(context.Background(), time.Second, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("want boom got %v", err)
	}
	if !failing.stopped.Load() || !healthy.stopped.Load() {
		t.Fatalf("all services should be stopped")
	}
}

func TestRunnerCancelIsClean(t *testing.T) {
	svc := &fakeService{name: "blocking", block: true}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	if err := NewRunner(svc).Run(ctx, time.Second, nil); err != nil {
		t.Fatalf("cancel should not be reported as error, got %v", err)
	}
	if !svc.stopped.Load() {
		t.Fatalf("service should be stopped")
	}
}

func TestRunnerWithoutServices(t *testing.T) {
	if err := NewRunner().Run(context.Background(), time.Second, nil); err == nil {
		t.Fatalf("empty runner should fail")
	}
}

func TestBuildRunnerModes(t *testing.T) {
	cfg := &config.Config{Server: config.ServerConfig{Host: "127.0.0.1", Port: "0", Mode: "debug"}}

	runner, container, err := BuildRunner(cfg, ModeAll)
	if err != nil {
		t.Fatalf("all mode without queue should still build api: %v", err)
	}
	container.Close()
	if len(runner.services) != 1 || runner.services[0].Name() != "http" {
		t.Fatalf("want only http service, got %d", len(runner.services))
	}

	if _, _, err := BuildRunner(cfg, ModeWorker); err == nil {
		t.Fatalf("worker mode without queue should fail")
	}
	if _, _, err := BuildRunner(cfg, "bogus"); err == nil {
		t.Fatalf("unknown mode should fail")
	}
	if _, _, err := BuildRunner(nil, ModeAll); err == nil {
		t.Fatalf("nil config should fail")
	}
}

func TestNormalizeOptions(t *testing.T) {
	opts := normalizeOptions(Options{})
	if opts.Mode != ModeAll || opts.ShutdownTimeout != 10*time.Second || opts.Logger == nil {
		t.Fatalf("unexpected defaults: %+v", opts)
	}
}

func TestHTTPServiceNil(t *testing.T) {
	var s *HTTPService
	if s.Name() != "http" {
		t.Fatalf("nil service should still have a name")
	}
	if err := s.Start(context.Background()); err == nil {
		t.Fatalf("nil service should fail to start")
	}
	if err := s.Stop(context.Background()); err != nil {
		t.Fatalf("nil service stop should be a no-op: %v", err)
	}
}
