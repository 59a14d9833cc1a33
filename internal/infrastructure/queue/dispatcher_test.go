package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/marketbay/storefront/internal/core/domain"
)

// captureService collects processed entries.
type captureService struct {
	mu      sync.Mutex
	entries []domain.Activity
}

func (s *captureService) Process(ctx context.Context, a domain.Activity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, a)
	return nil
}

func (s *captureService) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	return nil, nil
}

func (s *captureService) snapshot() []domain.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Activity, len(s.entries))
	copy(out, s.entries)
	return out
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestDispatcherProcessesRecordedEntries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &captureService{}
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start(ctx)

	d.Record(domain.Activity{Kind: domain.ActivityLogin, Username: "alice"})
	d.Record(domain.Activity{Kind: domain.ActivityOrderPlaced, Username: "bob"})

	waitFor(t, func() bool { return len(svc.snapshot()) == 2 })
}

func TestDispatcherPreservesPerUserOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := &captureService{}
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start(ctx)

	kinds := []domain.ActivityKind{
		domain.ActivityLogin,
		domain.ActivityOrderPlaced,
		domain.ActivityLogout,
	}
	for _, k := range kinds {
		d.Record(domain.Activity{Kind: k, Username: "alice"})
	}

	waitFor(t, func() bool { return len(svc.snapshot()) == len(kinds) })

	for i, entry := range svc.snapshot() {
		if entry.Kind != kinds[i] {
			t.Errorf("entry %d = %s, want %s", i, entry.Kind, kinds[i])
		}
	}
}

func TestDispatcherDefaultsWorkerCount(t *testing.T) {
	d := NewDispatcher(0, &captureService{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Errorf("workers = %d, want %d", len(d.workers), defaultWorkers)
	}
}
