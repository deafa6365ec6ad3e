package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/people-catalog/internal/core/domain"
)

type recordingRepo struct {
	mu     sync.Mutex
	events []domain.MutationEvent
	err    error
}

func (r *recordingRepo) InsertMutationEvent(_ context.Context, e *domain.MutationEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, *e)
	return nil
}

func (r *recordingRepo) snapshot() []domain.MutationEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.MutationEvent, len(r.events))
	copy(out, r.events)
	return out
}

func event(op string, entity domain.Entity, id int64) domain.MutationEvent {
	return domain.MutationEvent{
		ID:         op,
		Operation:  op,
		Entity:     entity,
		EntityID:   id,
		OccurredAt: time.Now(),
	}
}

func TestDispatcher_ShardIndexIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, &recordingRepo{}, zerolog.Nop())

	key := event("editItem", domain.EntityItem, 42).Key()
	first := d.shardIndex(key)
	for i := 0; i < 10; i++ {
		if got := d.shardIndex(key); got != first {
			t.Fatalf("shard index changed: %d != %d", got, first)
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

func TestDispatcher_DefaultWorkers(t *testing.T) {
	d := NewDispatcher(0, &recordingRepo{}, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, len(d.workers))
	}
}

func TestDispatcher_PreservesOrderPerEntity(t *testing.T) {
	repo := &recordingRepo{}
	d := NewDispatcher(4, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	ops := []string{"addItem", "editItem", "editItem2", "deleteItem"}
	for _, op := range ops {
		d.Record(event(op, domain.EntityItem, 7))
	}
	d.Record(event("addCategory", domain.EntityCategory, 1))

	cancel()
	d.Wait()

	var got []string
	for _, e := range repo.snapshot() {
		if e.Entity == domain.EntityItem {
			got = append(got, e.Operation)
		}
	}
	if len(got) != len(ops) {
		t.Fatalf("expected %d item events, got %d", len(ops), len(got))
	}
	for i := range ops {
		if got[i] != ops[i] {
			t.Fatalf("event %d: expected %q, got %q", i, ops[i], got[i])
		}
	}
	if n := len(repo.snapshot()); n != len(ops)+1 {
		t.Fatalf("expected %d stored events, got %d", len(ops)+1, n)
	}
}

func TestDispatcher_RecordDropsWhenFull(t *testing.T) {
	repo := &recordingRepo{}
	d := NewDispatcher(1, repo, zerolog.Nop())

	// No workers running: the single buffer fills and the rest are dropped.
	for i := 0; i < channelBuffer+10; i++ {
		d.Record(event("editItem", domain.EntityItem, int64(i)))
	}
	if n := len(d.workers[0]); n != channelBuffer {
		t.Fatalf("expected buffer of %d, got %d", channelBuffer, n)
	}
}

func TestDispatcher_RepoErrorDoesNotStopWorker(t *testing.T) {
	repo := &recordingRepo{err: errors.New("mongo down")}
	d := NewDispatcher(1, repo, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	d.Record(event("addItem", domain.EntityItem, 1))
	d.Record(event("addItem", domain.EntityItem, 2))
	cancel()
	d.Wait()

	if n := len(repo.snapshot()); n != 0 {
		t.Fatalf("expected nothing stored, got %d", n)
	}
	if n := len(d.workers[0]); n != 0 {
		t.Fatalf("expected drained channel, got %d pending", n)
	}
}
