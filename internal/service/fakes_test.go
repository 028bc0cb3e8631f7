package service_test

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/Egor213/UniLog/internal/domain"
	"github.com/Egor213/UniLog/internal/repo/repoerrs"
	"github.com/Egor213/UniLog/internal/repo/repotypes"
	"github.com/benbjohnson/clock"
)

// In-memory stores used by the end to end service tests.

type memChannelRepo struct {
	mu       sync.Mutex
	nextId   int64
	channels map[int64]domain.Channel
}

func newMemChannelRepo() *memChannelRepo {
	return &memChannelRepo{channels: make(map[int64]domain.Channel)}
}

func (r *memChannelRepo) GetChannels(_ context.Context, tenantId int64) ([]domain.Channel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.Channel
	for _, ch := range r.channels {
		if ch.TenantId == tenantId {
			out = append(out, ch)
		}
	}
	return out, nil
}

func (r *memChannelRepo) UpsertChannel(_ context.Context, ch *domain.Channel) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, existing := range r.channels {
		if existing.TenantId == ch.TenantId && existing.Name == ch.Name {
			updated := *ch
			updated.Id = id
			r.channels[id] = updated
			return id, nil
		}
	}

	r.nextId++
	created := *ch
	created.Id = r.nextId
	r.channels[created.Id] = created
	return created.Id, nil
}

func (r *memChannelRepo) DeleteChannel(_ context.Context, tenantId, channelId int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch, ok := r.channels[channelId]
	if !ok || ch.TenantId != tenantId {
		return repoerrs.ErrNotFound
	}
	delete(r.channels, channelId)
	return nil
}

type memEntryRepo struct {
	mu      sync.Mutex
	clock   clock.Clock
	nextId  int64
	entries []domain.LogEntry
}

func newMemEntryRepo(c clock.Clock) *memEntryRepo {
	return &memEntryRepo{clock: c}
}

func (r *memEntryRepo) AppendEntry(_ context.Context, e *domain.LogEntry) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextId++
	stored := *e
	stored.Id = r.nextId
	stored.Timestamp = r.clock.Now().UTC()
	r.entries = append(r.entries, stored)
	return stored.Id, nil
}

func (r *memEntryRepo) GetEntries(_ context.Context, f repotypes.EntryFilter) ([]domain.LogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []domain.LogEntry
	for _, e := range r.entries {
		if e.ChannelId != f.ChannelId || e.Level < f.MinLevel || e.Level > f.MaxLevel {
			continue
		}
		if e.Timestamp.Before(f.From) || !e.Timestamp.Before(f.To) {
			continue
		}
		out = append(out, e)
	}
	// same order as the SQL store: created_at, then id
	slices.SortFunc(out, func(a, b domain.LogEntry) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(a.Id, b.Id)
	})
	return out, nil
}

func (r *memEntryRepo) DeleteEntriesOlderThan(_ context.Context, channelId int64, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.entries[:0]
	var deleted int64
	for _, e := range r.entries {
		if e.ChannelId == channelId && e.Timestamp.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	r.entries = kept
	return deleted, nil
}

type memTenantRepo struct {
	mu  sync.Mutex
	ids []int64
}

func (r *memTenantRepo) ListTenantIds(context.Context) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.ids...), nil
}

func (r *memTenantRepo) AddTenant(_ context.Context, tenantId int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.ids {
		if id == tenantId {
			return nil
		}
	}
	r.ids = append(r.ids, tenantId)
	return nil
}
