package repo

import (
	"context"
	"time"

	"github.com/Egor213/UniLog/internal/domain"
	"github.com/Egor213/UniLog/internal/repo/pgdb"
	"github.com/Egor213/UniLog/internal/repo/repotypes"
	"github.com/Egor213/UniLog/pkg/postgres"
)

type Channel interface {
	GetChannels(ctx context.Context, tenantId int64) ([]domain.Channel, error)
	UpsertChannel(ctx context.Context, ch *domain.Channel) (int64, error)
	DeleteChannel(ctx context.Context, tenantId, channelId int64) error
}

type Entry interface {
	AppendEntry(ctx context.Context, entry *domain.LogEntry) (int64, error)
	GetEntries(ctx context.Context, filter repotypes.EntryFilter) ([]domain.LogEntry, error)
	DeleteEntriesOlderThan(ctx context.Context, channelId int64, cutoff time.Time) (int64, error)
}

type Tenant interface {
	ListTenantIds(ctx context.Context) ([]int64, error)
	AddTenant(ctx context.Context, tenantId int64) error
}

type Repositories struct {
	Channel
	Entry
	Tenant
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		Channel: pgdb.NewChannelRepo(pg),
		Entry:   pgdb.NewEntryRepo(pg),
		Tenant:  pgdb.NewTenantRepo(pg),
	}
}
