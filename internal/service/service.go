package service

import (
	"context"
	"time"

	"github.com/Egor213/UniLog/internal/broker"
	"github.com/Egor213/UniLog/internal/domain"
	"github.com/Egor213/UniLog/internal/metrics"
	"github.com/Egor213/UniLog/internal/repo"
	"github.com/benbjohnson/clock"
)

type Channel interface {
	GetChannel(ctx context.Context, tenantId int64, name string) (domain.Channel, error)
	ListChannels(ctx context.Context, tenantId int64) ([]domain.Channel, error)
	UpsertChannel(ctx context.Context, tenantId int64, name string, retentionHours int, minLevel domain.Level) bool
	DeleteChannel(ctx context.Context, tenantId int64, name string) bool
}

type Log interface {
	InsertEntry(ctx context.Context, tenantId int64, channel string, level domain.Level, message string, opts ...EntryOption) (bool, error)
	CanLog(ctx context.Context, tenantId int64, channel string, level domain.Level) bool
	GetEntries(ctx context.Context, tenantId int64, channel string, filter domain.EntryFilter) ([]domain.LogEntry, error)
	GetChannel(ctx context.Context, tenantId int64, channel string) (domain.Channel, bool)
	ListChannels(ctx context.Context, tenantId int64) ([]domain.Channel, error)
	UpsertChannel(ctx context.Context, tenantId int64, name string, opts ...ChannelOption) (bool, error)
	DeleteChannel(ctx context.Context, tenantId int64, name string) bool
}

type RetentionSweeper interface {
	Run(ctx context.Context)
	Sweep(ctx context.Context) (SweepReport, bool)
}

type Setup interface {
	Install(ctx context.Context, tenantId int64) error
	InstallAll(ctx context.Context, tenantIds []int64) error
	Uninstall(ctx context.Context, tenantId int64) error
	ListTenants(ctx context.Context) ([]int64, error)
}

type Services struct {
	Log
	Setup
	Sweeper RetentionSweeper
}

type ServicesDependencies struct {
	Repos          *repo.Repositories
	Counters       *metrics.Counters
	BrokerProducer broker.Producer
	Clock          clock.Clock

	TraceRoot     string
	SweepInterval time.Duration
	HomeTenant    int64
}

func NewServices(deps ServicesDependencies) *Services {
	channels := NewChannelService(deps.Repos.Channel)
	logs := NewLogService(channels, deps.Repos.Entry, deps.Counters, deps.BrokerProducer, deps.TraceRoot)

	return &Services{
		Log:   logs,
		Setup: NewSetupService(logs, deps.Repos.Tenant),
		Sweeper: NewSweeper(SweeperDependencies{
			Logs:       logs,
			Channels:   channels,
			EntryRepo:  deps.Repos.Entry,
			Tenants:    deps.Repos.Tenant,
			Counters:   deps.Counters,
			Producer:   deps.BrokerProducer,
			Clock:      deps.Clock,
			Interval:   deps.SweepInterval,
			HomeTenant: deps.HomeTenant,
		}),
	}
}
