package service

import (
	"context"
	"sync"
	"time"

	"github.com/Egor213/UniLog/internal/broker"
	"github.com/Egor213/UniLog/internal/domain"
	"github.com/Egor213/UniLog/internal/metrics"
	"github.com/Egor213/UniLog/internal/repo"
	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"
)

const (
	// SelfChannel is where the service logs its own housekeeping.
	SelfChannel = "unilog"

	DefaultSweepInterval = time.Hour
)

type SweepReport struct {
	StartedAt time.Time
	Tenants   int
	Channels  int
	Deleted   int64
	Failures  int
}

type SweeperDependencies struct {
	Logs      Log
	Channels  Channel
	EntryRepo repo.Entry
	Tenants   repo.Tenant
	Counters  *metrics.Counters
	Producer  broker.Producer
	Clock     clock.Clock

	Interval time.Duration
	// HomeTenant receives the "sweep started" entry.
	HomeTenant int64
}

// Sweeper deletes entries older than each channel's retention window.
type Sweeper struct {
	logs      Log
	channels  Channel
	entryRepo repo.Entry
	tenants   repo.Tenant
	counters  *metrics.Counters
	producer  broker.Producer
	clock     clock.Clock

	interval   time.Duration
	homeTenant int64

	running sync.Mutex
}

func NewSweeper(deps SweeperDependencies) *Sweeper {
	s := &Sweeper{
		logs:       deps.Logs,
		channels:   deps.Channels,
		entryRepo:  deps.EntryRepo,
		tenants:    deps.Tenants,
		counters:   deps.Counters,
		producer:   deps.Producer,
		clock:      deps.Clock,
		interval:   deps.Interval,
		homeTenant: deps.HomeTenant,
	}
	if s.clock == nil {
		s.clock = clock.New()
	}
	if s.producer == nil {
		s.producer = broker.NopProducer{}
	}
	if s.interval <= 0 {
		s.interval = DefaultSweepInterval
	}
	return s
}

// Run sweeps once per interval until ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := s.clock.Ticker(s.interval)
	defer ticker.Stop()

	log.WithField("interval", s.interval.String()).Info("Retention sweeper started")

	for {
		select {
		case <-ctx.Done():
			log.Info("Retention sweeper stopped")
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep purges expired entries of every tenant. It returns false without
// doing anything when another sweep is still running. A failing tenant or
// channel is logged and skipped.
func (s *Sweeper) Sweep(ctx context.Context) (SweepReport, bool) {
	if !s.running.TryLock() {
		s.counters.Sweeps.Inc("skipped")
		log.Warn("Previous sweep is still running, skipping")
		return SweepReport{}, false
	}
	defer s.running.Unlock()

	now := s.clock.Now()
	report := SweepReport{StartedAt: now}

	if _, err := s.logs.InsertEntry(ctx, s.homeTenant, SelfChannel, domain.LevelDetail, "Beginning scheduled log purge."); err != nil {
		log.WithField("error", err).Warn("Failed to log sweep start")
	}

	tenantIds, err := s.tenants.ListTenantIds(ctx)
	if err != nil {
		s.counters.Sweeps.Inc("failed")
		log.WithField("error", err).Error("Failed to list tenants, nothing purged")
		report.Failures++
		return report, true
	}

	for _, tenantId := range tenantIds {
		report.Tenants++

		channels, err := s.channels.ListChannels(ctx, tenantId)
		if err != nil {
			log.WithFields(log.Fields{
				"tenant": tenantId,
				"error":  err,
			}).Warn("No channel list for tenant, nothing to purge")
			continue
		}

		for _, ch := range channels {
			report.Channels++

			cutoff := now.Add(-time.Duration(ch.RetentionHours) * time.Hour)
			deleted, err := s.entryRepo.DeleteEntriesOlderThan(ctx, ch.Id, cutoff)
			if err != nil {
				report.Failures++
				s.counters.EntriesPurged.Inc(resultFailed)
				log.WithFields(log.Fields{
					"tenant":  tenantId,
					"channel": ch.Name,
					"error":   err,
				}).Error("Failed to purge channel")
				continue
			}

			report.Deleted += deleted
			s.counters.EntriesPurged.Add(float64(deleted), resultOk)
		}
	}

	s.counters.Sweeps.Inc("completed")
	log.WithFields(log.Fields{
		"tenants":  report.Tenants,
		"channels": report.Channels,
		"deleted":  report.Deleted,
		"failures": report.Failures,
		"took":     s.clock.Now().Sub(now).String(),
	}).Info("Sweep completed")

	if err := broker.Publish(ctx, s.producer, broker.Event{
		Type:     broker.EventSweepCompleted,
		Deleted:  report.Deleted,
		Failures: report.Failures,
		At:       now.UTC(),
	}); err != nil {
		log.WithField("error", err).Warn("Failed to publish sweep report")
	}

	return report, true
}
