package grpccontroller

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	log "github.com/sirupsen/logrus"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	defaultCheckInterval = 10 * time.Second
	defaultPingTimeout   = 2 * time.Second
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type StatusSetter interface {
	SetServingStatus(service string, status healthpb.HealthCheckResponse_ServingStatus)
}

// ReadinessWatcher reports the log store as serving while the database
// answers pings.
type ReadinessWatcher struct {
	pinger   Pinger
	status   StatusSetter
	clock    clock.Clock
	interval time.Duration

	serving bool
	checked bool
}

func NewReadinessWatcher(p Pinger, s StatusSetter, c clock.Clock, interval time.Duration) *ReadinessWatcher {
	if c == nil {
		c = clock.New()
	}
	if interval <= 0 {
		interval = defaultCheckInterval
	}
	return &ReadinessWatcher{
		pinger:   p,
		status:   s,
		clock:    c,
		interval: interval,
	}
}

// Run checks once immediately and then every interval until ctx is done.
func (w *ReadinessWatcher) Run(ctx context.Context) {
	ticker := w.clock.Ticker(w.interval)
	defer ticker.Stop()

	w.Check(ctx)

	for {
		select {
		case <-ctx.Done():
			w.set(false)
			return
		case <-ticker.C:
			w.Check(ctx)
		}
	}
}

func (w *ReadinessWatcher) Check(ctx context.Context) bool {
	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()

	err := w.pinger.Ping(pingCtx)
	if err != nil && (!w.checked || w.serving) {
		log.WithField("error", err).Warn("Database ping failed, reporting not serving")
	}
	w.set(err == nil)
	return err == nil
}

func (w *ReadinessWatcher) set(serving bool) {
	if w.checked && w.serving == serving {
		return
	}
	w.checked = true
	w.serving = serving

	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}
	w.status.SetServingStatus(ServiceName, st)
	w.status.SetServingStatus("", st)
}
