package service

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"

	"github.com/Egor213/UniLog/internal/domain"
	"github.com/Egor213/UniLog/internal/repo"
	"github.com/Egor213/UniLog/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/UniLog/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// tenantChannels is the cached registry of one tenant. mu guards byName;
// writeMu serialises upsert/delete across the store call and the cache update.
type tenantChannels struct {
	mu      sync.RWMutex
	writeMu sync.Mutex
	byName  map[string]domain.Channel
}

func (tc *tenantChannels) get(name string) (domain.Channel, bool) {
	tc.mu.RLock()
	defer tc.mu.RUnlock()
	ch, ok := tc.byName[name]
	return ch, ok
}

// ChannelService keeps every tenant's channels in memory. A tenant is loaded
// from the store on first use and never evicted afterwards.
type ChannelService struct {
	channelRepo repo.Channel

	mu      sync.RWMutex
	tenants map[int64]*tenantChannels
	loads   singleflight.Group
}

func NewChannelService(cr repo.Channel) *ChannelService {
	return &ChannelService{
		channelRepo: cr,
		tenants:     make(map[int64]*tenantChannels),
	}
}

func (s *ChannelService) cached(tenantId int64) (*tenantChannels, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tc, ok := s.tenants[tenantId]
	return tc, ok
}

func (s *ChannelService) tenant(ctx context.Context, tenantId int64) (*tenantChannels, error) {
	if tc, ok := s.cached(tenantId); ok {
		return tc, nil
	}

	v, err, _ := s.loads.Do(strconv.FormatInt(tenantId, 10), func() (any, error) {
		if tc, ok := s.cached(tenantId); ok {
			return tc, nil
		}

		// the load is shared by every waiting caller
		channels, err := s.channelRepo.GetChannels(context.WithoutCancel(ctx), tenantId)
		if err != nil {
			return nil, err
		}

		tc := &tenantChannels{byName: make(map[string]domain.Channel, len(channels))}
		for _, ch := range channels {
			tc.byName[ch.Name] = ch
		}

		s.mu.Lock()
		s.tenants[tenantId] = tc
		s.mu.Unlock()

		log.WithFields(log.Fields{
			"tenant":   tenantId,
			"channels": len(channels),
		}).Debug("Channels loaded")

		return tc, nil
	})
	if err != nil {
		log.WithFields(log.Fields{
			"tenant": tenantId,
			"error":  err,
		}).Error("Failed to load channels")
		return nil, errorsUtils.WrapPathErr(ErrCannotLoadChannels)
	}

	return v.(*tenantChannels), nil
}

func (s *ChannelService) GetChannel(ctx context.Context, tenantId int64, name string) (domain.Channel, error) {
	tc, err := s.tenant(ctx, tenantId)
	if err != nil {
		return domain.Channel{}, err
	}

	ch, ok := tc.get(name)
	if !ok {
		return domain.Channel{}, ErrChannelNotFound
	}
	return ch, nil
}

// ListChannels returns the tenant's channels ordered by name.
func (s *ChannelService) ListChannels(ctx context.Context, tenantId int64) ([]domain.Channel, error) {
	tc, err := s.tenant(ctx, tenantId)
	if err != nil {
		return nil, err
	}

	tc.mu.RLock()
	channels := make([]domain.Channel, 0, len(tc.byName))
	for _, ch := range tc.byName {
		channels = append(channels, ch)
	}
	tc.mu.RUnlock()

	sort.Slice(channels, func(i, j int) bool {
		return channels[i].Name < channels[j].Name
	})
	return channels, nil
}

// UpsertChannel creates the channel or updates it in place. On false nothing
// changed, neither in the store nor in the cache.
func (s *ChannelService) UpsertChannel(ctx context.Context, tenantId int64, name string, retentionHours int, minLevel domain.Level) bool {
	tc, err := s.tenant(ctx, tenantId)
	if err != nil {
		return false
	}

	tc.writeMu.Lock()
	defer tc.writeMu.Unlock()

	ch := domain.Channel{
		TenantId:       tenantId,
		Name:           name,
		RetentionHours: retentionHours,
		MinimumLevel:   minLevel,
	}

	id, err := s.channelRepo.UpsertChannel(ctx, &ch)
	if err != nil {
		log.WithFields(log.Fields{
			"tenant":  tenantId,
			"channel": name,
			"error":   err,
		}).Error("Failed to upsert channel")
		return false
	}
	ch.Id = id

	tc.mu.Lock()
	tc.byName[name] = ch
	tc.mu.Unlock()

	return true
}

// DeleteChannel removes an existing channel. Unknown channels are a no-op
// reported as false.
func (s *ChannelService) DeleteChannel(ctx context.Context, tenantId int64, name string) bool {
	tc, err := s.tenant(ctx, tenantId)
	if err != nil {
		return false
	}

	tc.writeMu.Lock()
	defer tc.writeMu.Unlock()

	ch, ok := tc.get(name)
	if !ok {
		return false
	}

	err = s.channelRepo.DeleteChannel(ctx, tenantId, ch.Id)
	if err != nil {
		// the row is already gone, so drop the stale cache entry but report
		// that this call deleted nothing
		if errors.Is(err, repoerrs.ErrNotFound) {
			s.evict(tc, name)
			return false
		}
		log.WithFields(log.Fields{
			"tenant":  tenantId,
			"channel": name,
			"error":   err,
		}).Error("Failed to delete channel")
		return false
	}

	s.evict(tc, name)
	return true
}

func (s *ChannelService) evict(tc *tenantChannels, name string) {
	tc.mu.Lock()
	delete(tc.byName, name)
	tc.mu.Unlock()
}
