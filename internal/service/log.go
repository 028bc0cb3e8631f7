package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Egor213/UniLog/internal/broker"
	"github.com/Egor213/UniLog/internal/domain"
	"github.com/Egor213/UniLog/internal/metrics"
	"github.com/Egor213/UniLog/internal/repo"
	"github.com/Egor213/UniLog/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/UniLog/pkg/errors"
	"github.com/Egor213/UniLog/pkg/stacktrace"
	log "github.com/sirupsen/logrus"
)

// DefaultSkipFrames leaves out InsertEntry itself, so the caller of
// InsertEntry is the one named in the entry.
const DefaultSkipFrames = 1

const (
	resultOk             = "ok"
	resultFailed         = "failed"
	resultFiltered       = "filtered"
	resultUnknownChannel = "unknown_channel"
)

type entryOptions struct {
	fullTrace  bool
	skipFrames int
	traceArgs  []any
	caller     *string
}

type EntryOption func(*entryOptions)

// WithFullTrace stores the whole call stack with the entry instead of
// prefixing the message with the caller.
func WithFullTrace() EntryOption {
	return func(o *entryOptions) {
		o.fullTrace = true
	}
}

func WithSkipFrames(n int) EntryOption {
	return func(o *entryOptions) {
		o.skipFrames = n
	}
}

// WithTraceArgs sets the arguments rendered on the innermost frame of a full trace.
func WithTraceArgs(args ...any) EntryOption {
	return func(o *entryOptions) {
		o.traceArgs = args
	}
}

// WithCaller replaces the resolved caller with identity. An empty identity
// stores the message without a prefix. Full traces are still captured.
func WithCaller(identity string) EntryOption {
	return func(o *entryOptions) {
		o.caller = &identity
	}
}

type channelOptions struct {
	retentionHours int
	minLevel       domain.Level
}

type ChannelOption func(*channelOptions)

func WithRetentionHours(hours int) ChannelOption {
	return func(o *channelOptions) {
		o.retentionHours = hours
	}
}

func WithMinimumLevel(level domain.Level) ChannelOption {
	return func(o *channelOptions) {
		o.minLevel = level
	}
}

type LogService struct {
	channels  Channel
	entryRepo repo.Entry
	counters  *metrics.Counters
	producer  broker.Producer
	traceRoot string
}

func NewLogService(ch Channel, er repo.Entry, cnt *metrics.Counters, p broker.Producer, traceRoot string) *LogService {
	if p == nil {
		p = broker.NopProducer{}
	}
	return &LogService{
		channels:  ch,
		entryRepo: er,
		counters:  cnt,
		producer:  p,
		traceRoot: traceRoot,
	}
}

// InsertEntry writes message to the tenant's channel. It returns an error
// only for invalid arguments; an unknown channel, a level under the channel
// threshold or a store failure all come back as false.
func (s *LogService) InsertEntry(ctx context.Context, tenantId int64, channel string, level domain.Level, message string, opts ...EntryOption) (bool, error) {
	o := entryOptions{skipFrames: DefaultSkipFrames}
	for _, opt := range opts {
		opt(&o)
	}

	if !domain.IsValidValue(level) {
		return false, fmt.Errorf("%w: invalid log level %d", ErrInvalidArgument, level)
	}
	if o.skipFrames < 0 {
		return false, fmt.Errorf("%w: skip frames cannot be less than zero", ErrInvalidArgument)
	}

	var trace *string
	switch {
	case o.fullTrace:
		rendered := stacktrace.Render(stacktrace.Capture(o.skipFrames), s.traceRoot, o.traceArgs)
		trace = &rendered
	case o.caller != nil:
		if *o.caller != "" {
			message = "(" + *o.caller + ") " + message
		}
	default:
		if caller := stacktrace.Caller(stacktrace.Capture(o.skipFrames)); caller != "" {
			message = "(" + caller + ") " + message
		}
	}

	ch, err := s.channels.GetChannel(ctx, tenantId, channel)
	if err != nil {
		s.counters.EntriesWritten.Inc(level.String(), resultUnknownChannel)
		return false, nil
	}

	if !ch.Accepts(level) {
		s.counters.EntriesWritten.Inc(level.String(), resultFiltered)
		return false, nil
	}

	_, err = s.entryRepo.AppendEntry(ctx, &domain.LogEntry{
		ChannelId:  ch.Id,
		Level:      level,
		Message:    message,
		Stacktrace: trace,
	})
	if err != nil {
		s.counters.EntriesWritten.Inc(level.String(), resultFailed)
		log.WithFields(log.Fields{
			"tenant":  tenantId,
			"channel": channel,
			"level":   level.String(),
			"error":   err,
		}).Error("Failed to append entry")
		return false, nil
	}

	s.counters.EntriesWritten.Inc(level.String(), resultOk)
	return true, nil
}

// CanLog reports whether an entry of level would be stored. Callers with
// expensive messages check it before building them.
func (s *LogService) CanLog(ctx context.Context, tenantId int64, channel string, level domain.Level) bool {
	if !domain.IsValidValue(level) {
		return false
	}
	ch, err := s.channels.GetChannel(ctx, tenantId, channel)
	if err != nil {
		return false
	}
	return ch.Accepts(level)
}

// GetEntries returns matching entries oldest first. An unknown channel is
// ErrChannelNotFound; a store failure is ErrCannotGetEntries, never an empty slice.
func (s *LogService) GetEntries(ctx context.Context, tenantId int64, channel string, filter domain.EntryFilter) ([]domain.LogEntry, error) {
	if filter.MinTS < 0 || filter.MaxTS < filter.MinTS {
		return nil, fmt.Errorf("%w: invalid timestamp range [%d, %d]", ErrInvalidArgument, filter.MinTS, filter.MaxTS)
	}
	if !domain.IsValidValue(filter.MinLevel) || !domain.IsValidValue(filter.MaxLevel) {
		return nil, fmt.Errorf("%w: invalid log level range [%d, %d]", ErrInvalidArgument, filter.MinLevel, filter.MaxLevel)
	}

	ch, err := s.channels.GetChannel(ctx, tenantId, channel)
	if err != nil {
		if errors.Is(err, ErrChannelNotFound) {
			return nil, err
		}
		return nil, errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", ErrCannotGetEntries, err))
	}

	// nothing can be stored after MaxTimestamp
	if filter.MinTS > domain.MaxTimestamp {
		return []domain.LogEntry{}, nil
	}

	entries, err := s.entryRepo.GetEntries(ctx, repotypes.NewEntryFilter(ch.Id, filter))
	if err != nil {
		log.WithFields(log.Fields{
			"tenant":  tenantId,
			"channel": channel,
			"error":   err,
		}).Error("Failed to get entries")
		return nil, errorsUtils.WrapPathErr(ErrCannotGetEntries)
	}
	if entries == nil {
		entries = []domain.LogEntry{}
	}
	return entries, nil
}

func (s *LogService) GetChannel(ctx context.Context, tenantId int64, channel string) (domain.Channel, bool) {
	ch, err := s.channels.GetChannel(ctx, tenantId, channel)
	if err != nil {
		return domain.Channel{}, false
	}
	return ch, true
}

func (s *LogService) ListChannels(ctx context.Context, tenantId int64) ([]domain.Channel, error) {
	return s.channels.ListChannels(ctx, tenantId)
}

// UpsertChannel registers the channel, by default with a week of retention
// and a Warning threshold.
func (s *LogService) UpsertChannel(ctx context.Context, tenantId int64, name string, opts ...ChannelOption) (bool, error) {
	o := channelOptions{
		retentionHours: domain.DefaultRetentionHours,
		minLevel:       domain.DefaultMinimumLevel,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if !domain.IsValidValue(o.minLevel) {
		return false, fmt.Errorf("%w: invalid log level %d", ErrInvalidArgument, o.minLevel)
	}
	if name == "" || len([]rune(name)) > domain.MaxChannelNameLength {
		return false, fmt.Errorf("%w: channel name must be 1 to %d characters", ErrInvalidArgument, domain.MaxChannelNameLength)
	}
	if o.retentionHours < 0 || o.retentionHours > domain.MaxRetentionHours {
		return false, fmt.Errorf("%w: retention must be between 0 and %d hours", ErrInvalidArgument, domain.MaxRetentionHours)
	}

	if !s.channels.UpsertChannel(ctx, tenantId, name, o.retentionHours, o.minLevel) {
		return false, nil
	}

	ev := broker.Event{
		Type:           broker.EventChannelUpserted,
		TenantId:       tenantId,
		Channel:        name,
		RetentionHours: o.retentionHours,
		MinimumLevel:   o.minLevel.String(),
		At:             time.Now().UTC(),
	}
	if ch, err := s.channels.GetChannel(ctx, tenantId, name); err == nil {
		ev.ChannelId = ch.Id
	}
	s.publish(ctx, ev)

	return true, nil
}

func (s *LogService) DeleteChannel(ctx context.Context, tenantId int64, name string) bool {
	if !s.channels.DeleteChannel(ctx, tenantId, name) {
		return false
	}

	s.publish(ctx, broker.Event{
		Type:     broker.EventChannelDeleted,
		TenantId: tenantId,
		Channel:  name,
		At:       time.Now().UTC(),
	})
	return true
}

func (s *LogService) publish(ctx context.Context, ev broker.Event) {
	if err := broker.Publish(ctx, s.producer, ev); err != nil {
		log.WithFields(log.Fields{
			"event": ev.Type,
			"error": err,
		}).Warn("Failed to publish event")
	}
}
