package httpv1

import (
	"github.com/Egor213/UniLog/internal/domain"
	"github.com/Egor213/UniLog/internal/service"
)

type upsertChannelRequest struct {
	RetentionHours *int   `json:"retention_hours" validate:"omitempty,min=0,max=32767"`
	MinimumLevel   string `json:"minimum_level" validate:"omitempty,loglevel"`
}

type insertEntryRequest struct {
	Level     string `json:"level" validate:"required,loglevel"`
	Message   string `json:"message"`
	Caller    string `json:"caller" validate:"max=256"`
	FullTrace bool   `json:"full_trace"`
}

type channelResponse struct {
	Id             int64  `json:"id"`
	Name           string `json:"name"`
	RetentionHours int    `json:"retention_hours"`
	MinimumLevel   string `json:"minimum_level"`
}

type entryResponse struct {
	Id         int64   `json:"id"`
	Level      string  `json:"level"`
	Message    string  `json:"message"`
	Timestamp  int64   `json:"timestamp"`
	Stacktrace *string `json:"stacktrace,omitempty"`
}

type sweepResponse struct {
	StartedAt int64 `json:"started_at"`
	Tenants   int   `json:"tenants"`
	Channels  int   `json:"channels"`
	Deleted   int64 `json:"deleted"`
	Failures  int   `json:"failures"`
}

func (r upsertChannelRequest) options() []service.ChannelOption {
	var opts []service.ChannelOption
	if r.RetentionHours != nil {
		opts = append(opts, service.WithRetentionHours(*r.RetentionHours))
	}
	if level, ok := domain.ParseLevel(r.MinimumLevel); ok {
		opts = append(opts, service.WithMinimumLevel(level))
	}
	return opts
}

func ToChannelResponse(ch domain.Channel) channelResponse {
	return channelResponse{
		Id:             ch.Id,
		Name:           ch.Name,
		RetentionHours: ch.RetentionHours,
		MinimumLevel:   ch.MinimumLevel.String(),
	}
}

func ToChannelResponses(channels []domain.Channel) []channelResponse {
	out := make([]channelResponse, 0, len(channels))
	for _, ch := range channels {
		out = append(out, ToChannelResponse(ch))
	}
	return out
}

func ToEntryResponses(entries []domain.LogEntry) []entryResponse {
	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryResponse{
			Id:         e.Id,
			Level:      e.Level.String(),
			Message:    e.Message,
			Timestamp:  e.Timestamp.Unix(),
			Stacktrace: e.Stacktrace,
		})
	}
	return out
}

func ToSweepResponse(r service.SweepReport) sweepResponse {
	return sweepResponse{
		StartedAt: r.StartedAt.Unix(),
		Tenants:   r.Tenants,
		Channels:  r.Channels,
		Deleted:   r.Deleted,
		Failures:  r.Failures,
	}
}
