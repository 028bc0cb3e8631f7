package broker

import (
	"context"
	"encoding/json"
	"time"

	errorsUtils "github.com/Egor213/UniLog/pkg/errors"
)

type Producer interface {
	SendMessage(ctx context.Context, value []byte) error
}

const (
	EventChannelUpserted = "channel.upserted"
	EventChannelDeleted  = "channel.deleted"
	EventSweepCompleted  = "sweep.completed"
)

// Event describes a change to the channel registry or the outcome of a sweep.
// Log entries themselves are never published.
type Event struct {
	Type           string    `json:"type"`
	TenantId       int64     `json:"tenant_id,omitempty"`
	Channel        string    `json:"channel,omitempty"`
	ChannelId      int64     `json:"channel_id,omitempty"`
	RetentionHours int       `json:"retention_hours,omitempty"`
	MinimumLevel   string    `json:"minimum_level,omitempty"`
	Deleted        int64     `json:"deleted,omitempty"`
	Failures       int       `json:"failures,omitempty"`
	At             time.Time `json:"at"`
}

func Publish(ctx context.Context, p Producer, e Event) error {
	value, err := json.Marshal(e)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return p.SendMessage(ctx, value)
}

type NopProducer struct{}

func (NopProducer) SendMessage(context.Context, []byte) error {
	return nil
}
