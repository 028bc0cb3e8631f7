package repotypes

import (
	"time"

	"github.com/Egor213/UniLog/internal/domain"
)

// EntryFilter selects entries of one channel with From <= created_at < To
// and MinLevel <= level <= MaxLevel.
type EntryFilter struct {
	ChannelId int64
	From      time.Time
	To        time.Time
	MinLevel  domain.Level
	MaxLevel  domain.Level
}

// NewEntryFilter converts inclusive unix-second bounds into a half-open time
// range, so every entry written during the MaxTS second is still included.
// Both bounds are clamped to MaxTimestamp+1; past that a time no longer fits
// the store's timestamp encoding. A MinTS beyond MaxTimestamp yields an
// empty range.
func NewEntryFilter(channelId int64, f domain.EntryFilter) EntryFilter {
	minTS := min(f.MinTS, domain.MaxTimestamp+1)
	maxTS := min(f.MaxTS, domain.MaxTimestamp)
	return EntryFilter{
		ChannelId: channelId,
		From:      time.Unix(minTS, 0).UTC(),
		To:        time.Unix(maxTS+1, 0).UTC(),
		MinLevel:  f.MinLevel,
		MaxLevel:  f.MaxLevel,
	}
}
