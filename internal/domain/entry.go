package domain

import "time"

const (
	MaxMessageLength    = 2048
	MaxStacktraceLength = 2048

	MinTimestamp int64 = 0
	// 3000-01-01 00:00:00 UTC
	MaxTimestamp int64 = 32503680000
)

type LogEntry struct {
	Id         int64     `db:"id"`
	ChannelId  int64     `db:"channel_id"`
	Level      Level     `db:"level"`
	Message    string    `db:"message"`
	Timestamp  time.Time `db:"created_at"`
	Stacktrace *string   `db:"stacktrace"`
}

// EntryFilter bounds a read. Timestamps are unix seconds; both ranges are inclusive.
type EntryFilter struct {
	MinTS    int64
	MaxTS    int64
	MinLevel Level
	MaxLevel Level
}

func DefaultEntryFilter() EntryFilter {
	return EntryFilter{
		MinTS:    MinTimestamp,
		MaxTS:    MaxTimestamp,
		MinLevel: LevelWarning,
		MaxLevel: LevelError,
	}
}
