package pgdb

import (
	"time"

	"github.com/Egor213/UniLog/internal/repo/repotypes"
	sq "github.com/Masterminds/squirrel"
)

func BuildEntryQueryFilters(filter repotypes.EntryFilter) sq.And {
	return sq.And{
		sq.Eq{"channel_id": filter.ChannelId},
		sq.GtOrEq{"level": int(filter.MinLevel)},
		sq.LtOrEq{"level": int(filter.MaxLevel)},
		sq.GtOrEq{"created_at": filter.From},
		sq.Lt{"created_at": filter.To},
	}
}

// BuildEntryQuery selects the entries matching filter, oldest first. Entries
// sharing a second keep insertion order through the id tiebreak.
func BuildEntryQuery(b sq.StatementBuilderType, filter repotypes.EntryFilter) sq.SelectBuilder {
	return b.
		Select("id", "channel_id", "level", "message", "created_at", "stacktrace").
		From(entriesTable).
		Where(BuildEntryQueryFilters(filter)).
		OrderBy("created_at ASC", "id ASC")
}

func BuildPurgeFilters(channelId int64, cutoff time.Time) sq.And {
	return sq.And{
		sq.Eq{"channel_id": channelId},
		sq.Lt{"created_at": cutoff},
	}
}

// Truncate cuts s to at most max runes.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func TruncatePtr(s *string, max int) *string {
	if s == nil {
		return nil
	}
	t := Truncate(*s, max)
	return &t
}
