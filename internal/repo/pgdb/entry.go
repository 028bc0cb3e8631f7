package pgdb

import (
	"context"
	"time"

	"github.com/Egor213/UniLog/internal/domain"
	"github.com/Egor213/UniLog/internal/repo/repoerrs"
	"github.com/Egor213/UniLog/internal/repo/repotypes"
	errorsUtils "github.com/Egor213/UniLog/pkg/errors"
	"github.com/Egor213/UniLog/pkg/postgres"
	"github.com/jackc/pgx/v5"
)

const entriesTable = "entries"

type EntryRepo struct {
	*postgres.Postgres
}

func NewEntryRepo(pg *postgres.Postgres) *EntryRepo {
	return &EntryRepo{pg}
}

// AppendEntry stores one entry. created_at is left to the column default so
// the timestamp always comes from the store clock.
func (r *EntryRepo) AppendEntry(ctx context.Context, entry *domain.LogEntry) (int64, error) {
	sql, args, err := r.Builder.
		Insert(entriesTable).
		Columns("channel_id", "level", "message", "stacktrace").
		Values(
			entry.ChannelId,
			int(entry.Level),
			Truncate(entry.Message, domain.MaxMessageLength),
			TruncatePtr(entry.Stacktrace, domain.MaxStacktraceLength),
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	var id int64
	err = r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if errorsUtils.IsForeignKeyViolation(err) {
			return 0, errorsUtils.WrapPathErr(repoerrs.ErrNotFound)
		}
		return 0, errorsUtils.WrapPathErr(err)
	}
	return id, nil
}

func (r *EntryRepo) GetEntries(ctx context.Context, filter repotypes.EntryFilter) ([]domain.LogEntry, error) {
	sql, args, err := BuildEntryQuery(r.Builder, filter).ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.LogEntry])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return entries, nil
}

// DeleteEntriesOlderThan removes entries with created_at strictly before cutoff
// and reports how many rows went away.
func (r *EntryRepo) DeleteEntriesOlderThan(ctx context.Context, channelId int64, cutoff time.Time) (int64, error) {
	sql, args, err := r.Builder.
		Delete(entriesTable).
		Where(BuildPurgeFilters(channelId, cutoff)).
		ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	tag, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}
	return tag.RowsAffected(), nil
}
