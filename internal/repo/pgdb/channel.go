package pgdb

import (
	"context"
	"fmt"

	"github.com/Egor213/UniLog/internal/domain"
	"github.com/Egor213/UniLog/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/UniLog/pkg/errors"
	"github.com/Egor213/UniLog/pkg/postgres"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const channelsTable = "channels"

// retention_hours is nullable; a channel without one keeps the default window.
var retentionColumn = fmt.Sprintf("COALESCE(retention_hours, %d) AS retention_hours", domain.DefaultRetentionHours)

type ChannelRepo struct {
	*postgres.Postgres
}

func NewChannelRepo(pg *postgres.Postgres) *ChannelRepo {
	return &ChannelRepo{pg}
}

func (r *ChannelRepo) GetChannels(ctx context.Context, tenantId int64) ([]domain.Channel, error) {
	sql, args, err := r.Builder.
		Select("id", "tenant_id", "name", retentionColumn, "minimum_level").
		From(channelsTable).
		Where(sq.Eq{"tenant_id": tenantId}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	channels, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Channel])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return channels, nil
}

// UpsertChannel inserts the channel or, when (tenant_id, name) already exists,
// updates its retention and level in place. The id is returned either way.
func (r *ChannelRepo) UpsertChannel(ctx context.Context, ch *domain.Channel) (int64, error) {
	sql, args, err := r.Builder.
		Insert(channelsTable).
		Columns("tenant_id", "name", "retention_hours", "minimum_level").
		Values(ch.TenantId, ch.Name, ch.RetentionHours, int(ch.MinimumLevel)).
		Suffix("ON CONFLICT (tenant_id, name) DO UPDATE SET " +
			"retention_hours = EXCLUDED.retention_hours, " +
			"minimum_level = EXCLUDED.minimum_level " +
			"RETURNING id").
		ToSql()
	if err != nil {
		return 0, errorsUtils.WrapPathErr(err)
	}

	var id int64
	err = r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if errorsUtils.IsDataViolation(err) || errorsUtils.IsNotNullViolation(err) {
			return 0, errorsUtils.WrapPathErr(fmt.Errorf("%w: %w", repoerrs.ErrInvalidValue, err))
		}
		return 0, errorsUtils.WrapPathErr(err)
	}
	return id, nil
}

// DeleteChannel removes the channel row; its entries go with it (ON DELETE CASCADE).
func (r *ChannelRepo) DeleteChannel(ctx context.Context, tenantId, channelId int64) error {
	sql, args, err := r.Builder.
		Delete(channelsTable).
		Where(sq.Eq{"id": channelId, "tenant_id": tenantId}).
		ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	tag, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	if tag.RowsAffected() == 0 {
		return errorsUtils.WrapPathErr(repoerrs.ErrNotFound)
	}
	return nil
}
