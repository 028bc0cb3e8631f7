package pgdb

import (
	"context"

	errorsUtils "github.com/Egor213/UniLog/pkg/errors"
	"github.com/Egor213/UniLog/pkg/postgres"
	"github.com/jackc/pgx/v5"
)

const tenantsTable = "tenants"

type TenantRepo struct {
	*postgres.Postgres
}

func NewTenantRepo(pg *postgres.Postgres) *TenantRepo {
	return &TenantRepo{pg}
}

func (r *TenantRepo) ListTenantIds(ctx context.Context) ([]int64, error) {
	sql, args, err := r.Builder.
		Select("id").
		From(tenantsTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	rows, err := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	defer rows.Close()

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}
	return ids, nil
}

// AddTenant registers the tenant; registering it twice is not an error.
func (r *TenantRepo) AddTenant(ctx context.Context, tenantId int64) error {
	sql, args, err := r.Builder.
		Insert(tenantsTable).
		Columns("id").
		Values(tenantId).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if _, err = r.CtxGetter.DefaultTrOrDB(ctx, r.Pool).Exec(ctx, sql, args...); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}
