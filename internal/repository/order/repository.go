package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/db/pg"
)

const table = "work_orders"

var columns = []string{
	"id",
	"serial",
	"model_code",
	"status",
	"current_station",
	"created_at",
	"updated_at",
	"finished_at",
	"external_test_flag",
	"external_test_status",
	"external_test_last_at",
}

type repository struct {
	sb sq.StatementBuilderType
}

func NewOrderRepository() *repository {
	return &repository{
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, q pg.Querier, ord *model.WorkOrder) (int64, error) {
	query := r.sb.
		Insert(table).
		Columns("serial", "model_code", "status", "current_station").
		Values(ord.Serial, ord.ModelCode, ord.Status, ord.CurrentStation).
		Suffix("RETURNING id")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := q.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repository) OrderBySerial(ctx context.Context, q pg.Querier, serial string) (*model.WorkOrder, error) {
	return r.orderBy(ctx, q, sq.Eq{"serial": serial}, "")
}

// OrderBySerialForUpdate locks the order row until the surrounding
// transaction ends, serializing concurrent scans of the same unit.
func (r *repository) OrderBySerialForUpdate(ctx context.Context, q pg.Querier, serial string) (*model.WorkOrder, error) {
	return r.orderBy(ctx, q, sq.Eq{"serial": serial}, "FOR UPDATE")
}

func (r *repository) orderBy(ctx context.Context, q pg.Querier, where sq.Eq, suffix string) (*model.WorkOrder, error) {
	query := r.sb.
		Select(columns...).
		From(table).
		Where(where)
	if suffix != "" {
		query = query.Suffix(suffix)
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	ord, err := scanOrder(q.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrOrderNotFound
		}
		return nil, err
	}

	return ord, nil
}

// ListForBoard returns every open order plus the ones finished after doneSince.
func (r *repository) ListForBoard(ctx context.Context, q pg.Querier, doneSince time.Time) ([]model.WorkOrder, error) {
	query := r.sb.
		Select(columns...).
		From(table).
		Where(sq.Or{
			sq.Eq{"status": []model.OrderStatus{model.OrderStatusQueued, model.OrderStatusInProgress}},
			sq.And{
				sq.Eq{"status": model.OrderStatusDone},
				sq.GtOrEq{"finished_at": doneSince},
			},
		}).
		OrderBy("created_at", "id")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.WorkOrder
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *ord)
	}

	return out, rows.Err()
}

// Search pages through orders matching f, most recently updated first.
func (r *repository) Search(ctx context.Context, q pg.Querier, f model.OrderFilter) ([]model.WorkOrder, int64, error) {
	where := sq.And{}
	if f.Serial != "" {
		where = append(where, sq.ILike{"serial": "%" + f.Serial + "%"})
	}
	if f.ModelCode != "" {
		where = append(where, sq.ILike{"model_code": "%" + f.ModelCode + "%"})
	}
	if f.Status != "" {
		where = append(where, sq.Eq{"status": f.Status})
	}
	if f.From != nil {
		where = append(where, sq.GtOrEq{"updated_at": *f.From})
	}
	if f.To != nil {
		where = append(where, sq.LtOrEq{"updated_at": *f.To})
	}

	countSQL, countArgs, err := r.sb.Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return nil, 0, nil
	}

	sqlStr, args, err := r.sb.
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("updated_at DESC", "id DESC").
		Limit(uint64(f.PageSize)).
		Offset(f.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []model.WorkOrder
	for rows.Next() {
		ord, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *ord)
	}

	return out, total, rows.Err()
}

func (r *repository) Update(ctx context.Context, q pg.Querier, id int64, upd model.OrderUpdate) error {
	if id == 0 {
		return fmt.Errorf("%w: empty order id", model.ErrValidation)
	}
	if upd.Empty() {
		return nil
	}

	set := sq.Eq{"updated_at": sq.Expr("now()")}

	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.CurrentStation != nil {
		set["current_station"] = *upd.CurrentStation
	}
	if upd.ClearFinishedAt {
		set["finished_at"] = nil
	} else if upd.FinishedAt != nil {
		set["finished_at"] = *upd.FinishedAt
	}
	if upd.ExternalTestFlag != nil {
		set["external_test_flag"] = *upd.ExternalTestFlag
	}
	if upd.ExternalTestStatus != nil {
		set["external_test_status"] = *upd.ExternalTestStatus
	}
	if upd.ExternalTestLastAt != nil {
		set["external_test_last_at"] = *upd.ExternalTestLastAt
	}

	query := r.sb.
		Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	ct, err := q.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}

	return nil
}

func scanOrder(row pgx.Row) (*model.WorkOrder, error) {
	var ord model.WorkOrder
	err := row.Scan(
		&ord.ID,
		&ord.Serial,
		&ord.ModelCode,
		&ord.Status,
		&ord.CurrentStation,
		&ord.CreatedAt,
		&ord.UpdatedAt,
		&ord.FinishedAt,
		&ord.ExternalTestFlag,
		&ord.ExternalTestStatus,
		&ord.ExternalTestLastAt,
	)
	if err != nil {
		return nil, err
	}
	return &ord, nil
}
