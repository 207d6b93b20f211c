package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/db/pg"
)

const table = "station_visits"

var columns = []string{
	"id",
	"order_id",
	"station_id",
	"started_at",
	"finished_at",
	"operator",
	"result",
	"rework_flag",
	"workstation",
	"notes",
}

type repository struct {
	sb sq.StatementBuilderType
}

func NewVisitRepository() *repository {
	return &repository{
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) Create(ctx context.Context, q pg.Querier, v *model.StationVisit) (int64, error) {
	query := r.sb.
		Insert(table).
		Columns("order_id", "station_id", "started_at", "operator").
		Values(v.OrderID, v.StationID, v.StartedAt, v.Operator).
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

// ListOpen normally returns at most one visit; more means the invariant
// needs repair.
func (r *repository) ListOpen(ctx context.Context, q pg.Querier, orderID int64) ([]model.StationVisit, error) {
	return r.list(ctx, q, r.sb.
		Select(columns...).
		From(table).
		Where(sq.Eq{"order_id": orderID, "finished_at": nil}).
		OrderBy("started_at DESC", "id DESC"))
}

func (r *repository) ListByOrder(ctx context.Context, q pg.Querier, orderID int64) ([]model.StationVisit, error) {
	return r.list(ctx, q, r.sb.
		Select(columns...).
		From(table).
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("started_at", "id"))
}

func (r *repository) ListByOrders(ctx context.Context, q pg.Querier, orderIDs []int64) ([]model.StationVisit, error) {
	if len(orderIDs) == 0 {
		return nil, nil
	}
	return r.list(ctx, q, r.sb.
		Select(columns...).
		From(table).
		Where(sq.Eq{"order_id": orderIDs}).
		OrderBy("order_id", "started_at", "id"))
}

// LastClosed returns the most recently finished visit of the order,
// optionally restricted to one station.
func (r *repository) LastClosed(ctx context.Context, q pg.Querier, orderID int64, station string) (*model.StationVisit, error) {
	where := sq.And{
		sq.Eq{"order_id": orderID},
		sq.NotEq{"finished_at": nil},
	}
	if station != "" {
		where = append(where, sq.Eq{"station_id": station})
	}

	visits, err := r.list(ctx, q, r.sb.
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("finished_at DESC", "id DESC").
		Limit(1))
	if err != nil {
		return nil, err
	}
	if len(visits) == 0 {
		return nil, model.ErrVisitNotFound
	}

	return &visits[0], nil
}

func (r *repository) FinishedStations(ctx context.Context, q pg.Querier, orderID int64) (map[string]bool, error) {
	query := r.sb.
		Select("DISTINCT station_id").
		From(table).
		Where(sq.Eq{"order_id": orderID}).
		Where(sq.NotEq{"finished_at": nil})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	stations, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}

	out := make(map[string]bool, len(stations))
	for _, st := range stations {
		out[st] = true
	}
	return out, nil
}

func (r *repository) Close(ctx context.Context, q pg.Querier, id int64, c model.VisitClose) error {
	set := sq.Eq{
		"finished_at": c.FinishedAt,
		"rework_flag": c.ReworkFlag,
	}
	if c.Result != model.ResultNone {
		set["result"] = c.Result
	}
	if c.Workstation != "" {
		set["workstation"] = c.Workstation
	}
	if c.Notes != "" {
		set["notes"] = c.Notes
	}

	return r.exec(ctx, q, r.sb.
		Update(table).
		SetMap(set).
		Where(sq.Eq{"id": id}))
}

// CloseAllOpen closes every open visit of the order except keepID and
// returns how many were closed.
func (r *repository) CloseAllOpen(ctx context.Context, q pg.Querier, orderID, keepID int64, at time.Time) (int64, error) {
	query := r.sb.
		Update(table).
		Set("finished_at", at).
		Where(sq.Eq{"order_id": orderID, "finished_at": nil}).
		Where(sq.NotEq{"id": keepID})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	ct, err := q.Exec(ctx, sqlStr, args...)
	if err != nil {
		return 0, err
	}

	return ct.RowsAffected(), nil
}

func (r *repository) SetOperator(ctx context.Context, q pg.Querier, id int64, operator string) error {
	return r.exec(ctx, q, r.sb.
		Update(table).
		Set("operator", operator).
		Where(sq.Eq{"id": id}))
}

// Reopen clears the close stamp together with the verdict it carried.
func (r *repository) Reopen(ctx context.Context, q pg.Querier, id int64) error {
	return r.exec(ctx, q, r.sb.
		Update(table).
		SetMap(sq.Eq{
			"finished_at": nil,
			"result":      model.ResultNone,
			"rework_flag": false,
		}).
		Where(sq.Eq{"id": id}))
}

func (r *repository) Delete(ctx context.Context, q pg.Querier, id int64) error {
	return r.exec(ctx, q, r.sb.
		Delete(table).
		Where(sq.Eq{"id": id}))
}

func (r *repository) exec(ctx context.Context, q pg.Querier, query sq.Sqlizer) error {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	ct, err := q.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrVisitNotFound
	}

	return nil
}

func (r *repository) list(ctx context.Context, q pg.Querier, query sq.SelectBuilder) ([]model.StationVisit, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.StationVisit
	for rows.Next() {
		var v model.StationVisit
		if err := rows.Scan(
			&v.ID,
			&v.OrderID,
			&v.StationID,
			&v.StartedAt,
			&v.FinishedAt,
			&v.Operator,
			&v.Result,
			&v.ReworkFlag,
			&v.Workstation,
			&v.Notes,
		); err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, rows.Err()
}
