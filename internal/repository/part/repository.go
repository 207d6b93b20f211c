package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/db/pg"
)

const table = "parts"

var columns = []string{
	"code",
	"kind",
	"description",
	"current_stock",
	"minimum_stock",
	"reorder_point",
	"maximum_stock",
	"cost",
}

type repository struct {
	sb sq.StatementBuilderType
}

func NewPartRepository() *repository {
	return &repository{
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// LockPart reads one part holding its row lock.
func (r *repository) LockPart(ctx context.Context, q pg.Querier, code string) (*model.Part, error) {
	parts, err := r.LockParts(ctx, q, []string{code})
	if err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		return nil, model.ErrPartNotFound
	}
	return &parts[0], nil
}

// LockParts locks rows in code order so concurrent reservations over
// overlapping BOMs cannot deadlock. Missing codes are simply absent.
func (r *repository) LockParts(ctx context.Context, q pg.Querier, codes []string) ([]model.Part, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	return r.list(ctx, q, r.sb.
		Select(columns...).
		From(table).
		Where(sq.Eq{"code": codes}).
		OrderBy("code").
		Suffix("FOR UPDATE"))
}

// PartsByCodes reads parts without locking them. Missing codes are absent.
func (r *repository) PartsByCodes(ctx context.Context, q pg.Querier, codes []string) ([]model.Part, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	return r.list(ctx, q, r.sb.
		Select(columns...).
		From(table).
		Where(sq.Eq{"code": codes}).
		OrderBy("code"))
}

func (r *repository) ListByKind(ctx context.Context, q pg.Querier, kind model.PartKind) ([]model.Part, error) {
	return r.list(ctx, q, r.sb.
		Select(columns...).
		From(table).
		Where(sq.Eq{"kind": kind}).
		OrderBy("code"))
}

func (r *repository) BOM(ctx context.Context, q pg.Querier, assemblyCode string) ([]model.BomEntry, error) {
	query := r.sb.
		Select("assembly_code", "component_code", "quantity_per_unit").
		From("bom_entries").
		Where(sq.Eq{"assembly_code": assemblyCode}).
		OrderBy("component_code")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.BomEntry, error) {
		var e model.BomEntry
		err := row.Scan(&e.AssemblyCode, &e.ComponentCode, &e.QuantityPerUnit)
		return e, err
	})
}

func (r *repository) SetStock(ctx context.Context, q pg.Querier, code string, stock int64) error {
	query := r.sb.
		Update(table).
		Set("current_stock", stock).
		Where(sq.Eq{"code": code})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	ct, err := q.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return model.ErrPartNotFound
	}

	return nil
}

func (r *repository) list(ctx context.Context, q pg.Querier, query sq.SelectBuilder) ([]model.Part, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, scanPart)
}

func scanPart(row pgx.CollectableRow) (model.Part, error) {
	var p model.Part
	err := row.Scan(
		&p.Code,
		&p.Kind,
		&p.Description,
		&p.CurrentStock,
		&p.MinimumStock,
		&p.ReorderPoint,
		&p.MaximumStock,
		&p.Cost,
	)
	return p, err
}
