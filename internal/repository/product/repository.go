package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/db/pg"
)

type repository struct {
	sb sq.StatementBuilderType
}

func NewProductRepository() *repository {
	return &repository{
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const table = "product_models"

var columns = []string{"code", "name", "assembly_code", "serial_code"}

func (r *repository) ModelByCode(ctx context.Context, q pg.Querier, code string) (*model.ProductModel, error) {
	query := r.sb.
		Select(columns...).
		From(table).
		Where(sq.Eq{"code": code})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var pm model.ProductModel
	err = q.QueryRow(ctx, sqlStr, args...).Scan(
		&pm.Code,
		&pm.Name,
		&pm.AssemblyCode,
		&pm.SerialCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrModelNotFound
		}
		return nil, err
	}

	return &pm, nil
}

func (r *repository) List(ctx context.Context, q pg.Querier) ([]model.ProductModel, error) {
	sqlStr, args, err := r.sb.
		Select(columns...).
		From(table).
		OrderBy("code").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.ProductModel, error) {
		var pm model.ProductModel
		err := row.Scan(&pm.Code, &pm.Name, &pm.AssemblyCode, &pm.SerialCode)
		return pm, err
	})
}
