package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/db/pg"
)

type repository struct {
	sb sq.StatementBuilderType
}

// NewRouteRepository reads station_route_configs. The table is owned by the
// configuration side; nothing here writes to it.
func NewRouteRepository() *repository {
	return &repository{
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repository) ConfigsForModel(ctx context.Context, q pg.Querier, modelCode string) ([]model.StationRouteConfig, error) {
	query := r.sb.
		Select(
			"model_code",
			"station_id",
			"enabled",
			"mandatory",
			"expected_seconds",
			"min_seconds",
			"max_seconds",
		).
		From("station_route_configs").
		Where(sq.Eq{"model_code": modelCode})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.StationRouteConfig
	for rows.Next() {
		var (
			cfg                         model.StationRouteConfig
			expectedSec, minSec, maxSec int32
		)
		if err := rows.Scan(
			&cfg.ModelCode,
			&cfg.StationID,
			&cfg.Enabled,
			&cfg.Mandatory,
			&expectedSec,
			&minSec,
			&maxSec,
		); err != nil {
			return nil, err
		}
		cfg.Expected = time.Duration(expectedSec) * time.Second
		cfg.Min = time.Duration(minSec) * time.Second
		cfg.Max = time.Duration(maxSec) * time.Second
		out = append(out, cfg)
	}

	return out, rows.Err()
}
