package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/AdrianoSaraivaa/sgp/internal/model"
	"github.com/AdrianoSaraivaa/sgp/platform/db/pg"
)

const table = "rop_alert_states"

type repository struct {
	sb sq.StatementBuilderType
}

func NewRopRepository() *repository {
	return &repository{
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// LockState creates the state row on first use and returns it locked.
func (r *repository) LockState(ctx context.Context, q pg.Querier, partCode string) (*model.RopAlertState, error) {
	insert := r.sb.
		Insert(table).
		Columns("part_code", "in_alert").
		Values(partCode, false).
		Suffix("ON CONFLICT (part_code) DO NOTHING")

	sqlStr, args, err := insert.ToSql()
	if err != nil {
		return nil, err
	}
	if _, err := q.Exec(ctx, sqlStr, args...); err != nil {
		return nil, err
	}

	query := r.sb.
		Select("part_code", "in_alert", "last_sent_at").
		From(table).
		Where(sq.Eq{"part_code": partCode}).
		Suffix("FOR UPDATE")

	sqlStr, args, err = query.ToSql()
	if err != nil {
		return nil, err
	}

	var st model.RopAlertState
	if err := q.QueryRow(ctx, sqlStr, args...).Scan(&st.PartCode, &st.InAlert, &st.LastSentAt); err != nil {
		return nil, err
	}

	return &st, nil
}

func (r *repository) Save(ctx context.Context, q pg.Querier, st model.RopAlertState) error {
	query := r.sb.
		Update(table).
		SetMap(sq.Eq{
			"in_alert":     st.InAlert,
			"last_sent_at": st.LastSentAt,
		}).
		Where(sq.Eq{"part_code": st.PartCode})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = q.Exec(ctx, sqlStr, args...)
	return err
}
