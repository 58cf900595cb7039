package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
)

type actionRepository struct {
	db *sql.DB
}

func (r *actionRepository) Create(ctx context.Context, action *model.Action) (*model.Action, error) {
	var milestoneID sql.NullInt64
	if action.MilestoneID != nil {
		milestoneID = sql.NullInt64{Int64: *action.MilestoneID, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO actions (project_id, milestone_id, date, minutes, comment)
		 VALUES (?, ?, ?, ?, ?)`,
		action.ProjectID, milestoneID, encodeDay(action.Date), action.Minutes, action.Comment,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert action", goerr.V("projectID", action.ProjectID))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get inserted action ID")
	}

	created := *action
	created.ID = id
	day, err := decodeDay(encodeDay(action.Date))
	if err != nil {
		return nil, err
	}
	created.Date = day
	return &created, nil
}

func (r *actionRepository) ListByDate(ctx context.Context, day time.Time) ([]*model.ActionDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT a.id, a.project_id, a.milestone_id, a.date, a.minutes, a.comment,
		        p.name, COALESCE(m.name, '')
		 FROM actions a
		 JOIN projects p ON p.id = a.project_id
		 LEFT JOIN milestones m ON m.id = a.milestone_id
		 WHERE a.date = ?
		 ORDER BY a.id DESC`,
		encodeDay(day),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query actions by date")
	}
	defer rows.Close()

	out := make([]*model.ActionDetail, 0)
	for rows.Next() {
		var (
			d           model.ActionDetail
			milestoneID sql.NullInt64
			date        string
		)
		if err := rows.Scan(&d.ID, &d.ProjectID, &milestoneID, &date,
			&d.Minutes, &d.Comment, &d.ProjectName, &d.MilestoneName); err != nil {
			return nil, goerr.Wrap(err, "failed to scan action row")
		}

		if milestoneID.Valid {
			d.MilestoneID = &milestoneID.Int64
		}
		actionDay, err := decodeDay(date)
		if err != nil {
			return nil, err
		}
		d.Date = actionDay
		out = append(out, &d)
	}
	return out, rows.Err()
}

func (r *actionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM actions WHERE id = ?`, id)
	if err != nil {
		return goerr.Wrap(err, "failed to delete action", goerr.V("id", id))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return goerr.Wrap(ErrNotFound, "action not found", goerr.V("id", id))
	}
	return nil
}

func (r *actionRepository) TotalMinutes(ctx context.Context, start, end time.Time) (int, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(minutes), 0) FROM actions WHERE date >= ? AND date <= ?`,
		encodeDay(start), encodeDay(end),
	)

	var total int
	if err := row.Scan(&total); err != nil {
		return 0, goerr.Wrap(err, "failed to sum minutes")
	}
	return total, nil
}

func (r *actionRepository) MinutesByDate(ctx context.Context, start, end time.Time) (map[time.Time]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT date, SUM(minutes) FROM actions
		 WHERE date >= ? AND date <= ?
		 GROUP BY date`,
		encodeDay(start), encodeDay(end),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query minutes by date")
	}
	defer rows.Close()

	out := make(map[time.Time]int)
	for rows.Next() {
		var (
			date    string
			minutes int
		)
		if err := rows.Scan(&date, &minutes); err != nil {
			return nil, goerr.Wrap(err, "failed to scan daily sum row")
		}

		day, err := decodeDay(date)
		if err != nil {
			return nil, err
		}
		out[day] = minutes
	}
	return out, rows.Err()
}

func (r *actionRepository) MinutesByProject(ctx context.Context, start, end time.Time, limit int) ([]model.ProjectMinutes, error) {
	query := `
SELECT p.id, p.name, SUM(a.minutes) AS total
FROM actions a
JOIN projects p ON p.id = a.project_id
WHERE a.date >= ? AND a.date <= ?
GROUP BY p.id, p.name
ORDER BY total DESC, p.id ASC`

	rows, err := r.db.QueryContext(ctx, limitClause(query, limit),
		encodeDay(start), encodeDay(end))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query minutes by project")
	}
	defer rows.Close()

	out := make([]model.ProjectMinutes, 0)
	for rows.Next() {
		var pm model.ProjectMinutes
		if err := rows.Scan(&pm.ProjectID, &pm.Name, &pm.Minutes); err != nil {
			return nil, goerr.Wrap(err, "failed to scan project sum row")
		}
		out = append(out, pm)
	}
	return out, rows.Err()
}

func (r *actionRepository) MinutesByCategory(ctx context.Context, start, end time.Time) ([]model.CategoryMinutes, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT c.id, COALESCE(c.name, ?), SUM(a.minutes) AS total
		 FROM actions a
		 JOIN projects p ON p.id = a.project_id
		 LEFT JOIN categories c ON c.id = p.category_id
		 WHERE a.date >= ? AND a.date <= ?
		 GROUP BY c.id, c.name
		 ORDER BY total DESC, c.id ASC`,
		model.UncategorizedLabel, encodeDay(start), encodeDay(end),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query minutes by category")
	}
	defer rows.Close()

	out := make([]model.CategoryMinutes, 0)
	for rows.Next() {
		var (
			cm         model.CategoryMinutes
			categoryID sql.NullInt64
		)
		if err := rows.Scan(&categoryID, &cm.Label, &cm.Minutes); err != nil {
			return nil, goerr.Wrap(err, "failed to scan category sum row")
		}
		if categoryID.Valid {
			cm.CategoryID = &categoryID.Int64
		}
		out = append(out, cm)
	}
	return out, rows.Err()
}
