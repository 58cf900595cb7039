package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/types"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/dates"
)

// riskPercentThreshold is the completion cutoff for the per-project risk
// count. Distinct from the single-milestone health classification rule.
const riskPercentThreshold = 60

type milestoneRepository struct {
	db *sql.DB
}

func scanMilestone(scan func(dest ...any) error) (*model.Milestone, error) {
	var (
		m       model.Milestone
		endDate string
		status  string
	)
	if err := scan(&m.ID, &m.ProjectID, &m.Name, &m.Note, &endDate,
		&m.PercentComplete, &status); err != nil {
		return nil, err
	}

	day, err := decodeDay(endDate)
	if err != nil {
		return nil, err
	}
	m.EndDate = day
	m.Status = types.Status(status)
	return &m, nil
}

func (r *milestoneRepository) Create(ctx context.Context, milestone *model.Milestone) (*model.Milestone, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO milestones (project_id, name, note, end_date, percent_complete, status)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		milestone.ProjectID, milestone.Name, milestone.Note,
		encodeDay(milestone.EndDate), milestone.PercentComplete, milestone.Status.String(),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert milestone", goerr.V("name", milestone.Name))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get inserted milestone ID")
	}

	created := *milestone
	created.ID = id
	created.EndDate = dates.Midnight(milestone.EndDate)
	return &created, nil
}

func (r *milestoneRepository) Get(ctx context.Context, id int64) (*model.Milestone, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, project_id, name, note, end_date, percent_complete, status
		 FROM milestones WHERE id = ?`, id,
	)

	m, err := scanMilestone(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, goerr.Wrap(ErrNotFound, "milestone not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to scan milestone", goerr.V("id", id))
	}
	return m, nil
}

func (r *milestoneRepository) ListByProject(ctx context.Context, projectID int64) ([]*model.Milestone, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, name, note, end_date, percent_complete, status
		 FROM milestones WHERE project_id = ?
		 ORDER BY end_date ASC, name ASC`, projectID,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query milestones", goerr.V("projectID", projectID))
	}
	defer rows.Close()

	out := make([]*model.Milestone, 0)
	for rows.Next() {
		m, err := scanMilestone(rows.Scan)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan milestone row")
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *milestoneRepository) Update(ctx context.Context, milestone *model.Milestone) (*model.Milestone, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE milestones
		 SET project_id = ?, name = ?, note = ?, end_date = ?, percent_complete = ?, status = ?
		 WHERE id = ?`,
		milestone.ProjectID, milestone.Name, milestone.Note,
		encodeDay(milestone.EndDate), milestone.PercentComplete,
		milestone.Status.String(), milestone.ID,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update milestone", goerr.V("id", milestone.ID))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return nil, goerr.Wrap(ErrNotFound, "milestone not found", goerr.V("id", milestone.ID))
	}

	updated := *milestone
	updated.EndDate = dates.Midnight(milestone.EndDate)
	return &updated, nil
}

func (r *milestoneRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM milestones WHERE id = ?`, id)
	if err != nil {
		return goerr.Wrap(err, "failed to delete milestone", goerr.V("id", id))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return goerr.Wrap(ErrNotFound, "milestone not found", goerr.V("id", id))
	}
	return nil
}

func (r *milestoneRepository) HealthCounts(ctx context.Context, ref time.Time, lookaheadDays int) (map[int64]model.MilestoneHealthCount, error) {
	refDay := encodeDay(ref)
	horizon := encodeDay(dates.AddDays(dates.Midnight(ref), lookaheadDays))

	rows, err := r.db.QueryContext(ctx,
		`SELECT project_id,
		        SUM(CASE WHEN status != 'done' AND end_date < ? THEN 1 ELSE 0 END),
		        SUM(CASE WHEN status != 'done' AND end_date >= ? AND end_date <= ? AND percent_complete < ? THEN 1 ELSE 0 END)
		 FROM milestones
		 GROUP BY project_id`,
		refDay, refDay, horizon, riskPercentThreshold,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query milestone health counts")
	}
	defer rows.Close()

	counts := make(map[int64]model.MilestoneHealthCount)
	for rows.Next() {
		var (
			projectID int64
			c         model.MilestoneHealthCount
		)
		if err := rows.Scan(&projectID, &c.Overdue, &c.Risk); err != nil {
			return nil, goerr.Wrap(err, "failed to scan health count row")
		}
		counts[projectID] = c
	}
	return counts, rows.Err()
}

func (r *milestoneRepository) Overdue(ctx context.Context, ref time.Time, limit int) ([]model.OverdueMilestone, error) {
	ref = dates.Midnight(ref)

	query := `
SELECT COALESCE(c.name, ?), p.id, p.name, m.id, m.name, m.end_date
FROM milestones m
JOIN projects p ON p.id = m.project_id
LEFT JOIN categories c ON c.id = p.category_id
WHERE m.status != 'done' AND m.end_date < ?
ORDER BY m.end_date ASC, m.id ASC`

	rows, err := r.db.QueryContext(ctx, limitClause(query, limit),
		model.UncategorizedLabel, encodeDay(ref))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query overdue milestones")
	}
	defer rows.Close()

	out := make([]model.OverdueMilestone, 0)
	for rows.Next() {
		var (
			o       model.OverdueMilestone
			endDate string
		)
		if err := rows.Scan(&o.Category, &o.ProjectID, &o.Project,
			&o.MilestoneID, &o.Milestone, &endDate); err != nil {
			return nil, goerr.Wrap(err, "failed to scan overdue row")
		}

		day, err := decodeDay(endDate)
		if err != nil {
			return nil, err
		}
		o.EndDate = day
		o.DaysLate = dates.DaysBetween(day, ref)
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *milestoneRepository) Upcoming(ctx context.Context, start, end time.Time, limit int) ([]model.UpcomingMilestone, error) {
	query := `
SELECT COALESCE(c.name, ?), p.id, p.name, m.id, m.name, m.end_date, m.percent_complete
FROM milestones m
JOIN projects p ON p.id = m.project_id
LEFT JOIN categories c ON c.id = p.category_id
WHERE m.status != 'done' AND m.end_date >= ? AND m.end_date <= ?
ORDER BY m.end_date ASC, m.id ASC`

	rows, err := r.db.QueryContext(ctx, limitClause(query, limit),
		model.UncategorizedLabel, encodeDay(start), encodeDay(end))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query upcoming milestones")
	}
	defer rows.Close()

	out := make([]model.UpcomingMilestone, 0)
	for rows.Next() {
		var (
			u       model.UpcomingMilestone
			endDate string
		)
		if err := rows.Scan(&u.Category, &u.ProjectID, &u.Project,
			&u.MilestoneID, &u.Milestone, &endDate, &u.PercentComplete); err != nil {
			return nil, goerr.Wrap(err, "failed to scan upcoming row")
		}

		day, err := decodeDay(endDate)
		if err != nil {
			return nil, err
		}
		u.EndDate = day
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *milestoneRepository) ProgressOverview(ctx context.Context) (map[int64]model.ProjectProgress, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT project_id,
		        COALESCE(AVG(percent_complete), 0),
		        COUNT(id),
		        SUM(CASE WHEN status = 'done' THEN 1 ELSE 0 END)
		 FROM milestones
		 GROUP BY project_id`,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query progress overview")
	}
	defer rows.Close()

	overview := make(map[int64]model.ProjectProgress)
	for rows.Next() {
		var (
			projectID int64
			p         model.ProjectProgress
		)
		if err := rows.Scan(&projectID, &p.AvgPercent, &p.TotalMilestones, &p.DoneMilestones); err != nil {
			return nil, goerr.Wrap(err, "failed to scan progress row")
		}
		overview[projectID] = p
	}
	return overview, rows.Err()
}
