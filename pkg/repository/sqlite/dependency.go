package sqlite

import (
	"context"
	"database/sql"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
)

type dependencyRepository struct {
	db *sql.DB
}

func (r *dependencyRepository) Create(ctx context.Context, dep *model.Dependency) (*model.Dependency, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO dependencies (project_id, from_milestone_id, to_milestone_id)
		 VALUES (?, ?, ?)`,
		dep.ProjectID, dep.FromMilestoneID, dep.ToMilestoneID,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert dependency",
			goerr.V("projectID", dep.ProjectID),
			goerr.V("from", dep.FromMilestoneID),
			goerr.V("to", dep.ToMilestoneID))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get inserted dependency ID")
	}

	created := *dep
	created.ID = id
	return &created, nil
}

func (r *dependencyRepository) Find(ctx context.Context, projectID, fromID, toID int64) (*model.Dependency, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, project_id, from_milestone_id, to_milestone_id
		 FROM dependencies
		 WHERE project_id = ? AND from_milestone_id = ? AND to_milestone_id = ?`,
		projectID, fromID, toID,
	)

	var d model.Dependency
	if err := row.Scan(&d.ID, &d.ProjectID, &d.FromMilestoneID, &d.ToMilestoneID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to scan dependency")
	}
	return &d, nil
}

func (r *dependencyRepository) ListByProject(ctx context.Context, projectID int64) ([]*model.Dependency, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, project_id, from_milestone_id, to_milestone_id
		 FROM dependencies WHERE project_id = ?
		 ORDER BY id ASC`, projectID,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query dependencies", goerr.V("projectID", projectID))
	}
	defer rows.Close()

	out := make([]*model.Dependency, 0)
	for rows.Next() {
		var d model.Dependency
		if err := rows.Scan(&d.ID, &d.ProjectID, &d.FromMilestoneID, &d.ToMilestoneID); err != nil {
			return nil, goerr.Wrap(err, "failed to scan dependency row")
		}
		out = append(out, &d)
	}
	return out, rows.Err()
}

func (r *dependencyRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM dependencies WHERE id = ?`, id)
	if err != nil {
		return goerr.Wrap(err, "failed to delete dependency", goerr.V("id", id))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return goerr.Wrap(ErrNotFound, "dependency not found", goerr.V("id", id))
	}
	return nil
}
