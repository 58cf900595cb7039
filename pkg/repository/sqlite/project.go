package sqlite

import (
	"context"
	"database/sql"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/types"
)

type projectRepository struct {
	db *sql.DB
}

const projectSelect = `
SELECT p.id, p.category_id, p.name, p.objective, p.description, p.color,
       p.end_date, p.status, COALESCE(c.name, '')
FROM projects p
LEFT JOIN categories c ON c.id = p.category_id`

func scanProject(scan func(dest ...any) error) (*model.Project, error) {
	var (
		p          model.Project
		categoryID sql.NullInt64
		endDate    string
		status     string
	)
	if err := scan(&p.ID, &categoryID, &p.Name, &p.Objective, &p.Description,
		&p.Color, &endDate, &status, &p.CategoryName); err != nil {
		return nil, err
	}

	if categoryID.Valid {
		p.CategoryID = &categoryID.Int64
	}
	day, err := decodeDay(endDate)
	if err != nil {
		return nil, err
	}
	p.EndDate = day
	p.Status = types.Status(status)
	return &p, nil
}

func (r *projectRepository) Create(ctx context.Context, project *model.Project) (*model.Project, error) {
	var categoryID sql.NullInt64
	if project.CategoryID != nil {
		categoryID = sql.NullInt64{Int64: *project.CategoryID, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (category_id, name, objective, description, color, end_date, status)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		categoryID, project.Name, project.Objective, project.Description,
		project.Color, encodeDay(project.EndDate), project.Status.String(),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert project", goerr.V("name", project.Name))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get inserted project ID")
	}
	return r.Get(ctx, id)
}

func (r *projectRepository) Get(ctx context.Context, id int64) (*model.Project, error) {
	row := r.db.QueryRowContext(ctx, projectSelect+` WHERE p.id = ?`, id)

	p, err := scanProject(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to scan project", goerr.V("id", id))
	}
	return p, nil
}

func (r *projectRepository) List(ctx context.Context, categoryID *int64) ([]*model.Project, error) {
	query := projectSelect
	args := []any{}
	if categoryID != nil {
		query += ` WHERE p.category_id = ?`
		args = append(args, *categoryID)
	}
	query += ` ORDER BY p.name ASC, p.id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query projects")
	}
	defer rows.Close()

	out := make([]*model.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan project row")
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *projectRepository) Update(ctx context.Context, project *model.Project) (*model.Project, error) {
	var categoryID sql.NullInt64
	if project.CategoryID != nil {
		categoryID = sql.NullInt64{Int64: *project.CategoryID, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE projects
		 SET category_id = ?, name = ?, objective = ?, description = ?, color = ?, end_date = ?, status = ?
		 WHERE id = ?`,
		categoryID, project.Name, project.Objective, project.Description,
		project.Color, encodeDay(project.EndDate), project.Status.String(), project.ID,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update project", goerr.V("id", project.ID))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return nil, goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", project.ID))
	}
	return r.Get(ctx, project.ID)
}

func (r *projectRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return goerr.Wrap(err, "failed to delete project", goerr.V("id", id))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return goerr.Wrap(ErrNotFound, "project not found", goerr.V("id", id))
	}
	return nil
}
