package sqlite

import (
	"context"
	"database/sql"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
)

type categoryRepository struct {
	db *sql.DB
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO categories (name, description) VALUES (?, ?)`,
		category.Name, category.Description,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert category", goerr.V("name", category.Name))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get inserted category ID")
	}

	created := *category
	created.ID = id
	return &created, nil
}

func (r *categoryRepository) Get(ctx context.Context, id int64) (*model.Category, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, description FROM categories WHERE id = ?`, id,
	)

	var c model.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Description); err != nil {
		if err == sql.ErrNoRows {
			return nil, goerr.Wrap(ErrNotFound, "category not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to scan category", goerr.V("id", id))
	}
	return &c, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]*model.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description FROM categories ORDER BY name ASC, id ASC`,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query categories")
	}
	defer rows.Close()

	out := make([]*model.Category, 0)
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, goerr.Wrap(err, "failed to scan category row")
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *categoryRepository) Update(ctx context.Context, category *model.Category) (*model.Category, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = ?, description = ? WHERE id = ?`,
		category.Name, category.Description, category.ID,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update category", goerr.V("id", category.ID))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return nil, goerr.Wrap(ErrNotFound, "category not found", goerr.V("id", category.ID))
	}

	updated := *category
	return &updated, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return goerr.Wrap(err, "failed to delete category", goerr.V("id", id))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return goerr.Wrap(err, "failed to get affected rows")
	}
	if affected == 0 {
		return goerr.Wrap(ErrNotFound, "category not found", goerr.V("id", id))
	}
	return nil
}
