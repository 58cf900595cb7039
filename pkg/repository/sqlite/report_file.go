package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/types"
)

type reportFileRepository struct {
	db *sql.DB
}

func scanReportFile(scan func(dest ...any) error) (*model.ReportFile, error) {
	var (
		f          model.ReportFile
		periodType string
		start, end string
		createdAt  string
	)
	if err := scan(&f.ID, &periodType, &start, &end, &f.FilePath, &createdAt); err != nil {
		return nil, err
	}

	f.PeriodType = types.PeriodKind(periodType)

	startDay, err := decodeDay(start)
	if err != nil {
		return nil, err
	}
	endDay, err := decodeDay(end)
	if err != nil {
		return nil, err
	}
	f.PeriodStart = startDay
	f.PeriodEnd = endDay

	created, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, goerr.Wrap(err, "corrupted created_at column", goerr.V("value", createdAt))
	}
	f.CreatedAt = created
	return &f, nil
}

func (r *reportFileRepository) Create(ctx context.Context, file *model.ReportFile) (*model.ReportFile, error) {
	createdAt := file.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO report_files (period_type, period_start, period_end, file_path, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		file.PeriodType.String(), encodeDay(file.PeriodStart), encodeDay(file.PeriodEnd),
		file.FilePath, createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to insert report file", goerr.V("path", file.FilePath))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get inserted report file ID")
	}
	return r.Get(ctx, id)
}

func (r *reportFileRepository) Get(ctx context.Context, id int64) (*model.ReportFile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, period_type, period_start, period_end, file_path, created_at
		 FROM report_files WHERE id = ?`, id,
	)

	f, err := scanReportFile(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, goerr.Wrap(ErrNotFound, "report file not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to scan report file", goerr.V("id", id))
	}
	return f, nil
}

func (r *reportFileRepository) List(ctx context.Context) ([]*model.ReportFile, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, period_type, period_start, period_end, file_path, created_at
		 FROM report_files ORDER BY id DESC`,
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query report files")
	}
	defer rows.Close()

	out := make([]*model.ReportFile, 0)
	for rows.Next() {
		f, err := scanReportFile(rows.Scan)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to scan report file row")
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
