package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
)

type reportFileRepository struct {
	mu     sync.RWMutex
	files  map[int64]*model.ReportFile
	nextID int64
}

func newReportFileRepository() *reportFileRepository {
	return &reportFileRepository{
		files:  make(map[int64]*model.ReportFile),
		nextID: 1,
	}
}

func copyReportFile(f *model.ReportFile) *model.ReportFile {
	copied := *f
	return &copied
}

func (r *reportFileRepository) Create(ctx context.Context, file *model.ReportFile) (*model.ReportFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyReportFile(file)
	created.ID = r.nextID
	if created.CreatedAt.IsZero() {
		created.CreatedAt = time.Now().UTC()
	}
	r.nextID++

	r.files[created.ID] = created
	return copyReportFile(created), nil
}

func (r *reportFileRepository) Get(ctx context.Context, id int64) (*model.ReportFile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	file, exists := r.files[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "report file not found", goerr.V("id", id))
	}
	return copyReportFile(file), nil
}

func (r *reportFileRepository) List(ctx context.Context) ([]*model.ReportFile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.ReportFile, 0, len(r.files))
	for _, f := range r.files {
		out = append(out, copyReportFile(f))
	}

	// newest first
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID > out[j].ID
	})
	return out, nil
}
