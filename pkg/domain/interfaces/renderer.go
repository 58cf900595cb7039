package interfaces

import (
	"context"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
)

// Renderer turns a report context into a document body. Ext is the file
// extension of the produced documents, without the leading dot.
type Renderer interface {
	Render(ctx context.Context, rc *model.ReportContext) ([]byte, error)
	Ext() string
}
