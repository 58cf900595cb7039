package render

import (
	"bytes"
	"context"
	"embed"
	"html/template"

	"github.com/m-mizutani/goerr/v2"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/interfaces"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/dates"
)

//go:embed templates/*.html
var templatesFS embed.FS

// HTML renders report contexts through the embedded HTML templates
type HTML struct {
	templates *template.Template
}

var _ interfaces.Renderer = &HTML{}

func NewHTML() (*HTML, error) {
	tmpl, err := template.New("reports").Funcs(template.FuncMap{
		"hhmm": dates.FormatDuration,
		"day":  dates.FormatDate,
		"bar": func(value, max int) int {
			if max <= 0 {
				return 0
			}
			return value * 100 / max
		},
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse report templates")
	}

	return &HTML{templates: tmpl}, nil
}

func (r *HTML) Render(ctx context.Context, rc *model.ReportContext) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, rc.TemplateName, rc); err != nil {
		return nil, goerr.Wrap(err, "failed to render report",
			goerr.V("template", rc.TemplateName),
			goerr.V("kind", rc.Kind))
	}
	return buf.Bytes(), nil
}

func (r *HTML) Ext() string {
	return "html"
}
