package render_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/types"
	"github.com/focuspoint-lab/focuspoint/pkg/service/render"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/dates"
)

func TestRenderAllTemplates(t *testing.T) {
	r, err := render.NewHTML()
	gt.NoError(t, err).Required()
	gt.Value(t, r.Ext()).Equal("html")

	for _, tmpl := range []string{"report_week.html", "report_month.html", "report_year.html"} {
		rc := &model.ReportContext{
			AppName:      "FocusPoint",
			Kind:         types.PeriodWeekly,
			Generated:    time.Now(),
			Start:        dates.Day(2025, time.June, 2),
			End:          dates.Day(2025, time.June, 8),
			SeriesTitle:  "Weekly report",
			SeriesLabels: []string{"Mon", "Tue"},
			SeriesValues: []int{30, 90},
			SeriesMax:    90,
			BusiestLabel: "Tue",
			BusiestValue: "01:30",
			Categories: []model.CategoryMinutes{
				{Label: "Work", Minutes: 120},
			},
			Projects: []model.ProjectReportRow{
				{ProjectID: 1, Name: "Alpha", Minutes: 120, Overdue: 1},
			},
			TotalMinutes:  120,
			TotalHHMM:     "02:00",
			ActiveDays:    2,
			AvgActiveHHMM: "01:00",
			LongestStreak: 2,
			Top1Share:     "100.0%",
			Top3Share:     "100.0%",
			Suggestions:   []string{"Resolve overdue milestone"},
			TemplateName:  tmpl,
		}

		body, err := r.Render(context.Background(), rc)
		gt.NoError(t, err).Required()

		html := string(body)
		gt.Value(t, strings.Contains(html, "FocusPoint")).Equal(true)
		gt.Value(t, strings.Contains(html, "Alpha")).Equal(true)
		gt.Value(t, strings.Contains(html, "02:00")).Equal(true)
		gt.Value(t, strings.Contains(html, "Resolve overdue milestone")).Equal(true)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	r, err := render.NewHTML()
	gt.NoError(t, err).Required()

	_, err = r.Render(context.Background(), &model.ReportContext{TemplateName: "missing.html"})
	gt.Error(t, err)
}
