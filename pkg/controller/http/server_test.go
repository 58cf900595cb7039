package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	httpctrl "github.com/focuspoint-lab/focuspoint/pkg/controller/http"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/repository/memory"
	"github.com/focuspoint-lab/focuspoint/pkg/usecase"
)

func postJSON(t *testing.T, srv *httpctrl.Server, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	gt.NoError(t, err).Required()

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func getPath(t *testing.T, srv *httpctrl.Server, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	srv := httpctrl.New(usecase.New(memory.New()))

	rec := getPath(t, srv, "/health", nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)
}

func TestProjectAndActionFlow(t *testing.T) {
	srv := httpctrl.New(usecase.New(memory.New()))

	rec := postJSON(t, srv, "/api/projects", map[string]any{
		"name":     "Alpha",
		"end_date": "31/12/2025",
	}, nil)
	gt.Value(t, rec.Code).Equal(http.StatusCreated)

	var project model.Project
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &project)).Required()
	gt.Value(t, project.Name).Equal("Alpha")

	rec = postJSON(t, srv, "/api/actions", map[string]any{
		"project_id": project.ID,
		"date":       "03/06/2025",
		"duration":   "01:30",
	}, nil)
	gt.Value(t, rec.Code).Equal(http.StatusCreated)

	// malformed duration is a client error
	rec = postJSON(t, srv, "/api/actions", map[string]any{
		"project_id": project.ID,
		"date":       "03/06/2025",
		"duration":   "12:60",
	}, nil)
	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)

	rec = getPath(t, srv, "/api/actions?date=03/06/2025", nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var actions []model.ActionDetail
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actions)).Required()
	gt.Number(t, len(actions)).Equal(1)
	gt.Value(t, actions[0].ProjectName).Equal("Alpha")

	rec = getPath(t, srv, "/api/projects/999", nil)
	gt.Value(t, rec.Code).Equal(http.StatusNotFound)
}

func TestReviewEndpoint(t *testing.T) {
	srv := httpctrl.New(usecase.New(memory.New()))

	rec := getPath(t, srv, "/api/review/weekly?ref=04/06/2025", nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var rc model.ReportContext
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rc)).Required()
	gt.Number(t, len(rc.SeriesLabels)).Equal(7)
	gt.Value(t, rc.TemplateName).Equal("report_week.html")

	rec = getPath(t, srv, "/api/review/daily", nil)
	gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
}

func TestAuthProtectedRoutes(t *testing.T) {
	repo := memory.New()
	auth := usecase.NewAuthUseCase(repo, "admin", "s3cret")
	srv := httpctrl.New(usecase.New(repo, usecase.WithAuth(auth)))

	// protected without a session
	rec := getPath(t, srv, "/api/projects", nil)
	gt.Value(t, rec.Code).Equal(http.StatusUnauthorized)

	// bad credentials
	rec = postJSON(t, srv, "/api/auth/login", map[string]string{
		"username": "admin", "password": "nope",
	}, nil)
	gt.Value(t, rec.Code).Equal(http.StatusUnauthorized)

	// login sets the session cookie
	rec = postJSON(t, srv, "/api/auth/login", map[string]string{
		"username": "admin", "password": "s3cret",
	}, nil)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	cookies := rec.Result().Cookies()
	gt.Number(t, len(cookies)).NotEqual(0)

	rec = getPath(t, srv, "/api/projects", cookies)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	rec = postJSON(t, srv, "/api/auth/logout", nil, cookies)
	gt.Value(t, rec.Code).Equal(http.StatusOK)

	rec = getPath(t, srv, "/api/projects", cookies)
	gt.Value(t, rec.Code).Equal(http.StatusUnauthorized)
}
