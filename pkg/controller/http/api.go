package http

import (
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/focuspoint-lab/focuspoint/pkg/domain/model"
	"github.com/focuspoint-lab/focuspoint/pkg/domain/types"
	"github.com/focuspoint-lab/focuspoint/pkg/usecase"
	"github.com/focuspoint-lab/focuspoint/pkg/utils/dates"
)

// ---- categories ----

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.uc.ListCategories(r.Context())
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, categories)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	category, err := s.uc.CreateCategory(r.Context(), req.Name, req.Description)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, category)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	category, err := s.uc.GetCategory(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, category)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	var req categoryRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	category, err := s.uc.UpdateCategory(r.Context(), &model.Category{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, category)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	if err := s.uc.DeleteCategory(r.Context(), id); err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
}

// ---- projects ----

type projectRequest struct {
	CategoryID  *int64 `json:"category_id"`
	Name        string `json:"name"`
	Objective   string `json:"objective"`
	Description string `json:"description"`
	Color       string `json:"color"`
	EndDate     string `json:"end_date"`
	Status      string `json:"status"`
}

func (req *projectRequest) toModel(id int64) (*model.Project, error) {
	endDate, err := dates.ParseDate(req.EndDate)
	if err != nil {
		return nil, err
	}

	return &model.Project{
		ID:          id,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Objective:   req.Objective,
		Description: req.Description,
		Color:       req.Color,
		EndDate:     endDate,
		Status:      types.Status(req.Status),
	}, nil
}

func (s *Server) handleListProjects(w http.ResponseWriter, r *http.Request) {
	var categoryID *int64
	if raw := r.URL.Query().Get("category_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(r.Context(), w, usecase.ErrInvalidInput)
			return
		}
		categoryID = &id
	}

	projects, err := s.uc.ListProjects(r.Context(), categoryID)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, projects)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	project, err := req.toModel(0)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	created, err := s.uc.CreateProject(r.Context(), project)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, created)
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	project, err := s.uc.GetProject(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, project)
}

func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	var req projectRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	project, err := req.toModel(id)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	updated, err := s.uc.UpdateProject(r.Context(), project)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, updated)
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	if err := s.uc.DeleteProject(r.Context(), id); err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
}

// ---- milestones ----

type milestoneRequest struct {
	ID              int64  `json:"id"`
	ProjectID       int64  `json:"project_id"`
	Name            string `json:"name"`
	EndDate         string `json:"end_date"`
	PercentComplete int    `json:"percent_complete"`
	Status          string `json:"status"`
	Note            string `json:"note"`
	DependentToID   *int64 `json:"dependent_to_id"`
}

func (s *Server) handleUpsertMilestone(w http.ResponseWriter, r *http.Request) {
	var req milestoneRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	endDate, err := dates.ParseDate(req.EndDate)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	milestone, err := s.uc.UpsertMilestone(r.Context(), usecase.UpsertMilestoneInput{
		ID:              req.ID,
		ProjectID:       req.ProjectID,
		Name:            req.Name,
		EndDate:         endDate,
		PercentComplete: req.PercentComplete,
		Status:          types.Status(req.Status),
		Note:            req.Note,
		DependentToID:   req.DependentToID,
	})
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	status := http.StatusOK
	if req.ID == 0 {
		status = http.StatusCreated
	}
	respondJSON(r.Context(), w, status, milestone)
}

func (s *Server) handleGetMilestone(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	milestone, err := s.uc.GetMilestone(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, milestone)
}

func (s *Server) handleDeleteMilestone(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	if err := s.uc.DeleteMilestone(r.Context(), id); err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleSetMilestonePercent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	var req struct {
		Value int `json:"value"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	milestone, err := s.uc.SetMilestonePercent(r.Context(), id, req.Value)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, milestone)
}

func (s *Server) handleSetMilestoneNote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	var req struct {
		Note string `json:"note"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	milestone, err := s.uc.SetMilestoneNote(r.Context(), id, req.Note)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, milestone)
}

func (s *Server) handleListMilestones(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	nodes, err := s.uc.ListMilestoneHealth(r.Context(), id, time.Now())
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, nodes)
}

func (s *Server) handleMilestoneGraph(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	graph, err := s.uc.MilestoneGraph(r.Context(), id, time.Now())
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, graph)
}

// ---- dependencies ----

type dependencyRequest struct {
	FromMilestoneID int64 `json:"from_milestone_id"`
	ToMilestoneID   int64 `json:"to_milestone_id"`
}

func (s *Server) handleAddDependency(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	var req dependencyRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	dep, err := s.uc.AddDependency(r.Context(), projectID, req.FromMilestoneID, req.ToMilestoneID)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, dep)
}

func (s *Server) handleListDependencies(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	deps, err := s.uc.ListDependencies(r.Context(), projectID)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, deps)
}

func (s *Server) handleRemoveDependency(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	if err := s.uc.RemoveDependency(r.Context(), id); err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
}

// ---- actions ----

type actionRequest struct {
	ProjectID   int64  `json:"project_id"`
	MilestoneID *int64 `json:"milestone_id"`
	Date        string `json:"date"`
	Duration    string `json:"duration"`
	Comment     string `json:"comment"`
}

func (s *Server) handleLogAction(w http.ResponseWriter, r *http.Request) {
	var req actionRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(r.Context(), w, err)
		return
	}

	action, err := s.uc.LogAction(r.Context(), usecase.LogActionInput{
		ProjectID:   req.ProjectID,
		MilestoneID: req.MilestoneID,
		Date:        req.Date,
		Duration:    req.Duration,
		Comment:     req.Comment,
	})
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, action)
}

func (s *Server) handleListActions(w http.ResponseWriter, r *http.Request) {
	day := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := dates.ParseDate(raw)
		if err != nil {
			respondError(r.Context(), w, err)
			return
		}
		day = parsed
	}

	actions, err := s.uc.ListActionsByDate(r.Context(), day)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, actions)
}

func (s *Server) handleDeleteAction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	if err := s.uc.DeleteAction(r.Context(), id); err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
}

// ---- reports ----

func periodParam(r *http.Request) (types.PeriodKind, error) {
	kind, err := types.ParsePeriodKind(chi.URLParam(r, "period"))
	if err != nil {
		return "", usecase.ErrUnknownReportType
	}
	return kind, nil
}

func refParam(r *http.Request) (time.Time, error) {
	if raw := r.URL.Query().Get("ref"); raw != "" {
		return dates.ParseDate(raw)
	}
	return time.Now(), nil
}

// handleReview serves the full report context as JSON without
// generating a document.
func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	kind, err := periodParam(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	ref, err := refParam(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	rc, err := s.uc.BuildReportContext(r.Context(), kind, ref)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, rc)
}

func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	kind, err := periodParam(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	ref, err := refParam(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	file, err := s.uc.GenerateReport(r.Context(), kind, ref)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusCreated, file)
}

func (s *Server) handleListReports(w http.ResponseWriter, r *http.Request) {
	files, err := s.uc.ListReports(r.Context())
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}
	respondJSON(r.Context(), w, http.StatusOK, files)
}

func (s *Server) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	file, err := s.uc.GetReport(r.Context(), id)
	if err != nil {
		respondError(r.Context(), w, err)
		return
	}

	w.Header().Set("Content-Disposition", "attachment; filename=\""+filepath.Base(file.FilePath)+"\"")
	http.ServeFile(w, r, file.FilePath)
}
