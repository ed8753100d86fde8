package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"intakedesk/internal/app"
	"intakedesk/internal/common"
	"intakedesk/internal/domain/application"
	"intakedesk/internal/http/response"
)

type ApplicationHandler struct {
	applications *app.ApplicationService
}

func NewApplicationHandler(applications *app.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

func (h *ApplicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input application.CreateInput
	if err := decodeJSON(r, &input); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.applications.Create(r.Context(), input)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, created)
}

func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	record, err := h.applications.Get(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}
	if record == nil {
		response.Error(w, common.NewError(common.CodeNotFound, "application not found", nil))
		return
	}
	response.JSON(w, http.StatusOK, record)
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	var filter application.ListFilter
	fields := make(map[string]string)
	query := r.URL.Query()
	if value := strings.TrimSpace(query.Get("status")); value != "" {
		status, ok := application.ParseStatus(value)
		if !ok {
			fields["status"] = "status must be pending, reviewed, approved, or rejected"
		} else {
			filter.Status = &status
		}
	}
	if value := query.Get("limit"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			fields["limit"] = "limit must be a positive integer"
		} else {
			filter.Limit = parsed
		}
	}
	if value := query.Get("offset"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			fields["offset"] = "offset must be a non-negative integer"
		} else {
			filter.Offset = parsed
		}
	}
	if len(fields) > 0 {
		response.Error(w, common.NewValidationError("invalid request", fields))
		return
	}
	items, err := h.applications.List(r.Context(), filter)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, items)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idFromPath(r)
	if err != nil {
		response.Error(w, err)
		return
	}
	var req updateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	if strings.TrimSpace(req.Status) == "" {
		response.Error(w, common.NewValidationError("invalid request", map[string]string{"status": "status is required"}))
		return
	}
	updated, err := h.applications.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, updated)
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return common.NewError(common.CodeValidation, "invalid json body", err)
	}
	return nil
}

// idFromPath reads the record id from /applications/{id}[/status].
func idFromPath(r *http.Request) (int64, error) {
	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(segments) < 2 {
		return 0, common.NewValidationError("invalid request", map[string]string{"id": "id is required"})
	}
	id, err := strconv.ParseInt(segments[1], 10, 64)
	if err != nil || id <= 0 {
		return 0, common.NewValidationError("invalid request", map[string]string{"id": "id must be a positive integer"})
	}
	return id, nil
}
