package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/govilvipul/HealthcareCM/internal/csvexport"
	"github.com/govilvipul/HealthcareCM/internal/domain"
	"github.com/govilvipul/HealthcareCM/internal/service"
	"github.com/govilvipul/HealthcareCM/internal/viewmodel"
)

// CaseHandler handles case review endpoints.
type CaseHandler struct {
	caseService     service.CaseService
	documentService service.DocumentService
}

// NewCaseHandler creates a new CaseHandler.
func NewCaseHandler(caseService service.CaseService, documentService service.DocumentService) *CaseHandler {
	return &CaseHandler{caseService: caseService, documentService: documentService}
}

// caseListResponse wraps a filtered case listing.
type caseListResponse struct {
	Cases []viewmodel.CaseView `json:"cases"`
	Total int                  `json:"total"`
}

// updateStatusRequest is the body for status decisions.
type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// documentResponse carries a time-limited document link.
type documentResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name,omitempty"`
}

// List handles GET /api/v1/cases
// @Summary List cases
// @Description List all cases, narrowed by optional status, document_type, priority and free-text filters. Filters combine with AND; repeated values within one filter are alternatives.
// @Tags cases
// @Produce json
// @Param status query []string false "Status filter (repeatable)"
// @Param document_type query []string false "Document type filter (repeatable)"
// @Param priority query []string false "Priority filter (repeatable)"
// @Param q query string false "Case-insensitive search over patient, file, type, summary and diagnosis"
// @Success 200 {object} APIResponse "Filtered case list"
// @Failure 400 {object} APIResponse "Invalid filter value"
// @Router /cases [get]
func (h *CaseHandler) List(c *gin.Context) {
	criteria, err := parseFilterCriteria(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	cases := h.caseService.ListCases(c.Request.Context())
	filtered := domain.FilterCases(cases, criteria)

	RespondOK(c, caseListResponse{
		Cases: viewmodel.NewCaseViews(filtered),
		Total: len(filtered),
	})
}

// GetByID handles GET /api/v1/cases/:id
// @Summary Get case detail
// @Tags cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} APIResponse "Case detail view"
// @Failure 404 {object} APIResponse "Case not found"
// @Router /cases/{id} [get]
func (h *CaseHandler) GetByID(c *gin.Context) {
	found, err := h.caseService.GetCase(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, viewmodel.NewCaseView(*found))
}

// UpdateStatus handles PATCH /api/v1/cases/:id/status
// @Summary Record a status decision
// @Description Set a case to APPROVED, DENIED, IN_PROGRESS or PENDING_REVIEW. Transitions are unconstrained; any status may follow any other.
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "Case ID"
// @Param body body updateStatusRequest true "New status"
// @Success 200 {object} APIResponse "Status updated"
// @Failure 400 {object} APIResponse "Unknown status value"
// @Failure 500 {object} APIResponse "Update failed"
// @Router /cases/{id}/status [patch]
func (h *CaseHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "status field is required")
		return
	}

	status := domain.CaseStatus(req.Status)
	if !status.IsValid() {
		HandleError(c, domain.ErrInvalidStatus)
		return
	}

	caseID := c.Param("id")
	if !h.caseService.UpdateCaseStatus(c.Request.Context(), caseID, status) {
		HandleError(c, domain.ErrUpdateFailed)
		return
	}

	RespondOK(c, gin.H{"case_id": caseID, "status": status})
}

// GetDocument handles GET /api/v1/cases/:id/document
// @Summary Get a time-limited document link
// @Tags cases
// @Produce json
// @Param id path string true "Case ID"
// @Success 200 {object} APIResponse "Presigned document URL"
// @Failure 404 {object} APIResponse "Case or document not found"
// @Router /cases/{id}/document [get]
func (h *CaseHandler) GetDocument(c *gin.Context) {
	found, err := h.caseService.GetCase(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}

	url, err := h.documentService.DocumentURL(c.Request.Context(), found)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, documentResponse{URL: url, FileName: found.FileName})
}

// Metrics handles GET /api/v1/metrics
// @Summary Dashboard metrics
// @Description Counts over the full unfiltered case set: total, pending review, high priority, approved.
// @Tags metrics
// @Produce json
// @Success 200 {object} APIResponse "Case metrics"
// @Router /metrics [get]
func (h *CaseHandler) Metrics(c *gin.Context) {
	RespondOK(c, h.caseService.Metrics(c.Request.Context()))
}

// Export handles GET /api/v1/cases/export
// @Summary Export cases as CSV
// @Description Download the (optionally filtered) case list as a UTF-8 CSV with BOM for Excel.
// @Tags cases
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 400 {object} APIResponse "Invalid filter value"
// @Router /cases/export [get]
func (h *CaseHandler) Export(c *gin.Context) {
	criteria, err := parseFilterCriteria(c)
	if err != nil {
		HandleError(c, err)
		return
	}

	cases := domain.FilterCases(h.caseService.ListCases(c.Request.Context()), criteria)

	filename := fmt.Sprintf("cases_%s.csv", time.Now().UTC().Format("20060102"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	// Headers are already committed once the BOM is written; write errors
	// from here can only be logged.
	_, _ = c.Writer.Write(csvexport.BOM)
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		log.Printf("caseHandler.Export: writing header: %v", err)
		return
	}
	if err := w.WriteCases(cases); err != nil {
		log.Printf("caseHandler.Export: writing cases: %v", err)
		return
	}
	if err := w.Flush(); err != nil {
		log.Printf("caseHandler.Export: flushing: %v", err)
	}
}

// parseFilterCriteria builds filter criteria from list query parameters,
// validating enum-valued filters.
func parseFilterCriteria(c *gin.Context) (domain.FilterCriteria, error) {
	criteria := domain.FilterCriteria{
		DocumentTypes: c.QueryArray("document_type"),
		SearchTerm:    c.Query("q"),
	}

	for _, s := range c.QueryArray("status") {
		status := domain.CaseStatus(s)
		if !status.IsValid() {
			return domain.FilterCriteria{}, domain.ErrInvalidStatus
		}
		criteria.Status = append(criteria.Status, status)
	}

	for _, p := range c.QueryArray("priority") {
		priority := domain.CasePriority(p)
		if !priority.IsValid() {
			return domain.FilterCriteria{}, domain.ErrInvalidPriority
		}
		criteria.Priority = append(criteria.Priority, priority)
	}

	return criteria, nil
}
