package leads

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AthlasSoftware/leadmagnet/internal/page"
	"github.com/AthlasSoftware/leadmagnet/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the leads service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterPublicRoutes attaches the lead-magnet routes.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.createAnalysis)
	rg.GET("/analyses/:id", h.getAnalysis)
}

// RegisterAdminRoutes attaches the admin-only routes.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/leads", h.listLeads)
}

type createAnalysisRequest struct {
	Email  string `json:"email"`
	URL    string `json:"url"`
	Locale string `json:"locale"`
}

func (h *Handler) createAnalysis(c *gin.Context) {
	var req createAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	c.Set("targetUrl", req.URL)

	lead, err := h.Svc.Analyze(c.Request.Context(), AnalyzeRequest{
		Email:  req.Email,
		URL:    req.URL,
		Locale: req.Locale,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidEmail):
			respond.Error(c, http.StatusBadRequest, "validation_error", "a valid email address is required", []map[string]string{
				{"field": "email", "issue": "invalid"},
			})
		case errors.Is(err, ErrInvalidURL), errors.Is(err, page.ErrInvalidURL):
			respond.Error(c, http.StatusBadRequest, "validation_error", "a valid http(s) URL is required", []map[string]string{
				{"field": "url", "issue": "invalid"},
			})
		case errors.Is(err, page.ErrFetchFailed):
			respond.Error(c, http.StatusUnprocessableEntity, "fetch_failed", "the page could not be fetched", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "analysis failed", nil)
		}
		return
	}

	c.Set("leadId", lead.ID.String())

	respond.JSON(c, http.StatusOK, gin.H{
		"id":        lead.ID,
		"url":       lead.SiteURL,
		"locale":    lead.Locale,
		"result":    lead.Result,
		"createdAt": lead.CreatedAt,
	})
}

func (h *Handler) getAnalysis(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "analysis id must be a UUID", nil)
		return
	}

	lead, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return
	}

	// Public fetch by ID returns the report without the captured email.
	respond.JSON(c, http.StatusOK, gin.H{
		"id":        lead.ID,
		"url":       lead.SiteURL,
		"locale":    lead.Locale,
		"result":    lead.Result,
		"createdAt": lead.CreatedAt,
	})
}

func (h *Handler) listLeads(c *gin.Context) {
	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			offset = parsed
		}
	}

	all, err := h.Svc.List(c.Request.Context(), limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list leads", nil)
		return
	}

	resp := make([]gin.H, 0, len(all))
	for _, lead := range all {
		resp = append(resp, gin.H{
			"id":                 lead.ID,
			"email":              lead.Email,
			"url":                lead.SiteURL,
			"locale":             lead.Locale,
			"overallScore":       lead.OverallScore,
			"accessibilityScore": lead.AccessibilityScore,
			"seoScore":           lead.SEOScore,
			"designScore":        lead.DesignScore,
			"createdAt":          lead.CreatedAt,
		})
	}

	respond.JSON(c, http.StatusOK, resp)
}
