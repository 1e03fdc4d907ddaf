package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campus-tools/advising-admin/internal/catalog"
	"github.com/campus-tools/advising-admin/internal/middleware"
	"github.com/campus-tools/advising-admin/internal/models"
	"github.com/campus-tools/advising-admin/internal/service"
	"github.com/campus-tools/advising-admin/internal/tableview"
	appErrors "github.com/campus-tools/advising-admin/pkg/errors"
	"github.com/campus-tools/advising-admin/pkg/response"
	"github.com/campus-tools/advising-admin/pkg/table"
)

// ViewHandler exposes one entity's table view session endpoints.
type ViewHandler[R any] struct {
	entity     string
	dimensions []string
	views      *tableview.Service[R]
	metrics    *service.MetricsService
	pdfEnabled bool
}

// NewViewHandler builds the view endpoints for one entity screen.
func NewViewHandler[R any](ent catalog.Entity[R], views *tableview.Service[R], metrics *service.MetricsService, pdfEnabled bool) *ViewHandler[R] {
	dims := make([]string, 0, len(ent.Table.Dimensions))
	for name := range ent.Table.Dimensions {
		dims = append(dims, name)
	}
	return &ViewHandler[R]{entity: ent.Name, dimensions: dims, views: views, metrics: metrics, pdfEnabled: pdfEnabled}
}

// Open creates a view session and returns its first page.
func (h *ViewHandler[R]) Open(c *gin.Context) {
	page, err := h.views.Open(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordViewOpened()
	response.JSON(c, http.StatusCreated, page, &page.Pagination)
}

// Rows applies requested filter/sort/page changes and returns the window.
func (h *ViewHandler[R]) Rows(c *gin.Context) {
	params, err := h.parseParams(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	page, err := h.views.Rows(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page, &page.Pagination)
}

// Selection mutates the view's selection set.
func (h *ViewHandler[R]) Selection(c *gin.Context) {
	var req struct {
		Op string `json:"op" binding:"required,oneof=toggle all clear"`
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid selection payload"))
		return
	}

	viewID := c.Param("id")
	var (
		page *tableview.Page[R]
		err  error
	)
	switch req.Op {
	case "toggle":
		if req.ID == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "record id is required to toggle"))
			return
		}
		page, err = h.views.ToggleSelect(c.Request.Context(), viewID, req.ID)
	case "all":
		page, err = h.views.SelectAll(c.Request.Context(), viewID)
	default:
		page, err = h.views.ClearSelection(c.Request.Context(), viewID)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page, &page.Pagination)
}

// Export streams the filtered set or selection as a CSV or PDF download.
func (h *ViewHandler[R]) Export(c *gin.Context) {
	format := tableview.ExportFormat(c.DefaultQuery("format", string(tableview.FormatCSV)))
	if format != tableview.FormatCSV && format != tableview.FormatPDF {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
		return
	}
	if format == tableview.FormatPDF && !h.pdfEnabled {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "pdf export is disabled"))
		return
	}
	scope := tableview.ExportScope(c.DefaultQuery("scope", string(tableview.ScopeFiltered)))
	if scope != tableview.ScopeFiltered && scope != tableview.ScopeSelected {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "scope must be filtered or selected"))
		return
	}

	download, err := h.views.Export(c.Request.Context(), c.Param("id"), scope, format)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.metrics.RecordExport(h.entity, string(format))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.Filename))
	c.Data(http.StatusOK, download.ContentType, download.Payload)
}

// Refresh re-fetches the dataset behind the view.
func (h *ViewHandler[R]) Refresh(c *gin.Context) {
	page, err := h.views.Refresh(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, page, &page.Pagination)
}

// Close drops the view session.
func (h *ViewHandler[R]) Close(c *gin.Context) {
	if err := h.views.Close(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Routes registers the view session endpoints under /views/{entity}.
// Exports are audited; reading rows is not.
func (h *ViewHandler[R]) Routes(rg *gin.RouterGroup, audit middleware.AuditRecorder) {
	group := rg.Group("/views/" + h.entity)
	group.POST("", h.Open)
	group.GET("/:id/rows", h.Rows)
	group.POST("/:id/selection", h.Selection)
	group.GET("/:id/export", middleware.Audit(audit, models.AuditActionExport, h.entity), h.Export)
	group.POST("/:id/refresh", h.Refresh)
	group.DELETE("/:id", h.Close)
}

// parseParams maps query params onto view state changes. Only parameters
// present in the request mutate state.
func (h *ViewHandler[R]) parseParams(c *gin.Context) (tableview.Params, error) {
	var params tableview.Params

	if raw, ok := c.GetQuery("search"); ok {
		params.Query = &raw
	}
	for _, name := range h.dimensions {
		if raw, ok := c.GetQuery(name); ok {
			if params.Dimensions == nil {
				params.Dimensions = make(map[string]string)
			}
			params.Dimensions[name] = raw
		}
	}
	if raw, ok := c.GetQuery("sort"); ok {
		params.SortKey = &raw
	}
	if raw, ok := c.GetQuery("order"); ok {
		dir := table.Direction(raw)
		if dir != table.Ascending && dir != table.Descending {
			return params, appErrors.Clone(appErrors.ErrValidation, "order must be asc or desc")
		}
		params.SortDir = &dir
	}
	if raw, ok := c.GetQuery("page"); ok {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return params, appErrors.Clone(appErrors.ErrValidation, "page must be an integer")
		}
		params.Page = &page
	}

	return params, nil
}
