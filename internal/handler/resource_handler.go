package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/campus-tools/advising-admin/internal/catalog"
	"github.com/campus-tools/advising-admin/internal/middleware"
	"github.com/campus-tools/advising-admin/internal/models"
	"github.com/campus-tools/advising-admin/internal/provider"
	appErrors "github.com/campus-tools/advising-admin/pkg/errors"
	"github.com/campus-tools/advising-admin/pkg/response"
)

// maxImportSize caps CSV uploads forwarded upstream.
const maxImportSize = 10 << 20

// ResourceHandler is the CRUD passthrough for one entity. C and U are the
// validated create and update payloads; records of type R come back from
// the upstream untouched.
type ResourceHandler[R, C, U any] struct {
	entity   string
	resource *provider.Resource[R]
	validate *validator.Validate
}

// NewResourceHandler builds a passthrough handler for one entity.
func NewResourceHandler[R, C, U any](ent catalog.Entity[R], resource *provider.Resource[R], validate *validator.Validate) *ResourceHandler[R, C, U] {
	if validate == nil {
		validate = validator.New()
	}
	return &ResourceHandler[R, C, U]{entity: ent.Name, resource: resource, validate: validate}
}

// List forwards the collection request, passing upstream query params
// through verbatim.
func (h *ResourceHandler[R, C, U]) List(c *gin.Context) {
	records, err := h.resource.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records, nil)
}

// Get forwards a single-record fetch.
func (h *ResourceHandler[R, C, U]) Get(c *gin.Context) {
	record, err := h.resource.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record, nil)
}

// Create validates the payload and forwards it upstream.
func (h *ResourceHandler[R, C, U]) Create(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	created, err := h.resource.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// Update validates the payload and forwards it upstream.
func (h *ResourceHandler[R, C, U]) Update(c *gin.Context) {
	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	updated, err := h.resource.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, updated, nil)
}

// Delete forwards a delete upstream.
func (h *ResourceHandler[R, C, U]) Delete(c *gin.Context) {
	if err := h.resource.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Import forwards a CSV upload for server-side processing. The file is
// never parsed here; the advising API owns row validation and reports
// per-row results.
func (h *ResourceHandler[R, C, U]) Import(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(maxImportSize); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid multipart payload"))
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "csv file is required"))
		return
	}
	defer file.Close()

	fields := make(map[string]string)
	for key, values := range c.Request.MultipartForm.Value {
		if len(values) > 0 {
			fields[key] = values[0]
		}
	}

	if err := h.resource.UploadCSV(c.Request.Context(), header.Filename, file, fields); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusAccepted, gin.H{"status": "accepted", "filename": header.Filename}, nil)
}

// Routes registers the CRUD passthrough under /{entity}. Mutations are
// restricted to admins and audited.
func (h *ResourceHandler[R, C, U]) Routes(rg *gin.RouterGroup, audit middleware.AuditRecorder) {
	group := rg.Group("/" + h.entity)
	group.GET("", h.List)
	group.GET("/:id", h.Get)

	admin := group.Group("", middleware.RequireRoles(models.RoleSuperAdmin, models.RoleAdmin))
	admin.POST("", middleware.Audit(audit, models.AuditActionCreate, h.entity), h.Create)
	admin.PUT("/:id", middleware.Audit(audit, models.AuditActionUpdate, h.entity), h.Update)
	admin.DELETE("/:id", middleware.Audit(audit, models.AuditActionDelete, h.entity), h.Delete)
	admin.POST("/import", middleware.Audit(audit, models.AuditActionImport, h.entity), h.Import)
}
