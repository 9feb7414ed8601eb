package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurpe/paintraffle/internal/http/middleware"
	"github.com/nurpe/paintraffle/internal/lifecycle"
	"github.com/nurpe/paintraffle/internal/service"
)

type projectRequest struct {
	Name         string  `json:"name" binding:"required"`
	Location     string  `json:"location" binding:"required"`
	SquareMeters float64 `json:"squareMeters" binding:"required"`
	Liters       int     `json:"liters"`
	PaintType    string  `json:"paintType"`
	Description  string  `json:"description"`
}

func (req projectRequest) toInput() service.ProjectInput {
	return service.ProjectInput{
		Name:         req.Name,
		Location:     req.Location,
		SquareMeters: req.SquareMeters,
		Liters:       req.Liters,
		PaintType:    req.PaintType,
		Description:  req.Description,
	}
}

func (h *Handler) submitProject(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projects.Submit(c.Request.Context(), principal, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

func (h *Handler) listProjects(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	projects, err := h.projects.ListMine(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *Handler) getProject(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	project, err := h.projects.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) updateProject(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projects.Update(c.Request.Context(), principal, id, req.toInput())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) uploadImages(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form required"})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no images provided"})
		return
	}

	uploads := make([]service.ImageUpload, 0, len(files))
	var closers []interface{ Close() error }
	defer func() {
		for _, closer := range closers {
			_ = closer.Close()
		}
	}()
	for _, file := range files {
		opened, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file " + file.Filename})
			return
		}
		closers = append(closers, opened)
		uploads = append(uploads, service.ImageUpload{
			FileName:    file.Filename,
			ContentType: file.Header.Get("Content-Type"),
			Body:        opened,
		})
	}

	results, err := h.projects.UploadImages(c.Request.Context(), principal, id, uploads)
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusCreated
	for _, result := range results {
		if result.Error != "" {
			// Partial failure is surfaced, not rolled back.
			status = http.StatusMultiStatus
			break
		}
	}
	c.JSON(status, gin.H{"results": results})
}

func (h *Handler) deleteImage(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}
	imageID, err := uuid.Parse(c.Param("imageID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image id"})
		return
	}

	if err := h.projects.DeleteImage(c.Request.Context(), principal, projectID, imageID); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type reviewRequest struct {
	Decision      string `json:"decision" binding:"required"`
	Notes         string `json:"notes"`
	PhysicalCheck bool   `json:"physicalCheck"`
}

func (h *Handler) reviewProject(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var decision lifecycle.Decision
	switch strings.ToLower(strings.TrimSpace(req.Decision)) {
	case "validate", "validated":
		decision = lifecycle.DecisionValidate
	case "reject", "rejected":
		decision = lifecycle.DecisionReject
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid decision"})
		return
	}

	project, err := h.projects.Review(c.Request.Context(), principal, id, service.ReviewInput{
		Decision:      decision,
		Notes:         req.Notes,
		PhysicalCheck: req.PhysicalCheck,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *Handler) adminListProjects(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var regionCode, subRegionCode *string
	if value := strings.TrimSpace(c.Query("region")); value != "" {
		regionCode = &value
	}
	if value := strings.TrimSpace(c.Query("subregion")); value != "" {
		subRegionCode = &value
	}

	projects, err := h.projects.AdminList(c.Request.Context(), principal, regionCode, subRegionCode)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}
