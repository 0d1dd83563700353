package api

import (
	"context"
	"errors"
	"net/http"

	"featureboard/internal/dto/req"
	"featureboard/internal/dto/resp"
	"featureboard/internal/grid"
	"featureboard/internal/modal"
	"featureboard/internal/model"
	"featureboard/internal/service"

	"github.com/gin-gonic/gin"
)

type PageLoader interface {
	Load(ctx context.Context) (*service.Page, error)
	Options(ctx context.Context) grid.Options
}

type FeatureProvider interface {
	GetFeature(ctx context.Context, id string) (*model.Feature, error)
	UpdateFeature(ctx context.Context, r req.EditFeatureRequest) error
	DeleteFeature(ctx context.Context, id string) error
	CreateFeature(ctx context.Context, r req.CreateFeatureRequest) (*model.Feature, error)
	Health(ctx context.Context) error
}

// FeatureHandler serves the JSON API.
type FeatureHandler struct {
	pages    PageLoader
	service  FeatureProvider
	dialogs  *modal.Registry
	pageSize int
}

func NewFeatureHandler(pages PageLoader, service FeatureProvider, dialogs *modal.Registry, pageSize int) *FeatureHandler {
	return &FeatureHandler{
		pages:    pages,
		service:  service,
		dialogs:  dialogs,
		pageSize: pageSize,
	}
}

// ListFeatures returns the page of the table described by the query string.
func (h *FeatureHandler) ListFeatures(c *gin.Context) {
	page, err := h.pages.Load(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": service.UserMessage(err)})
		return
	}
	table := grid.New(page.Features, page.Options, grid.ParseState(c.Request.URL.Query(), h.pageSize))
	c.JSON(http.StatusOK, resp.TableResponse{View: table.View(), Toolbar: table.Toolbar()})
}

func (h *FeatureHandler) ListOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.pages.Options(c.Request.Context()))
}

func (h *FeatureHandler) GetFeature(c *gin.Context) {
	f, err := h.service.GetFeature(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": userMessage(err)})
		return
	}
	c.JSON(http.StatusOK, resp.NewFeatureDetail(f))
}

func (h *FeatureHandler) CreateFeature(c *gin.Context) {
	var r req.CreateFeatureRequest
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON format error"})
		return
	}
	if err := r.Validate(); err != nil {
		validationError(c, err)
		return
	}

	var created *model.Feature
	d := modal.NewDialog(modal.KindAdd, "")
	d.Open()
	err := d.Submit(c.Request.Context(), func(ctx context.Context) error {
		f, err := h.service.CreateFeature(ctx, r)
		created = f
		return err
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": userMessage(err)})
		return
	}
	c.JSON(http.StatusCreated, resp.CreateFeatureResponse{ID: created.ID, Message: msgCreated})
}

func (h *FeatureHandler) UpdateFeature(c *gin.Context) {
	var r req.EditFeatureRequest
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "JSON format error"})
		return
	}
	r.ID = c.Param("id")
	if err := r.Validate(); err != nil {
		validationError(c, err)
		return
	}

	_, err := h.dialogs.Submit(c.Request.Context(), modal.KindEdit, r.ID, func(ctx context.Context) error {
		return h.service.UpdateFeature(ctx, r)
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": userMessage(err)})
		return
	}
	c.JSON(http.StatusOK, resp.MessageResponse{Message: msgUpdated})
}

func (h *FeatureHandler) DeleteFeature(c *gin.Context) {
	id := c.Param("id")
	_, err := h.dialogs.Submit(c.Request.Context(), modal.KindDelete, id, func(ctx context.Context) error {
		return h.service.DeleteFeature(ctx, id)
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": userMessage(err)})
		return
	}
	c.JSON(http.StatusOK, resp.MessageResponse{Message: msgDeleted})
}

func (h *FeatureHandler) HealthCheck(c *gin.Context) {
	if err := h.service.Health(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func validationError(c *gin.Context, err error) {
	var fe req.FieldErrors
	if errors.As(err, &fe) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "validation failed", "fields": fe})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
