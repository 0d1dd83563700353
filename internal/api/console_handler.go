package api

import (
	"context"
	"errors"
	"net/http"

	"featureboard/internal/dto/req"
	"featureboard/internal/grid"
	"featureboard/internal/modal"
	"featureboard/internal/model"
	"featureboard/internal/service"
	"featureboard/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConsoleHandler serves the server-rendered console. Table state travels in
// the query string and every modal keeps it, so closing a modal returns to
// the same view.
type ConsoleHandler struct {
	pages    PageLoader
	service  FeatureProvider
	dialogs  *modal.Registry
	pageSize int
}

func NewConsoleHandler(pages PageLoader, service FeatureProvider, dialogs *modal.Registry, pageSize int) *ConsoleHandler {
	return &ConsoleHandler{
		pages:    pages,
		service:  service,
		dialogs:  dialogs,
		pageSize: pageSize,
	}
}

// errFeatureMissing is returned by a modal builder when the row is not on
// the freshly loaded page.
var errFeatureMissing = errors.New("feature not on page")

type modalBuilder func(page *service.Page) (*modalView, error)

func (h *ConsoleHandler) Index(c *gin.Context) {
	h.render(c, http.StatusOK, nil)
}

func (h *ConsoleHandler) View(c *gin.Context) {
	id := c.Param("id")
	h.render(c, http.StatusOK, func(page *service.Page) (*modalView, error) {
		f := findFeature(page.Features, id)
		if f == nil {
			return nil, errFeatureMissing
		}
		return viewModal(f, backURL(c)), nil
	})
}

func (h *ConsoleHandler) EditForm(c *gin.Context) {
	id := c.Param("id")
	h.render(c, http.StatusOK, func(page *service.Page) (*modalView, error) {
		f := findFeature(page.Features, id)
		if f == nil {
			return nil, errFeatureMissing
		}
		return editModal(editForm(f), f, page.Options, actionURL(c), backURL(c), openDialog(modal.KindEdit, id), nil), nil
	})
}

func (h *ConsoleHandler) Edit(c *gin.Context) {
	id := c.Param("id")
	var form req.EditFeatureRequest
	if err := c.ShouldBind(&form); err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid form submission.")
		return
	}
	form.ID = id

	if err := form.Validate(); err != nil {
		var fe req.FieldErrors
		if !errors.As(err, &fe) {
			h.renderError(c, http.StatusBadRequest, err.Error())
			return
		}
		h.render(c, http.StatusUnprocessableEntity, func(page *service.Page) (*modalView, error) {
			f := findFeature(page.Features, id)
			return editModal(form, f, page.Options, actionURL(c), backURL(c), openDialog(modal.KindEdit, id), fe), nil
		})
		return
	}

	d, err := h.dialogs.Submit(c.Request.Context(), modal.KindEdit, id, func(ctx context.Context) error {
		return h.service.UpdateFeature(ctx, form)
	})
	if err != nil {
		logger.Warn("edit failed", zap.String("feature_id", id), zap.Error(err))
		h.render(c, statusFor(err), func(page *service.Page) (*modalView, error) {
			f := findFeature(page.Features, id)
			m := editModal(form, f, page.Options, actionURL(c), backURL(c), d, nil)
			m.Error = userMessage(err)
			return m, nil
		})
		return
	}
	h.redirect(c, msgUpdated)
}

func (h *ConsoleHandler) DeleteForm(c *gin.Context) {
	id := c.Param("id")
	h.render(c, http.StatusOK, func(page *service.Page) (*modalView, error) {
		f := findFeature(page.Features, id)
		if f == nil {
			return nil, errFeatureMissing
		}
		return deleteModal(f, actionURL(c), backURL(c), openDialog(modal.KindDelete, id)), nil
	})
}

func (h *ConsoleHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	d, err := h.dialogs.Submit(c.Request.Context(), modal.KindDelete, id, func(ctx context.Context) error {
		return h.service.DeleteFeature(ctx, id)
	})
	if err != nil {
		logger.Warn("delete failed", zap.String("feature_id", id), zap.Error(err))
		h.render(c, statusFor(err), func(page *service.Page) (*modalView, error) {
			f := findFeature(page.Features, id)
			if f == nil {
				f = &model.Feature{Name: id}
			}
			m := deleteModal(f, actionURL(c), backURL(c), d)
			m.Error = userMessage(err)
			return m, nil
		})
		return
	}
	h.redirect(c, msgDeleted)
}

func (h *ConsoleHandler) NewForm(c *gin.Context) {
	h.render(c, http.StatusOK, func(*service.Page) (*modalView, error) {
		return addModal(req.CreateFeatureRequest{}, actionURL(c), backURL(c), openDialog(modal.KindAdd, ""), nil), nil
	})
}

func (h *ConsoleHandler) Create(c *gin.Context) {
	var form req.CreateFeatureRequest
	if err := c.ShouldBind(&form); err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid form submission.")
		return
	}

	d := openDialog(modal.KindAdd, "")

	if err := form.Validate(); err != nil {
		var fe req.FieldErrors
		if !errors.As(err, &fe) {
			h.renderError(c, http.StatusBadRequest, err.Error())
			return
		}
		h.render(c, http.StatusUnprocessableEntity, func(*service.Page) (*modalView, error) {
			return addModal(form, actionURL(c), backURL(c), d, fe), nil
		})
		return
	}

	err := d.Submit(c.Request.Context(), func(ctx context.Context) error {
		_, err := h.service.CreateFeature(ctx, form)
		return err
	})
	if err != nil {
		logger.Warn("create failed", zap.Error(err))
		h.render(c, statusFor(err), func(*service.Page) (*modalView, error) {
			m := addModal(form, actionURL(c), backURL(c), d, nil)
			m.Error = userMessage(err)
			return m, nil
		})
		return
	}
	h.redirect(c, msgCreated)
}

// render loads the page and draws the table, with the modal from build on
// top when build is non-nil.
func (h *ConsoleHandler) render(c *gin.Context, status int, build modalBuilder) {
	page, err := h.pages.Load(c.Request.Context())
	if err != nil {
		logger.Error("page load failed", zap.Error(err))
		h.renderError(c, http.StatusInternalServerError, service.UserMessage(err))
		return
	}

	data := pageData{Toast: takeFlash(c)}
	if build != nil {
		m, err := build(page)
		if err != nil {
			h.renderError(c, http.StatusNotFound, service.UserMessage(service.ErrFeatureNotFound))
			return
		}
		data.Modal = m
	}

	table := grid.New(page.Features, page.Options, grid.ParseState(c.Request.URL.Query(), h.pageSize))
	data.View = table.View()
	data.Toolbar = table.Toolbar()
	c.HTML(status, "index.html", data)
}

func (h *ConsoleHandler) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", errorData{Status: status, Message: message, BackURL: backURL(c)})
}

// redirect returns to the table with the same query and a success toast.
func (h *ConsoleHandler) redirect(c *gin.Context, message string) {
	setFlash(c, "success", message)
	c.Redirect(http.StatusSeeOther, backURL(c))
}

// openDialog is the dialog a form page shows. Only submissions are tracked
// by the registry; showing a form keeps no server state.
func openDialog(kind modal.Kind, row string) *modal.Dialog {
	d := modal.NewDialog(kind, row)
	d.Open()
	return d
}

func findFeature(features []model.Feature, id string) *model.Feature {
	for i := range features {
		if features[i].ID == id {
			return &features[i]
		}
	}
	return nil
}

func backURL(c *gin.Context) string {
	if q := c.Request.URL.RawQuery; q != "" {
		return "/?" + q
	}
	return "/"
}

func actionURL(c *gin.Context) string {
	if q := c.Request.URL.RawQuery; q != "" {
		return c.Request.URL.Path + "?" + q
	}
	return c.Request.URL.Path
}
