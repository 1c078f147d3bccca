package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/totegamma/linksera/internal/domain"
	"github.com/totegamma/linksera/internal/form"
	"github.com/totegamma/linksera/internal/present/rest/presenter"
	"github.com/totegamma/linksera/internal/usecase"
)

type indexPage struct {
	Title string
	Table usecase.Table
}

func pageParam(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil {
		return 1
	}
	return page
}

func (h *Handler) handleIndex(c echo.Context) error {
	ctx := c.Request().Context()

	table, err := h.table.Page(ctx, pageParam(c))
	if err != nil {
		return presenter.InternalError(c, err)
	}

	data := indexPage{Title: "My websites", Table: table}
	if isHTMX(c) {
		return h.render(c, http.StatusOK, "listing-table", data)
	}
	return h.render(c, http.StatusOK, "index.html", data)
}

func (h *Handler) handleNewForm(c echo.Context) error {
	values, err := h.listings.Form(c.Request().Context(), "")
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return h.render(c, http.StatusOK, "form.html", newFormPage("", values, nil))
}

func (h *Handler) handleEditForm(c echo.Context) error {
	id := c.Param("id")

	values, err := h.listings.Form(c.Request().Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		return presenter.NotFound(c, "listing not found")
	}
	if err != nil {
		return presenter.InternalError(c, err)
	}
	return h.render(c, http.StatusOK, "form.html", newFormPage(id, values, nil))
}

func (h *Handler) handleCreate(c echo.Context) error {
	return h.submitForm(c, "")
}

func (h *Handler) handleUpdate(c echo.Context) error {
	return h.submitForm(c, c.Param("id"))
}

// submitForm redirects to the index on success and re-renders the form with
// every field error otherwise.
func (h *Handler) submitForm(c echo.Context, id string) error {
	ctx := c.Request().Context()

	params, err := c.FormParams()
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	values := form.FromValues(params)

	_, err = h.listings.Submit(ctx, id, values)
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		values.Tab = form.ErrorTab(values.Tab, verr.Fields)
		return h.render(c, http.StatusUnprocessableEntity, "form.html", newFormPage(id, values, verr.Messages()))
	case errors.Is(err, domain.ErrNotFound):
		return presenter.NotFound(c, "listing not found")
	case err != nil:
		return presenter.InternalError(c, err)
	}

	if isHTMX(c) {
		c.Response().Header().Set("HX-Redirect", "/my-websites")
		return c.NoContent(http.StatusOK)
	}
	return c.Redirect(http.StatusSeeOther, "/my-websites")
}

// handleFields re-evaluates the conditional sections for the posted values.
func (h *Handler) handleFields(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return presenter.BadRequest(c, err)
	}
	values := form.FromValues(params)
	return h.render(c, http.StatusOK, "form-sections", newFormPage("", values, nil))
}
