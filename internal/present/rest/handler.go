package rest

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/totegamma/linksera/internal/domain"
	"github.com/totegamma/linksera/internal/form"
	"github.com/totegamma/linksera/internal/present/rest/presenter"
	"github.com/totegamma/linksera/internal/service"
	"github.com/totegamma/linksera/internal/usecase"
)

type Handler struct {
	listings  *usecase.ListingUsecase
	table     *usecase.TableUsecase
	signal    *service.SignalService
	templates *template.Template
}

func NewHandler(
	listings *usecase.ListingUsecase,
	table *usecase.TableUsecase,
	signal *service.SignalService,
) (*Handler, error) {
	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	return &Handler{
		listings:  listings,
		table:     table,
		signal:    signal,
		templates: templates,
	}, nil
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/my-websites")
	})
	e.GET("/my-websites", h.handleIndex)
	e.GET("/my-websites/add-website", h.handleNewForm)
	e.POST("/my-websites/add-website", h.handleCreate)
	e.POST("/my-websites/form/fields", h.handleFields)
	e.GET("/my-websites/:id", h.handleEditForm)
	e.POST("/my-websites/:id", h.handleUpdate)

	api := e.Group("/api/v1")
	api.GET("/listings", h.handleListListings)
	api.POST("/listings", h.handleCreateListing)
	api.GET("/listings/:id", h.handleGetListing)
	api.PUT("/listings/:id", h.handleUpdateListing)
	api.GET("/reference", h.handleReference)

	e.GET("/realtime", h.handleRealtime)
	e.GET("/healthz", h.handleHealthz)
}

func (h *Handler) handleHealthz(c echo.Context) error {
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleListListings(c echo.Context) error {
	ctx := c.Request().Context()

	table, err := h.table.Page(ctx, pageParam(c))
	if err != nil {
		return presenter.InternalError(c, err)
	}

	etag := `"` + table.Version + `"`
	c.Response().Header().Set("ETag", etag)
	if c.Request().Header.Get("If-None-Match") == etag {
		return c.NoContent(http.StatusNotModified)
	}

	return presenter.OK(c, table)
}

func (h *Handler) handleGetListing(c echo.Context) error {
	ctx := c.Request().Context()

	listing, err := h.listings.Get(ctx, c.Param("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return presenter.NotFound(c, "listing not found")
	}
	if err != nil {
		return presenter.InternalError(c, err)
	}

	return presenter.OK(c, listing)
}

func (h *Handler) handleCreateListing(c echo.Context) error {
	ctx := c.Request().Context()

	var body domain.Listing
	if err := c.Bind(&body); err != nil {
		return presenter.BadRequest(c, err)
	}

	listing, err := h.listings.Submit(ctx, "", form.FromListing(body))
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return presenter.Unprocessable(c, verr)
	}
	if err != nil {
		return presenter.InternalError(c, err)
	}

	return presenter.Created(c, listing)
}

func (h *Handler) handleUpdateListing(c echo.Context) error {
	ctx := c.Request().Context()

	var body domain.Listing
	if err := c.Bind(&body); err != nil {
		return presenter.BadRequest(c, err)
	}

	listing, err := h.listings.Submit(ctx, c.Param("id"), form.FromListing(body))
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return presenter.Unprocessable(c, verr)
	case errors.Is(err, domain.ErrNotFound):
		return presenter.NotFound(c, "listing not found")
	case err != nil:
		return presenter.InternalError(c, err)
	}

	return presenter.OK(c, listing)
}

type countryResponse struct {
	domain.Country
	Flag string `json:"flag"`
}

func (h *Handler) handleReference(c echo.Context) error {
	countries := make([]countryResponse, 0, len(domain.Countries))
	for _, country := range domain.Countries {
		countries = append(countries, countryResponse{Country: country, Flag: country.Flag()})
	}

	return presenter.OK(c, echo.Map{
		"countries":    countries,
		"languages":    domain.Languages,
		"categories":   domain.Categories,
		"greyNiches":   domain.NicheLabels,
		"linksAllowed": domain.LinksAllowedOptions,
		"tagging":      domain.TaggingOptions,
		"offerTabs":    domain.OfferTabs,
	})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleRealtime pushes a message for every listing change until the peer
// goes away. Incoming messages are only read to notice the close.
func (h *Handler) handleRealtime(c echo.Context) error {
	events, release := h.signal.Subscribe()
	defer release()

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		slog.Error(
			"Failed to upgrade WebSocket",
			slog.String("error", err.Error()),
			slog.String("module", "socket"),
		)
		return err
	}
	defer ws.Close()

	ctx := c.Request().Context()

	quit := make(chan struct{})

	go func() {
		defer close(quit)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				var wsErr *websocket.CloseError
				if errors.As(err, &wsErr) {
					if wsErr.Code != websocket.CloseNormalClosure && wsErr.Code != websocket.CloseGoingAway {
						slog.DebugContext(
							ctx, "WebSocket closed",
							slog.String("error", wsErr.Error()),
							slog.String("module", "socket"),
						)
					}
				} else {
					slog.DebugContext(
						ctx, "Error reading message",
						slog.String("error", err.Error()),
						slog.String("module", "socket"),
					)
				}
				return
			}
		}
	}()

	for {
		select {
		case <-quit:
			return nil
		case <-ctx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if err := ws.WriteJSON(event); err != nil {
				slog.ErrorContext(
					ctx, "Error writing message",
					slog.String("error", err.Error()),
					slog.String("module", "socket"),
				)
				return nil
			}
		}
	}
}
