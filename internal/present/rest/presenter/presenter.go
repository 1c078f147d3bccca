package presenter

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/trace"

	"github.com/totegamma/linksera/internal/domain"
	"github.com/totegamma/linksera/internal/utils"
)

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Errors *utils.OrderedMap[string] `json:"errors"`
}

// OK wraps a successful response.
func OK(c echo.Context, payload any) error {
	return c.JSON(http.StatusOK, payload)
}

func Created(c echo.Context, payload any) error {
	return c.JSON(http.StatusCreated, payload)
}

func BadRequest(c echo.Context, err error) error {
	slog.InfoContext(c.Request().Context(), "bad request",
		slog.String("error", err.Error()),
		slog.String("module", "rest"),
	)
	return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func NotFound(c echo.Context, msg string) error {
	slog.InfoContext(c.Request().Context(), "not found",
		slog.String("error", msg),
		slog.String("module", "rest"),
	)
	return c.JSON(http.StatusNotFound, errorResponse{Error: msg})
}

// Unprocessable reports every field error, keyed by field in form order.
func Unprocessable(c echo.Context, verr *domain.ValidationError) error {
	errs := utils.NewOrderedMap[string]()
	for _, f := range verr.Fields {
		errs.Set(f.Field, f.Message)
	}
	return c.JSON(http.StatusUnprocessableEntity, validationResponse{Errors: errs})
}

func InternalError(c echo.Context, err error) error {
	ctx := c.Request().Context()
	span := trace.SpanFromContext(ctx)
	span.RecordError(err)

	slog.ErrorContext(ctx, "internal error",
		slog.String("error", err.Error()),
		slog.String("traceID", span.SpanContext().TraceID().String()),
		slog.String("module", "rest"),
	)
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
}
