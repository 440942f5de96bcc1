package handler

import (
	"log/slog"
	"net/http"

	"canteen/internal/delivery/api/middleware"
	"canteen/internal/delivery/api/response"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/simulator"
	"canteen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InsightHandlerParams holds dependencies for InsightHandler, injected by Fx.
type InsightHandlerParams struct {
	fx.In

	InsightUC usecase.InsightUsecase
	Logger    *slog.Logger
}

// InsightHandler holds dependencies for derived-view handlers
type InsightHandler struct {
	insightUC usecase.InsightUsecase
	logger    *slog.Logger
}

// NewInsightHandler is the constructor for InsightHandler
func NewInsightHandler(params InsightHandlerParams) *InsightHandler {
	return &InsightHandler{
		insightUC: params.InsightUC,
		logger:    params.Logger,
	}
}

// View handles retrieving the caller's derived view
func (h *InsightHandler) View(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	view, err := h.insightUC.View(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view)
}

// AdminInsights handles retrieving the admin dashboard
func (h *InsightHandler) AdminInsights(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	insights, err := h.insightUC.AdminInsights(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, insights)
}

// Simulate handles a queue simulation run
func (h *InsightHandler) Simulate(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req simulator.Params
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid simulation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidSimulation.WithDetails(domainerrors.DetailsOf(err)))
	}

	result, err := h.insightUC.Simulate(c.Request().Context(), actor, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
