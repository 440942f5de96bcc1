package handler

import (
	"log/slog"
	"net/http"

	"canteen/internal/delivery/api/middleware"
	"canteen/internal/delivery/api/response"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler holds dependencies for admin profile handlers
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// Provision handles creating an unbound profile
func (h *ProfileHandler) Provision(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req usecase.ProvisionProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.Provision(c.Request().Context(), actor, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// List handles retrieving every profile
func (h *ProfileHandler) List(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	profiles, err := h.profileUC.List(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profiles)
}
