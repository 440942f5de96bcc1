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

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler holds dependencies for sign-up, sign-in and sign-out handlers
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// SignUp handles account registration
func (h *SessionHandler) SignUp(c echo.Context) error {
	var req usecase.CredentialsInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-up input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	actor, err := h.sessionUC.SignUp(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, actor)
}

// SignIn handles password sign-in
func (h *SessionHandler) SignIn(c echo.Context) error {
	var req usecase.CredentialsInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	session, err := h.sessionUC.SignIn(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, session)
}

// SignOut revokes the caller's tokens
func (h *SessionHandler) SignOut(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	if err := h.sessionUC.SignOut(c.Request().Context(), actor); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Signed out"})
}

// Me returns the resolved caller
func (h *SessionHandler) Me(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	return response.Success(c, http.StatusOK, actor)
}
