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

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order lifecycle handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// Book handles placing an order
func (h *OrderHandler) Book(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req usecase.BookOrderInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.Book(c.Request().Context(), actor, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// List handles retrieving the orders visible to the caller
func (h *OrderHandler) List(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	orders, err := h.orderUC.List(c.Request().Context(), actor)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// Get handles retrieving one order
func (h *OrderHandler) Get(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	order, err := h.orderUC.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// Cancel handles an employee cancelling their pre-booking
func (h *OrderHandler) Cancel(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	order, err := h.orderUC.Cancel(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// Advance handles a vendor status change
func (h *OrderHandler) Advance(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req usecase.AdvanceOrderInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.Advance(c.Request().Context(), actor, c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// Pay handles marking an order paid
func (h *OrderHandler) Pay(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	order, err := h.orderUC.Pay(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// PickupQR handles rendering the pickup QR code of an order as PNG
func (h *OrderHandler) PickupQR(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	png, err := h.orderUC.PickupQR(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Pickup handles a vendor scanning a pickup QR code
func (h *OrderHandler) Pickup(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req usecase.PickupInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pickup input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.Pickup(c.Request().Context(), actor, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
