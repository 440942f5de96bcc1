package handler

import (
	"io"
	"log/slog"
	"net/http"

	"canteen/internal/delivery/api/middleware"
	"canteen/internal/delivery/api/response"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MaxImageBytes bounds a menu image upload.
const MaxImageBytes = 5 << 20

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	MenuUC usecase.MenuUsecase
	Logger *slog.Logger
}

// MenuHandler holds dependencies for menu handlers
type MenuHandler struct {
	menuUC usecase.MenuUsecase
	logger *slog.Logger
}

// NewMenuHandler is the constructor for MenuHandler
func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{
		menuUC: params.MenuUC,
		logger: params.Logger,
	}
}

// List handles retrieving the catalog
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.menuUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

// Eligibility handles retrieving per-item booking eligibility
func (h *MenuHandler) Eligibility(c echo.Context) error {
	eligibility, err := h.menuUC.Eligibility(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, eligibility)
}

// Create handles adding a menu item
func (h *MenuHandler) Create(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req usecase.MenuItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.menuUC.Create(c.Request().Context(), actor, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

// Update handles replacing a menu item
func (h *MenuHandler) Update(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req usecase.MenuItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid menu item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	item, err := h.menuUC.Update(c.Request().Context(), actor, c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// Delete handles removing a menu item
func (h *MenuHandler) Delete(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	if err := h.menuUC.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Menu item deleted"})
}

// UploadImage handles a multipart image upload in the "image" field
func (h *MenuHandler) UploadImage(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Multipart field 'image' is required")
	}
	if fileHeader.Size > MaxImageBytes {
		return response.Error(c, http.StatusRequestEntityTooLarge, "IMAGE_TOO_LARGE", "Image exceeds 5MB", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable image")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxImageBytes))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unreadable image")
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}

	item, err := h.menuUC.UploadImage(c.Request().Context(), actor, c.Param("id"), &usecase.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// Image serves an uploaded menu image
func (h *MenuHandler) Image(c echo.Context) error {
	data, contentType, err := h.menuUC.Image(c.Request().Context(), c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Blob(http.StatusOK, contentType, data)
}
