package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"canteen/internal/delivery/api/validator"
	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	mockUsecase "canteen/internal/mocks/usecase"
	"canteen/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testEmployee = entity.Actor{Role: entity.RoleEmployee, UserKey: "E100"}

func newTestOrderHandler(t *testing.T) (*OrderHandler, *mockUsecase.MockOrderUsecase) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)

	return NewOrderHandler(OrderHandlerParams{
		OrderUC: orderUC,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), orderUC
}

// newActorContext builds a context as Authenticate leaves it.
func newActorContext(method, target, body string, actor *entity.Actor) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	if actor != nil {
		c.Set("actor", *actor)
	}

	return c, rec
}

func TestOrderHandler_Book(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)

	orderUC.EXPECT().
		Book(mock.Anything, testEmployee, &usecase.BookOrderInput{ItemID: "item-1", Mode: entity.BookingModeNow}).
		Return(&entity.Order{ID: "order-1", Name: "Thali", Status: entity.OrderStatusPreparing}, nil)

	c, rec := newActorContext(http.MethodPost, "/api/v1/orders", `{"item_id":"item-1","mode":"now"}`, &testEmployee)

	require.NoError(t, h.Book(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"order-1"`)
	assert.Contains(t, rec.Body.String(), `"status":"Preparing"`)
}

func TestOrderHandler_Book_InvalidMode(t *testing.T) {
	h, _ := newTestOrderHandler(t)

	c, rec := newActorContext(http.MethodPost, "/api/v1/orders", `{"item_id":"item-1","mode":"later"}`, &testEmployee)

	require.NoError(t, h.Book(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Contains(t, rec.Body.String(), "mode must be one of: now prebook")
}

func TestOrderHandler_Book_Denied(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)

	orderUC.EXPECT().Book(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrOutsideWindow)

	c, rec := newActorContext(http.MethodPost, "/api/v1/orders", `{"item_id":"item-1","mode":"now"}`, &testEmployee)

	require.NoError(t, h.Book(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "OUTSIDE_WINDOW")
}

func TestOrderHandler_Book_NoActor(t *testing.T) {
	h, _ := newTestOrderHandler(t)

	c, rec := newActorContext(http.MethodPost, "/api/v1/orders", `{}`, nil)

	require.NoError(t, h.Book(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrderHandler_Advance(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)
	vendor := entity.Actor{Role: entity.RoleVendor, UserKey: "V1"}

	orderUC.EXPECT().
		Advance(mock.Anything, vendor, "order-1", &usecase.AdvanceOrderInput{Status: entity.OrderStatusReady}).
		Return(&entity.Order{ID: "order-1", Status: entity.OrderStatusReady}, nil)

	c, rec := newActorContext(http.MethodPost, "/api/v1/orders/order-1/status", `{"status":"Ready"}`, &vendor)
	c.SetParamNames("id")
	c.SetParamValues("order-1")

	require.NoError(t, h.Advance(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"Ready"`)
}

func TestOrderHandler_PickupQR(t *testing.T) {
	h, orderUC := newTestOrderHandler(t)
	png := []byte{0x89, 0x50, 0x4E, 0x47}

	orderUC.EXPECT().PickupQR(mock.Anything, testEmployee, "order-1").Return(png, nil)

	c, rec := newActorContext(http.MethodGet, "/api/v1/orders/order-1/qr", "", &testEmployee)
	c.SetParamNames("id")
	c.SetParamValues("order-1")

	require.NoError(t, h.PickupQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestOrderHandler_Pickup_MissingCode(t *testing.T) {
	h, _ := newTestOrderHandler(t)
	vendor := entity.Actor{Role: entity.RoleVendor, UserKey: "V1"}

	c, rec := newActorContext(http.MethodPost, "/api/v1/orders/pickup", `{}`, &vendor)

	require.NoError(t, h.Pickup(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "code is required")
}
