package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/jeemhub/fawazv7/common/middleware"
	"github.com/jeemhub/fawazv7/models"
	"github.com/jeemhub/fawazv7/services"
)

type fakeCheckoutService struct {
	summary   *models.OrderSummary
	err       *services.ServiceError
	gotReq    models.CheckoutRequest
	gotSessID string
}

func (f *fakeCheckoutService) Compose(_ context.Context, sessionID string, req models.CheckoutRequest) (*models.OrderSummary, *services.ServiceError) {
	f.gotSessID = sessionID
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.summary, nil
}

func (f *fakeCheckoutService) ShippingTiers() []models.ShippingTier {
	return []models.ShippingTier{
		{Code: models.ShippingStandard, Fee: 10000, Label: "All provinces", LabelAr: "باقي المحافظات"},
		{Code: models.ShippingReduced, Fee: 5000, Label: "Baghdad", LabelAr: "بغداد"},
	}
}

func newCheckoutRouter(svc services.CheckoutAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewCheckoutController(svc)

	router := gin.New()
	router.Use(middleware.Session())
	router.GET("/checkout/shipping", controller.GetShippingTiers)
	router.POST("/checkout", controller.Checkout)
	return router
}

func TestGetShippingTiers(t *testing.T) {
	router := newCheckoutRouter(&fakeCheckoutService{})

	req := httptest.NewRequest(http.MethodGet, "/checkout/shipping", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Tiers []models.ShippingTier `json:"tiers"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Tiers, 2)
	assert.Equal(t, models.ShippingStandard, resp.Tiers[0].Code)
	assert.Equal(t, 5000.0, resp.Tiers[1].Fee)
}

func TestCheckoutReturnsSummary(t *testing.T) {
	svc := &fakeCheckoutService{summary: &models.OrderSummary{
		Message:     "New Order - Fawaz Office",
		WhatsAppURL: "https://wa.me/9647700000000?text=hello",
		Subtotal:    250,
		ShippingFee: 5000,
		Total:       5250,
	}}
	router := newCheckoutRouter(svc)

	body := `{"name":"Ali","phone":"07700000000","address":"Baghdad, Karrada","shipping_tier":"reduced"}`
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.SessionHeader, "s1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "s1", svc.gotSessID)
	assert.Equal(t, "Ali", svc.gotReq.Name)
	assert.Equal(t, models.ShippingReduced, svc.gotReq.ShippingTier)

	var resp models.OrderSummary
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5250.0, resp.Total)
	assert.Contains(t, resp.WhatsAppURL, "https://wa.me/")
}

func TestCheckoutMissingFields(t *testing.T) {
	svc := &fakeCheckoutService{}
	router := newCheckoutRouter(svc)

	body := `{"name":"Ali"}`
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.gotReq.Name)
}

func TestCheckoutServiceErrorPassedThrough(t *testing.T) {
	svc := &fakeCheckoutService{err: &services.ServiceError{StatusCode: http.StatusBadRequest, Message: "cart is empty"}}
	router := newCheckoutRouter(svc)

	body := `{"name":"Ali","phone":"07700000000","address":"Baghdad","shipping_tier":"standard"}`
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "cart is empty")
}
