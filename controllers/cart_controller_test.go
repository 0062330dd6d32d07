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

// fakeCartService implements services.CartAPI on top of in-memory carts.
type fakeCartService struct {
	carts map[string]*models.Cart
}

func newFakeCartService() *fakeCartService {
	return &fakeCartService{carts: map[string]*models.Cart{}}
}

func (f *fakeCartService) cart(sessionID string) *models.Cart {
	if cart, ok := f.carts[sessionID]; ok {
		return cart
	}
	cart := models.NewCart(sessionID)
	f.carts[sessionID] = cart
	return cart
}

func (f *fakeCartService) Get(_ context.Context, sessionID string) (*models.Cart, *services.ServiceError) {
	return f.cart(sessionID), nil
}

func (f *fakeCartService) AddItem(_ context.Context, sessionID string, item models.CartItem) (*models.Cart, *services.ServiceError) {
	cart := f.cart(sessionID)
	cart.AddItem(item)
	return cart, nil
}

func (f *fakeCartService) UpdateQuantity(_ context.Context, sessionID, productID string, quantity int) (*models.Cart, *services.ServiceError) {
	cart := f.cart(sessionID)
	cart.UpdateQuantity(productID, quantity)
	return cart, nil
}

func (f *fakeCartService) RemoveItem(_ context.Context, sessionID, productID string) (*models.Cart, *services.ServiceError) {
	cart := f.cart(sessionID)
	cart.RemoveItem(productID)
	return cart, nil
}

func (f *fakeCartService) Clear(_ context.Context, sessionID string) *services.ServiceError {
	delete(f.carts, sessionID)
	return nil
}

func newCartRouter(svc services.CartAPI) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewCartController(svc, "/default.png")

	router := gin.New()
	router.Use(middleware.Session())
	router.GET("/cart", controller.GetCart)
	router.POST("/cart/add", controller.AddItem)
	router.PATCH("/cart/update/:product_id", controller.UpdateQuantity)
	router.DELETE("/cart/remove/:product_id", controller.RemoveItem)
	router.DELETE("/cart/clear", controller.ClearCart)
	return router
}

type cartResponse struct {
	Cart       models.Cart `json:"cart"`
	TotalItems int         `json:"total_items"`
	TotalPrice float64     `json:"total_price"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body, sessionID string) (*httptest.ResponseRecorder, cartResponse) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp cartResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestAddItemMergesAndReturnsTotals(t *testing.T) {
	router := newCartRouter(newFakeCartService())

	payload := `{"product_id":"p1","name":"Camera","name_ar":"كاميرا","price":100,"quantity":2,"image":"https://cdn.example.com/cam.jpg","category":"cameras"}`
	w, _ := doJSON(t, router, http.MethodPost, "/cart/add", payload, "s1")
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, router, http.MethodPost, "/cart/add", payload, "s1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Cart.Items, 1)
	assert.Equal(t, 4, resp.TotalItems)
	assert.Equal(t, 400.0, resp.TotalPrice)
}

func TestAddItemSubstitutesFallbackImage(t *testing.T) {
	router := newCartRouter(newFakeCartService())

	payload := `{"product_id":"p1","name":"Camera","price":100,"quantity":1,"image":""}`
	w, resp := doJSON(t, router, http.MethodPost, "/cart/add", payload, "s1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/default.png", resp.Cart.Items[0].Image)
}

func TestAddItemInvalidPayload(t *testing.T) {
	router := newCartRouter(newFakeCartService())

	w, _ := doJSON(t, router, http.MethodPost, "/cart/add", `{"price":100}`, "s1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateQuantityZeroRemovesItem(t *testing.T) {
	router := newCartRouter(newFakeCartService())

	payload := `{"product_id":"p1","name":"Camera","price":100,"quantity":2}`
	_, _ = doJSON(t, router, http.MethodPost, "/cart/add", payload, "s1")

	w, resp := doJSON(t, router, http.MethodPatch, "/cart/update/p1", `{"quantity":0}`, "s1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp.Cart.Items)
	assert.Equal(t, 0, resp.TotalItems)
}

func TestUpdateQuantityMissingBodyField(t *testing.T) {
	router := newCartRouter(newFakeCartService())

	w, _ := doJSON(t, router, http.MethodPatch, "/cart/update/p1", `{}`, "s1")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRemoveAndClear(t *testing.T) {
	router := newCartRouter(newFakeCartService())

	_, _ = doJSON(t, router, http.MethodPost, "/cart/add", `{"product_id":"p1","name":"A","price":100,"quantity":1}`, "s1")
	_, _ = doJSON(t, router, http.MethodPost, "/cart/add", `{"product_id":"p2","name":"B","price":50,"quantity":1}`, "s1")

	w, resp := doJSON(t, router, http.MethodDelete, "/cart/remove/p1", "", "s1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, resp.Cart.Items, 1)

	w, _ = doJSON(t, router, http.MethodDelete, "/cart/clear", "", "s1")
	assert.Equal(t, http.StatusOK, w.Code)

	_, resp = doJSON(t, router, http.MethodGet, "/cart", "", "s1")
	assert.Empty(t, resp.Cart.Items)
}

func TestSessionIsolation(t *testing.T) {
	router := newCartRouter(newFakeCartService())

	_, _ = doJSON(t, router, http.MethodPost, "/cart/add", `{"product_id":"p1","name":"A","price":100,"quantity":1}`, "s1")

	_, resp := doJSON(t, router, http.MethodGet, "/cart", "", "s2")
	assert.Empty(t, resp.Cart.Items)
}

func TestMissingSessionHeaderMintsID(t *testing.T) {
	router := newCartRouter(newFakeCartService())

	req := httptest.NewRequest(http.MethodGet, "/cart", strings.NewReader(""))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.SessionHeader))
}
