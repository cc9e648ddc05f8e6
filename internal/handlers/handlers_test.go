package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/caterquest/caterquest/internal/auth"
	"github.com/caterquest/caterquest/internal/catalog"
	"github.com/caterquest/caterquest/internal/kafka"
	"github.com/caterquest/caterquest/internal/models"
	"github.com/caterquest/caterquest/internal/repository/mocks"
	"github.com/caterquest/caterquest/internal/retry"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

var fastPolicy = retry.Policy{Wait: 0, MaxAttempts: 2}

type testEnv struct {
	users    *mocks.UserStoreMock
	menus    *mocks.MenuStoreMock
	orders   *mocks.OrderStoreMock
	ratings  *mocks.RatingStoreMock
	notifier *mocks.NotifierMock
	sessions *auth.Manager
	handler  *Handler
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:    &mocks.UserStoreMock{},
		menus:    &mocks.MenuStoreMock{},
		orders:   &mocks.OrderStoreMock{},
		ratings:  &mocks.RatingStoreMock{},
		notifier: &mocks.NotifierMock{},
		sessions: auth.NewManager(time.Hour),
	}
	env.handler = NewHandler(Deps{
		Users:      env.users,
		Menus:      env.menus,
		Orders:     env.orders,
		Ratings:    env.ratings,
		Sessions:   env.sessions,
		Notifier:   env.notifier,
		ReadPolicy: fastPolicy,
		BcryptCost: 4,
	})
	return env
}

// serve гоняет запрос через chi, чтобы URL-параметры попали в контекст.
func serve(h http.HandlerFunc, method, pattern, target string, body string, session *auth.Session) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.MethodFunc(method, pattern, h)

	req := httptest.NewRequest(method, target, bytes.NewReader([]byte(body)))
	if session != nil {
		req = req.WithContext(auth.WithSession(req.Context(), *session))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func customerSession() *auth.Session {
	return &auth.Session{Token: "tok-customer", UserID: 7, Username: "alice", Role: models.RoleCustomer}
}

func vendorSession() *auth.Session {
	return &auth.Session{Token: "tok-vendor", UserID: 8, Username: "plov-house", Role: models.RoleVendor}
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createErr  error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "customer registered",
			body:       `{"username":"alice","email":"alice@example.com","password":"secret1","role":"Customer","additional_data":{"customer_name":"Alice"}}`,
			wantStatus: http.StatusCreated,
			wantBody:   "Customer 'alice' registered successfully",
		},
		{
			name:       "duplicate username",
			body:       `{"username":"alice","email":"alice@example.com","password":"secret1","role":"Customer"}`,
			createErr:  models.ErrConflict,
			wantStatus: http.StatusBadRequest,
			wantBody:   "Username or email already exists",
		},
		{
			name:       "unknown role rejected",
			body:       `{"username":"alice","email":"alice@example.com","password":"secret1","role":"Admin"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv()
			env.users.CreateUserFunc = func(ctx context.Context, req models.RegisterRequest, hash string) (*models.AuthUser, error) {
				if tc.createErr != nil {
					return nil, tc.createErr
				}
				if hash == req.Password {
					t.Error("password stored without hashing")
				}
				return &models.AuthUser{UserID: 1, Username: req.Username, Role: req.Role}, nil
			}

			rec := serve(env.handler.RegisterHandler, http.MethodPost, "/register", "/register", tc.body, nil)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if tc.wantBody != "" && !strings.Contains(rec.Body.String(), tc.wantBody) {
				t.Errorf("body = %s, want substring %q", rec.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestLoginHandler(t *testing.T) {
	hash, err := auth.HashPassword("secret1", 4)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := &models.AuthUser{UserID: 7, Username: "alice", Role: models.RoleCustomer, PasswordHash: hash}

	tests := []struct {
		name       string
		body       string
		findErr    error
		wantStatus int
		wantCookie bool
	}{
		{
			name:       "valid credentials",
			body:       `{"username_or_email":"alice","password":"secret1","role":"Customer"}`,
			wantStatus: http.StatusOK,
			wantCookie: true,
		},
		{
			name:       "wrong password",
			body:       `{"username_or_email":"alice","password":"nope","role":"Customer"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown account",
			body:       `{"username_or_email":"ghost","password":"secret1","role":"Customer"}`,
			findErr:    models.ErrNotFound,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv()
			env.users.FindUserByLoginFunc = func(ctx context.Context, login string, role models.Role) (*models.AuthUser, error) {
				if tc.findErr != nil {
					return nil, tc.findErr
				}
				return user, nil
			}

			rec := serve(env.handler.LoginHandler, http.MethodPost, "/login", "/login", tc.body, nil)

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			var got *http.Cookie
			for _, c := range rec.Result().Cookies() {
				if c.Name == auth.SessionCookie {
					got = c
				}
			}
			if tc.wantCookie && got == nil {
				t.Fatal("session cookie not set")
			}
			if !tc.wantCookie && got != nil {
				t.Fatalf("unexpected session cookie %q", got.Value)
			}
			if got != nil {
				if _, ok := env.sessions.Get(got.Value); !ok {
					t.Error("cookie token is not a registered session")
				}
			}
		})
	}
}

func TestSessionMiddleware(t *testing.T) {
	sessions := auth.NewManager(time.Hour)
	session := sessions.Create(&models.AuthUser{UserID: 7, Username: "alice", Role: models.RoleCustomer})

	protected := sessions.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := auth.FromContext(r.Context())
		if !ok || s.UserID != 7 {
			t.Error("session missing from request context")
		}
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("no cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders", nil))
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
		}
		if !strings.Contains(rec.Body.String(), `"error"`) {
			t.Errorf("body = %s, want JSON error", rec.Body.String())
		}
	})

	t.Run("valid cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: session.Token})
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("stale token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders", nil)
		req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: "expired"})
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
		}
	})
}

func TestVendorsHandler(t *testing.T) {
	t.Run("bad min_rating", func(t *testing.T) {
		env := newTestEnv()
		env.handler.deps.Catalog = catalog.NewService(&mocks.VendorCatalogMock{}, &mocks.ListingCacheMock{}, fastPolicy)

		rec := serve(env.handler.VendorsHandler, http.MethodGet, "/vendors", "/vendors?min_rating=high", "", nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
	})

	t.Run("cached payload returned verbatim", func(t *testing.T) {
		payload := []byte(`[{"vendor_id":1}]`)
		cache := &mocks.ListingCacheMock{
			LookupFunc: func(key string) ([]byte, bool) { return payload, true },
		}
		store := &mocks.VendorCatalogMock{}
		env := newTestEnv()
		env.handler.deps.Catalog = catalog.NewService(store, cache, fastPolicy)

		rec := serve(env.handler.VendorsHandler, http.MethodGet, "/vendors", "/vendors", "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if rec.Body.String() != string(payload) {
			t.Errorf("body = %s, want verbatim %s", rec.Body.String(), payload)
		}
		if store.FindVendorsCalls != 0 {
			t.Errorf("FindVendors called %d times on cache hit", store.FindVendorsCalls)
		}
	})

	t.Run("retries exhausted", func(t *testing.T) {
		store := &mocks.VendorCatalogMock{
			FindVendorsFunc: func(ctx context.Context, f models.VendorFilter) ([]models.Vendor, error) {
				return nil, errors.New("connection refused")
			},
		}
		env := newTestEnv()
		env.handler.deps.Catalog = catalog.NewService(store, &mocks.ListingCacheMock{}, fastPolicy)

		rec := serve(env.handler.VendorsHandler, http.MethodGet, "/vendors", "/vendors", "", nil)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
		}
		if !strings.Contains(rec.Body.String(), "Failed to fetch vendors after retries.") {
			t.Errorf("body = %s", rec.Body.String())
		}
		if store.FindVendorsCalls != fastPolicy.MaxAttempts {
			t.Errorf("FindVendors called %d times, want %d", store.FindVendorsCalls, fastPolicy.MaxAttempts)
		}
	})
}

func TestPlaceOrderHandler(t *testing.T) {
	t.Run("invalid item rejects whole order", func(t *testing.T) {
		env := newTestEnv()
		env.users.CustomerByUserIDFunc = func(ctx context.Context, userID int64) (*models.Customer, error) {
			return &models.Customer{CustomerID: 11, UserID: userID}, nil
		}
		env.orders.CreateOrdersFunc = func(ctx context.Context, vendorID, customerID int64, lines []models.OrderLine) ([]models.Order, error) {
			return nil, models.ErrInvalidItem
		}

		body := `{"vendorID":3,"items":[{"menuID":1,"price":"10.00","quantity":2},{"menuID":99,"price":"5.00","quantity":1}]}`
		rec := serve(env.handler.PlaceOrderHandler, http.MethodPost, "/orders", "/orders", body, customerSession())

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		if env.notifier.NewOrderCalls != 0 {
			t.Errorf("new_order published %d times for rejected order", env.notifier.NewOrderCalls)
		}
	})

	t.Run("valid order publishes total", func(t *testing.T) {
		env := newTestEnv()
		env.users.CustomerByUserIDFunc = func(ctx context.Context, userID int64) (*models.Customer, error) {
			return &models.Customer{CustomerID: 11, UserID: userID}, nil
		}
		var gotLines []models.OrderLine
		env.orders.CreateOrdersFunc = func(ctx context.Context, vendorID, customerID int64, lines []models.OrderLine) ([]models.Order, error) {
			if vendorID != 3 || customerID != 11 {
				t.Errorf("CreateOrders(%d, %d), want (3, 11)", vendorID, customerID)
			}
			gotLines = lines
			orders := make([]models.Order, len(lines))
			for i, l := range lines {
				orders[i] = models.Order{OrderID: int64(i + 1), VendorID: vendorID, CustomerID: customerID, MenuID: l.MenuID, Quantity: l.Quantity, TotalPrice: l.Subtotal()}
			}
			return orders, nil
		}

		body := `{"vendorID":3,"items":[{"menuID":1,"price":"10.00","quantity":2},{"menuID":2,"price":"5.00","quantity":1}]}`
		rec := serve(env.handler.PlaceOrderHandler, http.MethodPost, "/orders", "/orders", body, customerSession())

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
		}
		if len(gotLines) != 2 {
			t.Fatalf("CreateOrders got %d lines, want 2", len(gotLines))
		}
		if !gotLines[0].Subtotal().Equal(decimal.RequireFromString("20.00")) {
			t.Errorf("first line subtotal = %s, want 20.00", gotLines[0].Subtotal())
		}
		if len(env.notifier.NewOrderEvents) != 1 {
			t.Fatalf("new_order published %d times, want 1", len(env.notifier.NewOrderEvents))
		}
		event := env.notifier.NewOrderEvents[0]
		if event.VendorID != 3 {
			t.Errorf("event vendor = %d, want 3", event.VendorID)
		}
		if event.TotalPrice != "25.00" {
			t.Errorf("event total = %s, want 25.00", event.TotalPrice)
		}
		if len(event.Orders) != 2 || event.Orders[0].Price != "10.00" {
			t.Errorf("event lines = %+v", event.Orders)
		}
	})

	t.Run("vendor role denied", func(t *testing.T) {
		env := newTestEnv()
		body := `{"vendorID":3,"items":[{"menuID":1,"price":"10.00","quantity":1}]}`
		rec := serve(env.handler.PlaceOrderHandler, http.MethodPost, "/orders", "/orders", body, vendorSession())
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
		}
		if env.orders.CreateOrdersCalls != 0 {
			t.Error("CreateOrders called for wrong role")
		}
	})
}

func TestReviewHandler(t *testing.T) {
	avg := 4.333333
	tests := []struct {
		name         string
		body         string
		vendorExists bool
		addErr       error
		wantStatus   int
		wantBody     string
	}{
		{
			name:         "review added",
			body:         `{"Stars":5,"Description":"great plov"}`,
			vendorExists: true,
			wantStatus:   http.StatusCreated,
			wantBody:     `"avg_rating":4.33`,
		},
		{
			name:         "duplicate review",
			body:         `{"Stars":4,"Description":"again"}`,
			vendorExists: true,
			addErr:       models.ErrConflict,
			wantStatus:   http.StatusBadRequest,
			wantBody:     "You have already reviewed this vendor.",
		},
		{
			name:         "vendor missing",
			body:         `{"Stars":4,"Description":"where"}`,
			vendorExists: false,
			wantStatus:   http.StatusNotFound,
			wantBody:     "Vendor not found",
		},
		{
			name:         "stars out of range",
			body:         `{"Stars":6,"Description":"too good"}`,
			vendorExists: true,
			wantStatus:   http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv()
			env.users.CustomerByUserIDFunc = func(ctx context.Context, userID int64) (*models.Customer, error) {
				return &models.Customer{CustomerID: 11, UserID: userID}, nil
			}
			env.ratings.VendorExistsFunc = func(ctx context.Context, vendorID int64) (bool, error) {
				return tc.vendorExists, nil
			}
			env.ratings.AddRatingFunc = func(ctx context.Context, r *models.Rating) error {
				if r.VendorID != 5 || r.CustomerID != 11 {
					t.Errorf("rating = %+v, want vendor 5 customer 11", r)
				}
				return tc.addErr
			}
			env.ratings.AverageRatingFunc = func(ctx context.Context, vendorID int64) (*float64, error) {
				return &avg, nil
			}

			rec := serve(env.handler.ReviewHandler, http.MethodPost, "/vendors/{vendor_id}/review", "/vendors/5/review", tc.body, customerSession())

			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if tc.wantBody != "" && !strings.Contains(rec.Body.String(), tc.wantBody) {
				t.Errorf("body = %s, want substring %q", rec.Body.String(), tc.wantBody)
			}
		})
	}
}

func TestMenuHandlers(t *testing.T) {
	vendorProfile := func(env *testEnv) {
		env.users.VendorByUserIDFunc = func(ctx context.Context, userID int64) (*models.Vendor, error) {
			return &models.Vendor{VendorID: 3, UserID: userID, VendorName: "Plov House"}, nil
		}
	}

	t.Run("list formats prices", func(t *testing.T) {
		env := newTestEnv()
		vendorProfile(env)
		env.menus.MenuByVendorFunc = func(ctx context.Context, vendorID int64) ([]models.Menu, error) {
			return []models.Menu{{MenuID: 1, VendorID: vendorID, FoodItem: "Plov", Price: decimal.RequireFromString("12.5")}}, nil
		}

		rec := serve(env.handler.MenuListHandler, http.MethodGet, "/menu", "/menu", "", vendorSession())
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
		}
		var got struct {
			Menu []menuItemView `json:"menu"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(got.Menu) != 1 || got.Menu[0].Price != "12.50" {
			t.Errorf("menu = %+v, want one item priced 12.50", got.Menu)
		}
	})

	t.Run("add requires positive price", func(t *testing.T) {
		env := newTestEnv()
		vendorProfile(env)

		rec := serve(env.handler.MenuAddHandler, http.MethodPost, "/menu", "/menu", `{"FoodItem":"Plov","Price":"0"}`, vendorSession())
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		if !strings.Contains(rec.Body.String(), "FoodItem and Price are required") {
			t.Errorf("body = %s", rec.Body.String())
		}
		if env.menus.AddMenuItemCalls != 0 {
			t.Error("AddMenuItem called for invalid request")
		}
	})

	t.Run("add stores item for session vendor", func(t *testing.T) {
		env := newTestEnv()
		vendorProfile(env)
		env.menus.AddMenuItemFunc = func(ctx context.Context, item *models.Menu) error {
			if item.VendorID != 3 || item.FoodItem != "Lagman" {
				t.Errorf("item = %+v, want vendor 3 Lagman", item)
			}
			return nil
		}

		rec := serve(env.handler.MenuAddHandler, http.MethodPost, "/menu", "/menu", `{"FoodItem":"Lagman","Price":"9.90"}`, vendorSession())
		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("partial update keeps unset fields", func(t *testing.T) {
		env := newTestEnv()
		vendorProfile(env)
		env.menus.MenuItemFunc = func(ctx context.Context, menuID, vendorID int64) (*models.Menu, error) {
			return &models.Menu{MenuID: menuID, VendorID: vendorID, FoodItem: "Plov", Price: decimal.RequireFromString("10.00"), Description: "with lamb"}, nil
		}
		var updated *models.Menu
		env.menus.UpdateMenuItemFunc = func(ctx context.Context, item *models.Menu) error {
			updated = item
			return nil
		}

		rec := serve(env.handler.MenuUpdateHandler, http.MethodPut, "/menu/{menu_id}", "/menu/5", `{"Price":"12.50"}`, vendorSession())
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
		}
		if updated == nil {
			t.Fatal("UpdateMenuItem not called")
		}
		if updated.FoodItem != "Plov" || updated.Description != "with lamb" {
			t.Errorf("unset fields changed: %+v", updated)
		}
		if !updated.Price.Equal(decimal.RequireFromString("12.50")) {
			t.Errorf("price = %s, want 12.50", updated.Price)
		}
	})

	t.Run("update of foreign item", func(t *testing.T) {
		env := newTestEnv()
		vendorProfile(env)
		env.menus.MenuItemFunc = func(ctx context.Context, menuID, vendorID int64) (*models.Menu, error) {
			return nil, models.ErrNotFound
		}

		rec := serve(env.handler.MenuUpdateHandler, http.MethodPut, "/menu/{menu_id}", "/menu/5", `{"Price":"12.50"}`, vendorSession())
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
		if !strings.Contains(rec.Body.String(), "Menu item not found or access denied") {
			t.Errorf("body = %s", rec.Body.String())
		}
	})

	t.Run("customer role denied", func(t *testing.T) {
		env := newTestEnv()
		rec := serve(env.handler.MenuListHandler, http.MethodGet, "/menu", "/menu", "", customerSession())
		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusForbidden)
		}
	})
}

func TestOrderStatusHandler(t *testing.T) {
	vendorProfile := func(env *testEnv) {
		env.users.VendorByUserIDFunc = func(ctx context.Context, userID int64) (*models.Vendor, error) {
			return &models.Vendor{VendorID: 3, UserID: userID}, nil
		}
	}

	t.Run("invalid status", func(t *testing.T) {
		env := newTestEnv()
		vendorProfile(env)

		rec := serve(env.handler.OrderStatusHandler, http.MethodPut, "/orders/{order_id}", "/orders/9", `{"OrderStatus":"Shipped"}`, vendorSession())
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		if !strings.Contains(rec.Body.String(), "Invalid order status.") {
			t.Errorf("body = %s", rec.Body.String())
		}
		if env.orders.UpdateOrderStatusCalls != 0 {
			t.Error("UpdateOrderStatus called for invalid status")
		}
	})

	t.Run("foreign order", func(t *testing.T) {
		env := newTestEnv()
		vendorProfile(env)
		env.orders.UpdateOrderStatusFunc = func(ctx context.Context, orderID, vendorID int64, status models.OrderStatus) (*models.Order, string, error) {
			return nil, "", models.ErrNotFound
		}

		rec := serve(env.handler.OrderStatusHandler, http.MethodPut, "/orders/{order_id}", "/orders/9", `{"OrderStatus":"Completed"}`, vendorSession())
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
		if !strings.Contains(rec.Body.String(), "Order not found or access denied.") {
			t.Errorf("body = %s", rec.Body.String())
		}
		if env.notifier.OrderStatusUpdateCalls != 0 {
			t.Error("status event published for failed update")
		}
	})

	t.Run("store rejects status", func(t *testing.T) {
		env := newTestEnv()
		vendorProfile(env)
		env.orders.UpdateOrderStatusFunc = func(ctx context.Context, orderID, vendorID int64, status models.OrderStatus) (*models.Order, string, error) {
			return nil, "", models.ErrInvalidStatus
		}

		rec := serve(env.handler.OrderStatusHandler, http.MethodPut, "/orders/{order_id}", "/orders/9", `{"OrderStatus":"Completed"}`, vendorSession())
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		if env.notifier.OrderStatusUpdateCalls != 0 {
			t.Error("status event published for rejected update")
		}
	})

	t.Run("status updated and published", func(t *testing.T) {
		env := newTestEnv()
		vendorProfile(env)
		env.orders.UpdateOrderStatusFunc = func(ctx context.Context, orderID, vendorID int64, status models.OrderStatus) (*models.Order, string, error) {
			if orderID != 9 || vendorID != 3 {
				t.Errorf("UpdateOrderStatus(%d, %d), want (9, 3)", orderID, vendorID)
			}
			return &models.Order{OrderID: orderID, VendorID: vendorID, OrderStatus: status}, "Alice", nil
		}

		rec := serve(env.handler.OrderStatusHandler, http.MethodPut, "/orders/{order_id}", "/orders/9", `{"OrderStatus":"Completed"}`, vendorSession())
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
		}
		if len(env.notifier.StatusEvents) != 1 {
			t.Fatalf("status events = %d, want 1", len(env.notifier.StatusEvents))
		}
		event := env.notifier.StatusEvents[0]
		if event.OrderID != 9 || event.NewStatus != models.OrderCompleted || event.CustomerName != "Alice" {
			t.Errorf("event = %+v", event)
		}
	})
}

func TestCustomerOrdersHandler(t *testing.T) {
	env := newTestEnv()
	env.users.CustomerByUserIDFunc = func(ctx context.Context, userID int64) (*models.Customer, error) {
		return &models.Customer{CustomerID: 11, UserID: userID}, nil
	}
	calls := 0
	env.orders.OrdersByCustomerFunc = func(ctx context.Context, customerID int64) ([]models.CustomerOrder, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("connection reset")
		}
		return []models.CustomerOrder{{OrderID: 1, MenuItem: "Plov", Quantity: 2, TotalPrice: "20.00", OrderStatus: models.OrderPending}}, nil
	}

	rec := serve(env.handler.CustomerOrdersHandler, http.MethodGet, "/orders/customer", "/orders/customer", "", customerSession())

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if calls != 2 {
		t.Errorf("OrdersByCustomer called %d times, want retry to recover on 2nd", calls)
	}
	if !strings.Contains(rec.Body.String(), `"MenuItem":"Plov"`) {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestChatRoomsHandler(t *testing.T) {
	t.Run("customer rooms", func(t *testing.T) {
		env := newTestEnv()
		env.users.CustomerByUserIDFunc = func(ctx context.Context, userID int64) (*models.Customer, error) {
			return &models.Customer{CustomerID: 11, UserID: userID}, nil
		}
		env.orders.ChatRoomVendorsFunc = func(ctx context.Context, customerID int64) ([]int64, error) {
			return []int64{3, 5}, nil
		}

		rec := serve(env.handler.ChatRoomsHandler, http.MethodGet, "/chat/rooms", "/chat/rooms", "", customerSession())
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
		}
		var got struct {
			Rooms []string `json:"rooms"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		want := []string{"room_3_11", "room_5_11"}
		if len(got.Rooms) != 2 || got.Rooms[0] != want[0] || got.Rooms[1] != want[1] {
			t.Errorf("rooms = %v, want %v", got.Rooms, want)
		}
	})

	t.Run("vendor rooms", func(t *testing.T) {
		env := newTestEnv()
		env.users.VendorByUserIDFunc = func(ctx context.Context, userID int64) (*models.Vendor, error) {
			return &models.Vendor{VendorID: 3, UserID: userID}, nil
		}
		env.orders.ChatRoomCustomersFunc = func(ctx context.Context, vendorID int64) ([]int64, error) {
			return []int64{11}, nil
		}

		rec := serve(env.handler.ChatRoomsHandler, http.MethodGet, "/chat/rooms", "/chat/rooms", "", vendorSession())
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
		}
		if !strings.Contains(rec.Body.String(), "room_3_11") {
			t.Errorf("body = %s", rec.Body.String())
		}
	})
}

func TestChatSendHandler(t *testing.T) {
	env := newTestEnv()
	var got kafka.ChatEvent
	env.notifier.ChatFunc = func(ctx context.Context, e kafka.ChatEvent) error {
		got = e
		return nil
	}

	rec := serve(env.handler.ChatSendHandler, http.MethodPost, "/chat/send", "/chat/send", `{"room":"room_3_11","message":"hello"}`, customerSession())
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if env.notifier.ChatCalls != 1 {
		t.Fatalf("chat events = %d, want 1", env.notifier.ChatCalls)
	}
	// Имя отправителя берется из сессии, а не из тела запроса.
	if got.Username != "alice" || got.Room != "room_3_11" || got.Message != "hello" {
		t.Errorf("event = %+v", got)
	}
}
