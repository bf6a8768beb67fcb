package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/rinisriranganathan/RestBot/internal/auth"
	"github.com/rinisriranganathan/RestBot/internal/bill"
	"github.com/rinisriranganathan/RestBot/internal/catalog"
	"github.com/rinisriranganathan/RestBot/internal/session"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	authService := auth.NewService(auth.NewInMemoryUserRepository())
	catalogService := catalog.NewService(catalog.NewInMemoryRepository(), nil)
	billService := bill.NewService(bill.NewMemoryRepository(), nil)
	sessionService := session.NewService(
		session.NewManager(),
		catalogService,
		billService,
		nil,
		bill.DefaultTaxBasisPoints,
	)

	return NewRouter(Handlers{
		Auth:     auth.NewHandler(authService),
		Catalog:  catalog.NewHandler(catalogService),
		Bills:    bill.NewHandler(billService),
		Sessions: session.NewHandler(sessionService, auth.SessionTokens{}),
	})
}

func TestHealthCheck(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestSessionRoutesRequireToken(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/sessions/abc/order", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestMenuRoutesRequireStaff(t *testing.T) {
	r := testRouter()

	req := httptest.NewRequest(http.MethodPost, "/menus/upload", nil)
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}
