package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/go-chi/chi/v5"
	"github.com/msr-works/storefront-backend/internal/cfg"
	"github.com/msr-works/storefront-backend/internal/domain"
	"github.com/msr-works/storefront-backend/internal/repository/memory"
	"github.com/msr-works/storefront-backend/internal/usecase"
	"github.com/msr-works/storefront-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopAssets struct{}

func (noopAssets) ResolveImage(_ context.Context, key string) string { return key }

type noopProducer struct{}

func (noopProducer) PublishOrderPlaced(_ context.Context, _ *usecase.OrderPlacedReq) error {
	return nil
}

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	catalog := domain.NewCatalog(
		[]domain.Product{
			{ID: "1", Name: "Milano 3-Seater Sofa", Price: 1000, Category: "Living Room Furniture"},
		},
		[]domain.Category{
			domain.NewCategory("living-room", "Living Room Furniture", nil),
		},
	)

	log := logger.NewLogrusLogger()
	uc := usecase.NewStorefrontUC(
		catalog,
		memory.NewSessionRepo(),
		noopAssets{},
		noopProducer{},
		domain.NewCheckoutValidator(nil),
		clock.NewMock(),
		&cfg.PaymentCfg{ProcessingHold: time.Second, SuccessHold: time.Second},
		log,
	)

	router := chi.NewRouter()
	registerStorefrontRoutes(router, NewStorefrontHandler(uc, log))
	return router
}

func doRequest(t *testing.T, router *chi.Mux, method, target, sessionID string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	if sessionID != "" {
		req.Header.Set(sessionHeader, sessionID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// Каждый сессионный эндпоинт возвращает идентификатор сессии в заголовке,
// чтобы клиент без сессии мог подхватить созданную.
func TestSessionEndpoints_EchoSessionHeader(t *testing.T) {
	router := newTestRouter(t)

	res := doRequest(t, router, http.MethodGet, "/session", "", nil)
	require.Equal(t, http.StatusOK, res.Code)
	sessionID := res.Header().Get(sessionHeader)
	require.NotEmpty(t, sessionID)

	res = doRequest(t, router, http.MethodPost, "/session/cart/items", sessionID, []byte(`{"product_id":"1"}`))
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, sessionID, res.Header().Get(sessionHeader))

	res = doRequest(t, router, http.MethodPatch, "/session/cart/items/1", sessionID, []byte(`{"quantity":3}`))
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, sessionID, res.Header().Get(sessionHeader))

	res = doRequest(t, router, http.MethodPatch, "/session/cart/items/1", sessionID, []byte(`{"quantity":0}`))
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, sessionID, res.Header().Get(sessionHeader))
}
