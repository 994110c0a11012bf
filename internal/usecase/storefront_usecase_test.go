package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/msr-works/storefront-backend/internal/cfg"
	"github.com/msr-works/storefront-backend/internal/domain"
	"github.com/msr-works/storefront-backend/internal/repository/memory"
	"github.com/msr-works/storefront-backend/internal/usecase"
	"github.com/msr-works/storefront-backend/pkg/e"
	"github.com/msr-works/storefront-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAssets struct{}

func (stubAssets) ResolveImage(_ context.Context, key string) string { return key }

type recordingProducer struct {
	mu     sync.Mutex
	events []*usecase.OrderPlacedReq
}

func (p *recordingProducer) PublishOrderPlaced(_ context.Context, req *usecase.OrderPlacedReq) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, req)
	return nil
}

func (p *recordingProducer) published() []*usecase.OrderPlacedReq {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*usecase.OrderPlacedReq(nil), p.events...)
}

func testCatalog() *domain.Catalog {
	products := []domain.Product{
		{ID: "1", Name: "Milano 3-Seater Sofa", Description: "Plush fabric sofa", Price: 1000, Category: "Living Room Furniture", Subcategory: "Seating", ItemType: "Sofas (3-seater)", Rating: 4.6},
		{ID: "2", Name: "Walnut Coffee Table", Description: "Mid-century table", Price: 2000, Category: "Living Room Furniture", Subcategory: "Tables", ItemType: "Coffee Tables", Rating: 4.5},
		{ID: "3", Name: "Aurora King Bed", Description: "Upholstered bed", Price: 64999, Category: "Bedroom Furniture", Subcategory: "Beds", ItemType: "King Beds", Rating: 4.7},
	}
	taxonomy := []domain.Category{
		domain.NewCategory("living-room", "Living Room Furniture", []domain.Subcategory{{Name: "Seating", Items: []string{"Sofas (3-seater)"}}}),
		domain.NewCategory("bedroom", "Bedroom Furniture", []domain.Subcategory{{Name: "Beds", Items: []string{"King Beds"}}}),
	}
	return domain.NewCatalog(products, taxonomy)
}

type fixture struct {
	uc       *usecase.StorefrontUseCase
	clock    *clock.Mock
	producer *recordingProducer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	mockClock := clock.NewMock()
	producer := &recordingProducer{}

	uc := usecase.NewStorefrontUC(
		testCatalog(),
		memory.NewSessionRepo(),
		stubAssets{},
		producer,
		domain.NewCheckoutValidator(nil),
		mockClock,
		&cfg.PaymentCfg{ProcessingHold: 2 * time.Second, SuccessHold: 2 * time.Second},
		logger.NewLogrusLogger(),
	)

	return &fixture{uc: uc, clock: mockClock, producer: producer}
}

func (f *fixture) newSession(t *testing.T) string {
	t.Helper()
	res, err := f.uc.GetSession(context.Background(), usecase.NewGetSessionReq(""))
	require.NoError(t, err)
	require.NotEmpty(t, res.SessionID)
	return res.SessionID
}

func validOrder(sessionID string) *usecase.SubmitOrderReq {
	return &usecase.SubmitOrderReq{
		SessionID:     sessionID,
		FullName:      "Asha Verma",
		Email:         "asha@example.com",
		Phone:         "+91 98765 43210",
		Address:       "12 MG Road",
		City:          "Lucknow",
		State:         "Uttar Pradesh",
		ZipCode:       "226001",
		PaymentMethod: "card",
	}
}

// goToPayment ведет сессию по легальному пути до экрана оплаты.
func (f *fixture) goToPayment(t *testing.T, sessionID string) {
	t.Helper()
	ctx := context.Background()

	_, err := f.uc.Navigate(ctx, usecase.NewNavigateReq(sessionID, "cart", "", ""))
	require.NoError(t, err)
	res, err := f.uc.Navigate(ctx, usecase.NewNavigateReq(sessionID, "payment", "", ""))
	require.NoError(t, err)
	require.Equal(t, "payment", res.CurrentView)
	require.Equal(t, "form", res.PaymentStage)
}

func TestGetSession_CreatesNewForUnknownID(t *testing.T) {
	f := newFixture(t)

	res, err := f.uc.GetSession(context.Background(), usecase.NewGetSessionReq("missing"))

	require.NoError(t, err)
	assert.Equal(t, "missing", res.SessionID)
	assert.Equal(t, "home", res.CurrentView)
	assert.Zero(t, res.CartCount)
}

func TestNavigate_CategorySeedsFilter(t *testing.T) {
	f := newFixture(t)
	sessionID := f.newSession(t)

	res, err := f.uc.Navigate(context.Background(), usecase.NewNavigateReq(sessionID, "", "", "Bedroom Furniture"))
	require.NoError(t, err)
	assert.Equal(t, "products", res.CurrentView)
	assert.Equal(t, []string{"Bedroom Furniture"}, res.Filters.Categories)

	listing, err := f.uc.GetListing(context.Background(), &usecase.GetListingReq{SessionID: sessionID})
	require.NoError(t, err)
	require.Equal(t, 1, listing.Total)
	assert.Equal(t, "3", listing.Products[0].ID)

	// Сентинель All сбрасывает фильтр категорий.
	res, err = f.uc.Navigate(context.Background(), usecase.NewNavigateReq(sessionID, "", "", "All"))
	require.NoError(t, err)
	assert.Empty(t, res.Filters.Categories)
}

func TestNavigate_ProductDetail(t *testing.T) {
	f := newFixture(t)
	sessionID := f.newSession(t)

	res, err := f.uc.Navigate(context.Background(), usecase.NewNavigateReq(sessionID, "", "1", ""))
	require.NoError(t, err)
	assert.Equal(t, "productDetail", res.CurrentView)
	require.NotNil(t, res.SelectedProduct)
	assert.Equal(t, "Milano 3-Seater Sofa", res.SelectedProduct.Name)

	_, err = f.uc.Navigate(context.Background(), usecase.NewNavigateReq(sessionID, "", "404", ""))
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestSetFilters_PartialUpdate(t *testing.T) {
	f := newFixture(t)
	sessionID := f.newSession(t)
	ctx := context.Background()

	search := "sofa"
	res, err := f.uc.SetFilters(ctx, &usecase.SetFiltersReq{SessionID: sessionID, SearchQuery: &search})
	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "sofa", res.Filters.SearchQuery)

	// Непереданные поля не меняются.
	sort := "price-high"
	res, err = f.uc.SetFilters(ctx, &usecase.SetFiltersReq{SessionID: sessionID, Sort: &sort})
	require.NoError(t, err)
	assert.Equal(t, "sofa", res.Filters.SearchQuery)
	assert.Equal(t, "price-high", res.Sort)
}

func TestSetFilters_DegenerateRangeReverts(t *testing.T) {
	f := newFixture(t)
	sessionID := f.newSession(t)
	ctx := context.Background()

	min := int64(5000)
	max := int64(1000)
	res, err := f.uc.SetFilters(ctx, &usecase.SetFiltersReq{SessionID: sessionID, PriceMin: &min, PriceMax: &max})
	require.NoError(t, err)

	// Вырожденный диапазон откатывается к последнему валидному.
	assert.Equal(t, domain.DefaultPriceMin, res.Filters.PriceMin)
	assert.Equal(t, domain.DefaultPriceMax, res.Filters.PriceMax)
}

func TestSetFilters_NegativePriceIgnored(t *testing.T) {
	f := newFixture(t)
	sessionID := f.newSession(t)

	neg := int64(-100)
	res, err := f.uc.SetFilters(context.Background(), &usecase.SetFiltersReq{SessionID: sessionID, PriceMin: &neg})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPriceMin, res.Filters.PriceMin)
}

func TestCartFlow(t *testing.T) {
	f := newFixture(t)
	sessionID := f.newSession(t)
	ctx := context.Background()

	cart, err := f.uc.AddToCart(ctx, usecase.NewAddToCartReq(sessionID, "1"))
	require.NoError(t, err)
	cart, err = f.uc.AddToCart(ctx, usecase.NewAddToCartReq(sessionID, "1"))
	require.NoError(t, err)
	cart, err = f.uc.AddToCart(ctx, usecase.NewAddToCartReq(sessionID, "2"))
	require.NoError(t, err)

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 3, cart.ItemCount)
	// 1000*2 + 2000 = 4000, доставка 500.
	assert.Equal(t, "4000", cart.Summary.Subtotal.String())
	assert.Equal(t, "500", cart.Summary.Shipping.String())
	assert.Equal(t, "4500", cart.Summary.Total.String())
	assert.Equal(t, "46000", cart.Summary.FreeShippingRemainder.String())

	// Нулевое количество удаляет позицию.
	cart, err = f.uc.UpdateCartLine(ctx, usecase.NewUpdateCartLineReq(sessionID, "2", 0))
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 1)

	_, err = f.uc.UpdateCartLine(ctx, usecase.NewUpdateCartLineReq(sessionID, "2", 5))
	assert.ErrorIs(t, err, e.ErrCartLineNotFound)

	_, err = f.uc.UpdateCartLine(ctx, usecase.NewUpdateCartLineReq(sessionID, "1", -1))
	assert.ErrorIs(t, err, e.ErrInvalidQuantity)

	_, err = f.uc.AddToCart(ctx, usecase.NewAddToCartReq(sessionID, "404"))
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestSubmitOrder_Guards(t *testing.T) {
	f := newFixture(t)
	sessionID := f.newSession(t)
	ctx := context.Background()

	// Не с экрана оплаты.
	_, err := f.uc.SubmitOrder(ctx, validOrder(sessionID))
	assert.ErrorIs(t, err, e.ErrInvalidTransition)

	// Пустая корзина: на экран оплаты можно попасть из пустой корзины.
	f.goToPayment(t, sessionID)
	_, err = f.uc.SubmitOrder(ctx, validOrder(sessionID))
	assert.ErrorIs(t, err, e.ErrEmptyCart)
}

func TestSubmitOrder_ValidationFailures(t *testing.T) {
	f := newFixture(t)
	sessionID := f.newSession(t)
	ctx := context.Background()

	_, err := f.uc.AddToCart(ctx, usecase.NewAddToCartReq(sessionID, "1"))
	require.NoError(t, err)
	f.goToPayment(t, sessionID)

	missing := validOrder(sessionID)
	missing.Email = ""
	_, err = f.uc.SubmitOrder(ctx, missing)
	assert.ErrorIs(t, err, e.ErrMissingFields)

	delhi := validOrder(sessionID)
	delhi.State = "Delhi"
	_, err = f.uc.SubmitOrder(ctx, delhi)
	assert.ErrorIs(t, err, e.ErrUnsupportedRegion)

	// Отвергнутая форма не сдвигает автомат: отправка с исправленным регионом проходит.
	res, err := f.uc.SubmitOrder(ctx, validOrder(sessionID))
	require.NoError(t, err)
	assert.Equal(t, "processing", res.Stage)
}

func TestPaymentSequence(t *testing.T) {
	f := newFixture(t)
	sessionID := f.newSession(t)
	ctx := context.Background()

	_, err := f.uc.AddToCart(ctx, usecase.NewAddToCartReq(sessionID, "1"))
	require.NoError(t, err)
	_, err = f.uc.AddToCart(ctx, usecase.NewAddToCartReq(sessionID, "1"))
	require.NoError(t, err)
	_, err = f.uc.AddToCart(ctx, usecase.NewAddToCartReq(sessionID, "2"))
	require.NoError(t, err)

	f.goToPayment(t, sessionID)

	res, err := f.uc.SubmitOrder(ctx, validOrder(sessionID))
	require.NoError(t, err)
	assert.Equal(t, "processing", res.Stage)
	require.NotNil(t, res.Totals)
	assert.Equal(t, "4000", res.Totals.Subtotal.String())
	assert.Equal(t, "400", res.Totals.Tax.String())
	assert.Equal(t, "4900", res.Totals.Total.String())
	orderID := res.OrderID
	require.NotEmpty(t, orderID)

	// Пока идет оплата, сессия закрыта для мутаций.
	_, err = f.uc.AddToCart(ctx, usecase.NewAddToCartReq(sessionID, "2"))
	assert.ErrorIs(t, err, e.ErrPaymentInProgress)
	_, err = f.uc.SubmitOrder(ctx, validOrder(sessionID))
	assert.ErrorIs(t, err, e.ErrPaymentInProgress)
	_, err = f.uc.Navigate(ctx, usecase.NewNavigateReq(sessionID, "home", "", ""))
	assert.ErrorIs(t, err, e.ErrPaymentInProgress)

	// Первая выдержка: processing -> success. Корзина еще не очищена.
	time.Sleep(50 * time.Millisecond)
	f.clock.Add(2 * time.Second)

	require.Eventually(t, func() bool {
		state, err := f.uc.GetCheckoutState(ctx, &usecase.GetCheckoutStateReq{SessionID: sessionID})
		return err == nil && state.Stage == "success" && !state.CartEmpty
	}, time.Second, 10*time.Millisecond)

	require.Eventually(t, func() bool {
		return len(f.producer.published()) == 1
	}, time.Second, 10*time.Millisecond)
	events := f.producer.published()
	assert.Equal(t, orderID, events[0].OrderID)
	assert.Len(t, events[0].Lines, 2)

	// Вторая выдержка: очистка корзины и возврат на home.
	time.Sleep(50 * time.Millisecond)
	f.clock.Add(2 * time.Second)

	require.Eventually(t, func() bool {
		state, err := f.uc.GetCheckoutState(ctx, &usecase.GetCheckoutStateReq{SessionID: sessionID})
		return err == nil && state.Stage == "" && state.CartEmpty
	}, time.Second, 10*time.Millisecond)

	session, err := f.uc.GetSession(ctx, usecase.NewGetSessionReq(sessionID))
	require.NoError(t, err)
	assert.Equal(t, "home", session.CurrentView)
	assert.Zero(t, session.CartCount)

	// Последовательность завершена, ожидание не блокирует.
	waitCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	assert.NoError(t, f.uc.WaitForPayments(waitCtx))
}

func TestNavigate_BackFromPaymentCancelsForm(t *testing.T) {
	f := newFixture(t)
	sessionID := f.newSession(t)
	ctx := context.Background()

	_, err := f.uc.AddToCart(ctx, usecase.NewAddToCartReq(sessionID, "1"))
	require.NoError(t, err)
	f.goToPayment(t, sessionID)

	res, err := f.uc.Navigate(ctx, usecase.NewNavigateReq(sessionID, "back", "", ""))
	require.NoError(t, err)
	assert.Equal(t, "cart", res.CurrentView)
	assert.Equal(t, "", res.PaymentStage)
}

func TestNavigate_LeavingPaymentCancelsForm(t *testing.T) {
	tests := []struct {
		name     string
		req      func(sessionID string) *usecase.NavigateReq
		wantView string
	}{
		{
			name:     "product selection",
			req:      func(id string) *usecase.NavigateReq { return usecase.NewNavigateReq(id, "", "1", "") },
			wantView: "productDetail",
		},
		{
			name:     "category selection",
			req:      func(id string) *usecase.NavigateReq { return usecase.NewNavigateReq(id, "", "", "Bedroom Furniture") },
			wantView: "products",
		},
		{
			name:     "direct view",
			req:      func(id string) *usecase.NavigateReq { return usecase.NewNavigateReq(id, "home", "", "") },
			wantView: "home",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			sessionID := f.newSession(t)
			ctx := context.Background()

			_, err := f.uc.AddToCart(ctx, usecase.NewAddToCartReq(sessionID, "1"))
			require.NoError(t, err)
			f.goToPayment(t, sessionID)

			res, err := f.uc.Navigate(ctx, tt.req(sessionID))
			require.NoError(t, err)
			assert.Equal(t, tt.wantView, res.CurrentView)
			assert.Equal(t, "", res.PaymentStage)

			state, err := f.uc.GetCheckoutState(ctx, &usecase.GetCheckoutStateReq{SessionID: sessionID})
			require.NoError(t, err)
			assert.Empty(t, state.Stage)
			assert.Empty(t, state.OrderID)
		})
	}
}

func TestPaymentSequence_ConcurrentPolling(t *testing.T) {
	f := newFixture(t)
	sessionID := f.newSession(t)
	ctx := context.Background()

	_, err := f.uc.AddToCart(ctx, usecase.NewAddToCartReq(sessionID, "1"))
	require.NoError(t, err)
	f.goToPayment(t, sessionID)

	_, err = f.uc.SubmitOrder(ctx, validOrder(sessionID))
	require.NoError(t, err)

	// Клиент опрашивает стадию и корзину, пока таймеры двигают автомат.
	stop := make(chan struct{})
	var pollers sync.WaitGroup
	for i := 0; i < 4; i++ {
		pollers.Add(1)
		go func() {
			defer pollers.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				_, err := f.uc.GetCheckoutState(ctx, &usecase.GetCheckoutStateReq{SessionID: sessionID})
				assert.NoError(t, err)
				_, err = f.uc.GetCart(ctx, &usecase.GetCartReq{SessionID: sessionID})
				assert.NoError(t, err)
			}
		}()
	}

	time.Sleep(50 * time.Millisecond)
	f.clock.Add(2 * time.Second)
	require.Eventually(t, func() bool {
		state, err := f.uc.GetCheckoutState(ctx, &usecase.GetCheckoutStateReq{SessionID: sessionID})
		return err == nil && state.Stage == "success"
	}, time.Second, 10*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	f.clock.Add(2 * time.Second)
	require.Eventually(t, func() bool {
		state, err := f.uc.GetCheckoutState(ctx, &usecase.GetCheckoutStateReq{SessionID: sessionID})
		return err == nil && state.Stage == "" && state.CartEmpty
	}, time.Second, 10*time.Millisecond)

	close(stop)
	pollers.Wait()

	// Опросы не должны затереть терминальное состояние своим сохранением.
	session, err := f.uc.GetSession(ctx, usecase.NewGetSessionReq(sessionID))
	require.NoError(t, err)
	assert.Equal(t, "home", session.CurrentView)
	assert.Zero(t, session.CartCount)
}

func TestGetTaxonomy(t *testing.T) {
	f := newFixture(t)

	res, err := f.uc.GetTaxonomy(context.Background())

	require.NoError(t, err)
	require.Len(t, res.Categories, 2)
	assert.Equal(t, "Living Room Furniture", res.Categories[0].Name)
	require.Len(t, res.Categories[0].Subcategories, 1)
	assert.Contains(t, res.Categories[0].Subcategories[0].Items, "Sofas (3-seater)")
}
