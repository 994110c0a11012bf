package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/msr-works/storefront-backend/internal/cfg"
	"github.com/msr-works/storefront-backend/internal/domain"
	"github.com/msr-works/storefront-backend/pkg/e"
	"github.com/msr-works/storefront-backend/pkg/jitter"
	"github.com/msr-works/storefront-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// Команда «назад» в навигационном интенте. Не является экраном.
const navigateBack = "back"

// StorefrontUseCase реализует бизнес-логику витрины: каталог, корзину,
// навигацию и имитацию оплаты. Доступ к сессии сериализуется мьютексом
// по ее идентификатору: пользовательские запросы и горутина оплаты
// никогда не работают с одной сессией параллельно.
type StorefrontUseCase struct {
	catalog    *domain.Catalog
	sessions   SessionRepository
	assets     AssetsInfra
	producer   OrderEventsProducer
	validator  *domain.CheckoutValidator
	clock      clock.Clock
	paymentCfg *cfg.PaymentCfg
	logger     logger.Logger
	wg         sync.WaitGroup

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewStorefrontUC(
	catalog *domain.Catalog,
	sessions SessionRepository,
	assets AssetsInfra,
	producer OrderEventsProducer,
	validator *domain.CheckoutValidator,
	clk clock.Clock,
	paymentCfg *cfg.PaymentCfg,
	logger logger.Logger,
) *StorefrontUseCase {
	return &StorefrontUseCase{
		catalog:    catalog,
		sessions:   sessions,
		assets:     assets,
		producer:   producer,
		validator:  validator,
		clock:      clk,
		paymentCfg: paymentCfg,
		logger:     logger,
		locks:      make(map[string]*sync.Mutex),
	}
}

// lockSession захватывает мьютекс сессии и возвращает функцию освобождения.
// Захват происходит до чтения из репозитория, иначе чтение-модификация-запись
// поверх внешнего хранилища может затереть переход, сделанный таймером оплаты.
func (s *StorefrontUseCase) lockSession(id string) func() {
	s.locksMu.Lock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	s.locksMu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// LoadCatalog синхронно читает каталог из источника при старте приложения.
func LoadCatalog(ctx context.Context, repo CatalogRepository) (*domain.Catalog, error) {
	const op = "usecase.LoadCatalog"

	products, err := repo.LoadProducts(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(products) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCatalog)
	}

	taxonomy, err := repo.LoadTaxonomy(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return domain.NewCatalog(products, taxonomy), nil
}

// GetSession возвращает состояние сессии, создавая новую при необходимости.
func (s *StorefrontUseCase) GetSession(ctx context.Context, req *GetSessionReq) (*SessionRes, error) {
	const op = "StorefrontUseCase.GetSession"

	unlock := s.lockSession(req.SessionID)
	defer unlock()

	session, err := s.getOrCreate(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, e.Wrap(op, err)
	}

	return s.toSessionRes(ctx, session), nil
}

// Navigate выполняет навигационный интент и возвращает новое состояние сессии.
// Во время обработки оплаты навигация заблокирована: автомат двигают таймеры.
func (s *StorefrontUseCase) Navigate(ctx context.Context, req *NavigateReq) (*SessionRes, error) {
	const op = "StorefrontUseCase.Navigate"

	unlock := s.lockSession(req.SessionID)
	defer unlock()

	session, err := s.getOrCreate(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if paymentLocked(session) {
		return nil, e.Wrap(op, e.ErrPaymentInProgress)
	}

	wasPayment := session.Navigation.CurrentView == domain.ViewPayment

	switch {
	case req.ProductID != "":
		product, ok := s.catalog.Product(req.ProductID)
		if !ok {
			return nil, e.Wrap(op, e.ErrProductNotFound)
		}
		session.Navigation.SelectProduct(product)

	case req.Category != "":
		session.Navigation.SelectCategory(req.Category)
		// Выбор категории засевает фильтр; сентинель All сбрасывает его.
		if req.Category == domain.AllCategories {
			session.Filters.Categories = nil
		} else {
			session.Filters.Categories = []string{req.Category}
		}

	case req.View == navigateBack:
		session.Navigation.Back()

	case req.View == string(domain.ViewPayment):
		if err := session.Navigation.Checkout(); err != nil {
			return nil, e.Wrap(op, err)
		}
		session.PaymentStage = domain.PaymentStageForm

	default:
		view, err := domain.ParseView(req.View)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		if err := session.Navigation.NavigateTo(view); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	// Любой уход с экрана оплаты сбрасывает неотправленную форму заказа.
	if wasPayment && session.Navigation.CurrentView != domain.ViewPayment {
		session.PaymentStage = domain.PaymentStageNone
		session.PendingOrder = nil
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, e.Wrap(op, err)
	}

	return s.toSessionRes(ctx, session), nil
}

// GetListing возвращает выдачу витрины по фильтрам и сортировке сессии.
// Выдача пересчитывается на каждый запрос.
func (s *StorefrontUseCase) GetListing(ctx context.Context, req *GetListingReq) (*GetListingRes, error) {
	const op = "StorefrontUseCase.GetListing"

	unlock := s.lockSession(req.SessionID)
	defer unlock()

	session, err := s.getOrCreate(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, e.Wrap(op, err)
	}

	return s.toListingRes(ctx, session), nil
}

// SetFilters применяет частичное обновление фильтров.
// nil-поля сохраняют прежние значения; ценовой диапазон, ставший вырожденным,
// откатывается к последнему валидному.
func (s *StorefrontUseCase) SetFilters(ctx context.Context, req *SetFiltersReq) (*GetListingRes, error) {
	const op = "StorefrontUseCase.SetFilters"

	unlock := s.lockSession(req.SessionID)
	defer unlock()

	session, err := s.getOrCreate(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if paymentLocked(session) {
		return nil, e.Wrap(op, e.ErrPaymentInProgress)
	}

	next := session.Filters
	if req.Categories != nil {
		next.Categories = *req.Categories
	}
	if req.Subcategories != nil {
		next.Subcategories = *req.Subcategories
	}
	if req.Items != nil {
		next.Items = *req.Items
	}
	if req.SearchQuery != nil {
		next.SearchQuery = *req.SearchQuery
	}
	if req.PriceMin != nil && *req.PriceMin >= 0 {
		next.PriceMin = *req.PriceMin
	}
	if req.PriceMax != nil && *req.PriceMax >= 0 {
		next.PriceMax = *req.PriceMax
	}
	if next.PriceMin > next.PriceMax {
		next.PriceMin = session.Filters.PriceMin
		next.PriceMax = session.Filters.PriceMax
	}
	session.Filters = next

	if req.Sort != nil {
		session.Sort = domain.ParseSortKey(*req.Sort)
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, e.Wrap(op, err)
	}

	return s.toListingRes(ctx, session), nil
}

// GetProduct возвращает карточку товара из каталога.
func (s *StorefrontUseCase) GetProduct(ctx context.Context, req *GetProductReq) (*ProductView, error) {
	const op = "StorefrontUseCase.GetProduct"

	product, ok := s.catalog.Product(req.ID)
	if !ok {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	view := s.toProductView(ctx, product)
	return &view, nil
}

// GetTaxonomy возвращает дерево категорий каталога.
func (s *StorefrontUseCase) GetTaxonomy(_ context.Context) (*GetTaxonomyRes, error) {
	taxonomy := s.catalog.Taxonomy()

	categories := make([]CategoryView, 0, len(taxonomy))
	for _, c := range taxonomy {
		subs := make([]SubcategoryView, 0, len(c.Subcategories))
		for _, sub := range c.Subcategories {
			subs = append(subs, SubcategoryView{Name: sub.Name, Items: sub.Items})
		}
		categories = append(categories, CategoryView{ID: c.ID, Name: c.Name, Subcategories: subs})
	}

	return &GetTaxonomyRes{Categories: categories}, nil
}

// GetCart возвращает корзину с итогами для экрана корзины.
func (s *StorefrontUseCase) GetCart(ctx context.Context, req *GetCartReq) (*CartRes, error) {
	const op = "StorefrontUseCase.GetCart"

	unlock := s.lockSession(req.SessionID)
	defer unlock()

	session, err := s.getOrCreate(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, e.Wrap(op, err)
	}

	return s.toCartRes(ctx, session), nil
}

// AddToCart добавляет товар в корзину сессии.
func (s *StorefrontUseCase) AddToCart(ctx context.Context, req *AddToCartReq) (*CartRes, error) {
	const op = "StorefrontUseCase.AddToCart"

	unlock := s.lockSession(req.SessionID)
	defer unlock()

	session, err := s.getOrCreate(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if paymentLocked(session) {
		return nil, e.Wrap(op, e.ErrPaymentInProgress)
	}

	product, ok := s.catalog.Product(req.ProductID)
	if !ok {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	session.Cart.AddItem(product)

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, e.Wrap(op, err)
	}

	return s.toCartRes(ctx, session), nil
}

// UpdateCartLine меняет количество позиции корзины.
// Нулевое количество удаляет позицию (no-op, если ее нет);
// отрицательное отклоняется; положительное ограничивается снизу единицей.
func (s *StorefrontUseCase) UpdateCartLine(ctx context.Context, req *UpdateCartLineReq) (*CartRes, error) {
	const op = "StorefrontUseCase.UpdateCartLine"

	if req.Quantity < 0 {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	unlock := s.lockSession(req.SessionID)
	defer unlock()

	session, err := s.getOrCreate(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if paymentLocked(session) {
		return nil, e.Wrap(op, e.ErrPaymentInProgress)
	}

	if req.Quantity == 0 {
		session.Cart.Remove(req.ProductID)
	} else if !session.Cart.UpdateQuantity(req.ProductID, req.Quantity) {
		return nil, e.Wrap(op, e.ErrCartLineNotFound)
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, e.Wrap(op, err)
	}

	return s.toCartRes(ctx, session), nil
}

// SubmitOrder проверяет регион доставки и запускает имитацию оплаты:
// processing -> success -> (очистка корзины, переход на home), каждая стадия
// удерживается настроенное время. Повторная отправка до завершения отклоняется.
func (s *StorefrontUseCase) SubmitOrder(ctx context.Context, req *SubmitOrderReq) (*CheckoutStateRes, error) {
	const op = "StorefrontUseCase.SubmitOrder"

	unlock := s.lockSession(req.SessionID)
	defer unlock()

	session, err := s.getOrCreate(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if paymentLocked(session) {
		return nil, e.Wrap(op, e.ErrPaymentInProgress)
	}
	if session.Navigation.CurrentView != domain.ViewPayment {
		return nil, e.Wrap(op, e.ErrInvalidTransition)
	}
	if session.Cart.IsEmpty() {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	form := &domain.OrderForm{
		FullName:      req.FullName,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		ZipCode:       req.ZipCode,
		PaymentMethod: req.PaymentMethod,
	}
	if err := s.validator.ValidateForm(form); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Регион-валидация блокирует только отправку; навигация не меняется.
	if err := s.validator.ValidateRegion(req.State); err != nil {
		return nil, e.Wrap(op, err)
	}

	lines := session.Cart.Lines()
	totals := domain.CalculateCheckout(lines)
	order := &domain.PendingOrder{
		ID:       uuid.NewString(),
		Totals:   totals,
		PlacedAt: s.clock.Now(),
	}

	session.PaymentStage = domain.PaymentStageProcessing
	session.PendingOrder = order

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, e.Wrap(op, err)
	}

	event := NewOrderPlacedReq(order.ID, session.ID, toOrderLines(lines), toCheckoutTotalsView(totals), order.PlacedAt)
	s.wg.Add(1)
	go s.runPaymentSequence(session.ID, event)

	return s.toCheckoutStateRes(session), nil
}

// GetCheckoutState возвращает текущую стадию оплаты и итоги заказа.
func (s *StorefrontUseCase) GetCheckoutState(ctx context.Context, req *GetCheckoutStateReq) (*CheckoutStateRes, error) {
	const op = "StorefrontUseCase.GetCheckoutState"

	unlock := s.lockSession(req.SessionID)
	defer unlock()

	session, err := s.getOrCreate(ctx, req.SessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, e.Wrap(op, err)
	}

	return s.toCheckoutStateRes(session), nil
}

// WaitForPayments ожидает завершения запущенных последовательностей оплаты
// с учетом таймаута завершения приложения.
func (s *StorefrontUseCase) WaitForPayments(shutdownCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownCtx.Done():
		return e.Wrap("payment sequences still running during shutdown", shutdownCtx.Err())
	}
}

// runPaymentSequence ведет сессию по стадиям оплаты в отдельной горутине.
// Пользовательские мутации в это время отклоняются через paymentLocked,
// а чтения разведены с переходами таймера мьютексом сессии.
func (s *StorefrontUseCase) runPaymentSequence(sessionID string, event *OrderPlacedReq) {
	defer s.wg.Done()
	const op = "StorefrontUseCase.runPaymentSequence"

	s.clock.Sleep(s.paymentCfg.ProcessingHold)

	if err := s.mutateSession(sessionID, func(session *domain.Session) {
		session.PaymentStage = domain.PaymentStageSuccess
	}); err != nil {
		s.logger.Warnf("%s: advance to success failed: %v", op, err)
		return
	}

	s.publishOrderPlaced(event)

	s.clock.Sleep(s.paymentCfg.SuccessHold)

	// Терминальный переход: корзина очищается строго до навигации на home.
	if err := s.mutateSession(sessionID, func(session *domain.Session) {
		session.Cart.Clear()
		if err := session.Navigation.CompleteOrder(); err != nil {
			s.logger.Warnf("%s: complete order: %v", op, err)
		}
		session.PaymentStage = domain.PaymentStageNone
		session.PendingOrder = nil
	}); err != nil {
		s.logger.Warnf("%s: finalize failed: %v", op, err)
	}
}

// mutateSession перечитывает сессию под ее мьютексом, применяет мутацию
// и сохраняет результат.
func (s *StorefrontUseCase) mutateSession(sessionID string, mutate func(*domain.Session)) error {
	unlock := s.lockSession(sessionID)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return err
	}

	mutate(session)
	return s.sessions.Save(ctx, session)
}

// publishOrderPlaced публикует событие заказа с повторами и джиттером.
// Сбой публикации не прерывает пользовательский сценарий.
func (s *StorefrontUseCase) publishOrderPlaced(event *OrderPlacedReq) {
	const (
		op          = "StorefrontUseCase.publishOrderPlaced"
		maxAttempts = 3
		baseBackoff = 500 * time.Millisecond
		maxBackoff  = 5 * time.Second
	)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := s.producer.PublishOrderPlaced(ctx, event)
		cancel()

		if err == nil {
			return
		}

		s.logger.Warnf("%s: attempt %d failed: %v", op, attempt+1, err)
		if attempt < maxAttempts-1 {
			s.clock.Sleep(jitter.ExponentialBackoff(baseBackoff, maxBackoff, attempt, jitter.DefaultJitter))
		}
	}

	s.logger.Warnf("%s: giving up after %d attempts, order_id: %s", op, maxAttempts, event.OrderID)
}

// getOrCreate возвращает сессию по идентификатору, создавая новую для
// пустого или неизвестного идентификатора.
func (s *StorefrontUseCase) getOrCreate(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return domain.NewSession(uuid.NewString(), s.clock.Now()), nil
	}

	session, err := s.sessions.Get(ctx, id)
	if err == nil {
		return session, nil
	}
	if errors.Is(err, e.ErrSessionNotFound) {
		return domain.NewSession(id, s.clock.Now()), nil
	}

	return nil, err
}

// paymentLocked сообщает, идет ли по сессии имитация оплаты.
// Пока она идет, второй писатель состояния не допускается.
func paymentLocked(session *domain.Session) bool {
	return session.PaymentStage == domain.PaymentStageProcessing ||
		session.PaymentStage == domain.PaymentStageSuccess
}

func (s *StorefrontUseCase) toProductView(ctx context.Context, p domain.Product) ProductView {
	return ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    s.assets.ResolveImage(ctx, p.Image),
		Category:    p.Category,
		Subcategory: p.Subcategory,
		ItemType:    p.ItemType,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
	}
}

func (s *StorefrontUseCase) toSessionRes(ctx context.Context, session *domain.Session) *SessionRes {
	res := &SessionRes{
		SessionID:        session.ID,
		CurrentView:      string(session.Navigation.CurrentView),
		PreviousView:     string(session.Navigation.PreviousView),
		SelectedCategory: session.Navigation.SelectedCategory,
		Filters:          toFilterStateView(session.Filters),
		Sort:             string(session.Sort),
		CartCount:        session.Cart.ItemCount(),
		PaymentStage:     string(session.PaymentStage),
	}

	if session.Navigation.SelectedProduct != nil {
		view := s.toProductView(ctx, *session.Navigation.SelectedProduct)
		res.SelectedProduct = &view
	}

	return res
}

func (s *StorefrontUseCase) toListingRes(ctx context.Context, session *domain.Session) *GetListingRes {
	products := domain.ListProducts(s.catalog, session.Filters, session.Sort)

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, s.toProductView(ctx, p))
	}

	return &GetListingRes{
		Products: views,
		Total:    len(views),
		Filters:  toFilterStateView(session.Filters),
		Sort:     string(session.Sort),
	}
}

func (s *StorefrontUseCase) toCartRes(ctx context.Context, session *domain.Session) *CartRes {
	lines := session.Cart.Lines()
	summary := domain.SummarizeCart(lines)

	views := make([]CartLineView, 0, len(lines))
	for _, l := range lines {
		views = append(views, CartLineView{
			Product:   s.toProductView(ctx, l.Product),
			Quantity:  l.Quantity,
			LineTotal: decimal.NewFromInt(l.Product.Price).Mul(decimal.NewFromInt(int64(l.Quantity))),
		})
	}

	return &CartRes{
		SessionID: session.ID,
		Lines:     views,
		Summary: CartSummaryView{
			Subtotal:              summary.Subtotal,
			Shipping:              summary.Shipping,
			Total:                 summary.Total,
			FreeShippingRemainder: summary.FreeShippingRemainder,
		},
		ItemCount: session.Cart.ItemCount(),
	}
}

func (s *StorefrontUseCase) toCheckoutStateRes(session *domain.Session) *CheckoutStateRes {
	res := &CheckoutStateRes{
		SessionID: session.ID,
		Stage:     string(session.PaymentStage),
		CartEmpty: session.Cart.IsEmpty(),
	}

	switch {
	case session.PendingOrder != nil:
		res.OrderID = session.PendingOrder.ID
		totals := toCheckoutTotalsView(session.PendingOrder.Totals)
		res.Totals = &totals
	case session.Navigation.CurrentView == domain.ViewPayment && !session.Cart.IsEmpty():
		totals := toCheckoutTotalsView(domain.CalculateCheckout(session.Cart.Lines()))
		res.Totals = &totals
	}

	return res
}

func toFilterStateView(f domain.FilterState) FilterStateView {
	return FilterStateView{
		Categories:    f.Categories,
		Subcategories: f.Subcategories,
		Items:         f.Items,
		PriceMin:      f.PriceMin,
		PriceMax:      f.PriceMax,
		SearchQuery:   f.SearchQuery,
	}
}

func toCheckoutTotalsView(t domain.CheckoutTotals) CheckoutTotalsView {
	return CheckoutTotalsView{
		Subtotal: t.Subtotal,
		Shipping: t.Shipping,
		Tax:      t.Tax,
		Total:    t.Total,
	}
}

func toOrderLines(lines []domain.CartLine) []OrderLine {
	result := make([]OrderLine, 0, len(lines))
	for _, l := range lines {
		result = append(result, OrderLine{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			Price:     l.Product.Price,
			Quantity:  l.Quantity,
		})
	}
	return result
}
