package usecase

import (
	"time"

	"github.com/shopspring/decimal"
)

// SESSION / NAVIGATION

// GetSessionReq — запрос состояния сессии. Пустой SessionID означает новую сессию.
type GetSessionReq struct {
	SessionID string
}

// NavigateReq — навигационный интент презентационного слоя.
// Поля контекста взаимоисключающие: ProductID открывает карточку товара,
// Category — список товаров с засеянным фильтром, иначе интерпретируется View.
// View "back" — переход назад, "payment" — checkout-переход.
type NavigateReq struct {
	SessionID string
	View      string
	ProductID string
	Category  string
}

// SessionRes — состояние сессии для рендера.
type SessionRes struct {
	SessionID        string
	CurrentView      string
	PreviousView     string
	SelectedProduct  *ProductView
	SelectedCategory string
	Filters          FilterStateView
	Sort             string
	CartCount        int
	PaymentStage     string
}

// FilterStateView — активные фильтры витрины.
type FilterStateView struct {
	Categories    []string
	Subcategories []string
	Items         []string
	PriceMin      int64
	PriceMax      int64
	SearchQuery   string
}

// ВИТРИНА

// ProductView — DTO товара для внешнего использования; Image уже разрешен в URL.
type ProductView struct {
	ID          string
	Name        string
	Description string
	Price       int64
	ImageURL    string
	Category    string
	Subcategory string
	ItemType    string
	Rating      float64
	Reviews     int
}

// GetListingReq — запрос списка товаров по фильтрам сессии.
type GetListingReq struct {
	SessionID string
}

// GetListingRes — отфильтрованная и отсортированная выдача.
type GetListingRes struct {
	Products []ProductView
	Total    int
	Filters  FilterStateView
	Sort     string
}

// SetFiltersReq — интент изменения фильтров. nil-поле сохраняет прежнее значение,
// этим же путем отбрасывается некорректный ввод (политика «клампа к последнему валидному»).
type SetFiltersReq struct {
	SessionID     string
	Categories    *[]string
	Subcategories *[]string
	Items         *[]string
	PriceMin      *int64
	PriceMax      *int64
	SearchQuery   *string
	Sort          *string
}

type GetProductReq struct {
	ID string
}

// GetTaxonomyRes — дерево категорий каталога.
type GetTaxonomyRes struct {
	Categories []CategoryView
}

type CategoryView struct {
	ID            string
	Name          string
	Subcategories []SubcategoryView
}

type SubcategoryView struct {
	Name  string
	Items []string
}

// КОРЗИНА

type GetCartReq struct {
	SessionID string
}

type AddToCartReq struct {
	SessionID string
	ProductID string
}

// UpdateCartLineReq — изменение количества позиции.
// Quantity == 0 — единственный санкционированный путь удаления позиции.
type UpdateCartLineReq struct {
	SessionID string
	ProductID string
	Quantity  int
}

type CartLineView struct {
	Product   ProductView
	Quantity  int
	LineTotal decimal.Decimal
}

// CartSummaryView — итоги корзины. Налоговой строки нет: налог показывается
// только на экране оплаты.
type CartSummaryView struct {
	Subtotal              decimal.Decimal
	Shipping              decimal.Decimal
	Total                 decimal.Decimal
	FreeShippingRemainder decimal.Decimal
}

type CartRes struct {
	SessionID string
	Lines     []CartLineView
	Summary   CartSummaryView
	ItemCount int
}

// ОФОРМЛЕНИЕ ЗАКАЗА

// SubmitOrderReq — данные формы оплаты. State — регион доставки,
// проверяется валидатором перед запуском оплаты.
type SubmitOrderReq struct {
	SessionID     string
	FullName      string
	Email         string
	Phone         string
	Address       string
	City          string
	State         string
	ZipCode       string
	PaymentMethod string
}

type GetCheckoutStateReq struct {
	SessionID string
}

// CheckoutTotalsView — итоги заказа с налогом.
type CheckoutTotalsView struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// CheckoutStateRes — стадия имитации оплаты и итоги заказа.
type CheckoutStateRes struct {
	SessionID string
	Stage     string
	OrderID   string
	Totals    *CheckoutTotalsView
	CartEmpty bool
}

// СОБЫТИЯ

// OrderLine — позиция заказа в событии.
type OrderLine struct {
	ProductID string
	Name      string
	Price     int64
	Quantity  int
}

// OrderPlacedReq — событие успешно оформленного заказа.
type OrderPlacedReq struct {
	OrderID   string
	SessionID string
	Lines     []OrderLine
	Totals    CheckoutTotalsView
	PlacedAt  time.Time
}

// MAPPERS

func NewGetSessionReq(sessionID string) *GetSessionReq {
	return &GetSessionReq{SessionID: sessionID}
}

func NewNavigateReq(sessionID, view, productID, category string) *NavigateReq {
	return &NavigateReq{
		SessionID: sessionID,
		View:      view,
		ProductID: productID,
		Category:  category,
	}
}

func NewAddToCartReq(sessionID, productID string) *AddToCartReq {
	return &AddToCartReq{
		SessionID: sessionID,
		ProductID: productID,
	}
}

func NewUpdateCartLineReq(sessionID, productID string, quantity int) *UpdateCartLineReq {
	return &UpdateCartLineReq{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}
}

func NewOrderPlacedReq(orderID, sessionID string, lines []OrderLine, totals CheckoutTotalsView, placedAt time.Time) *OrderPlacedReq {
	return &OrderPlacedReq{
		OrderID:   orderID,
		SessionID: sessionID,
		Lines:     lines,
		Totals:    totals,
		PlacedAt:  placedAt,
	}
}
