package converter

import (
	"github.com/msr-works/storefront-backend/internal/domain"
	"github.com/msr-works/storefront-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// SessionConverter переводит сессию между доменным и Redis-представлением.
// Обратное преобразование требует каталог: в Redis позиции корзины хранятся
// без данных товара.
type SessionConverter interface {
	ToRedisModel(session *domain.Session) *SessionRedisModel
	ToEntity(model *SessionRedisModel, catalog *domain.Catalog) (*domain.Session, error)
}

type SessionConverterImpl struct{}

func NewSessionConverterImpl() *SessionConverterImpl {
	return &SessionConverterImpl{}
}

func (c *SessionConverterImpl) ToRedisModel(session *domain.Session) *SessionRedisModel {
	lines := session.Cart.Lines()
	lineModels := make([]CartLineRedisModel, 0, len(lines))
	for _, l := range lines {
		lineModels = append(lineModels, CartLineRedisModel{
			ProductID: l.Product.ID,
			Quantity:  l.Quantity,
		})
	}

	model := &SessionRedisModel{
		ID:               session.ID,
		Lines:            lineModels,
		CurrentView:      string(session.Navigation.CurrentView),
		PreviousView:     string(session.Navigation.PreviousView),
		SelectedCategory: session.Navigation.SelectedCategory,
		Filters: FilterRedisModel{
			Categories:    session.Filters.Categories,
			Subcategories: session.Filters.Subcategories,
			Items:         session.Filters.Items,
			PriceMin:      session.Filters.PriceMin,
			PriceMax:      session.Filters.PriceMax,
			SearchQuery:   session.Filters.SearchQuery,
		},
		Sort:         string(session.Sort),
		PaymentStage: string(session.PaymentStage),
		CreatedAt:    session.CreatedAt,
	}

	if session.Navigation.SelectedProduct != nil {
		model.SelectedProductID = session.Navigation.SelectedProduct.ID
	}

	if session.PendingOrder != nil {
		model.PendingOrder = &PendingOrderRedisModel{
			ID:       session.PendingOrder.ID,
			Subtotal: session.PendingOrder.Totals.Subtotal.String(),
			Shipping: session.PendingOrder.Totals.Shipping.String(),
			Tax:      session.PendingOrder.Totals.Tax.String(),
			Total:    session.PendingOrder.Totals.Total.String(),
			PlacedAt: session.PendingOrder.PlacedAt,
		}
	}

	return model
}

func (c *SessionConverterImpl) ToEntity(model *SessionRedisModel, catalog *domain.Catalog) (*domain.Session, error) {
	cart := domain.NewCart()
	for _, l := range model.Lines {
		product, ok := catalog.Product(l.ProductID)
		if !ok {
			// Товар исчез из каталога между рестартами — позиция отбрасывается.
			continue
		}
		cart.AddItem(product)
		cart.UpdateQuantity(product.ID, l.Quantity)
	}

	nav := &domain.NavigationState{
		CurrentView:      domain.View(model.CurrentView),
		PreviousView:     domain.View(model.PreviousView),
		SelectedCategory: model.SelectedCategory,
	}
	if model.SelectedProductID != "" {
		if product, ok := catalog.Product(model.SelectedProductID); ok {
			nav.SelectedProduct = &product
		}
	}
	if nav.CurrentView == domain.ViewProductDetail && nav.SelectedProduct == nil {
		return nil, e.ErrProductRequired
	}

	session := &domain.Session{
		ID:         model.ID,
		Cart:       cart,
		Navigation: nav,
		Filters: domain.FilterState{
			Categories:    model.Filters.Categories,
			Subcategories: model.Filters.Subcategories,
			Items:         model.Filters.Items,
			PriceMin:      model.Filters.PriceMin,
			PriceMax:      model.Filters.PriceMax,
			SearchQuery:   model.Filters.SearchQuery,
		},
		Sort:         domain.ParseSortKey(model.Sort),
		PaymentStage: domain.PaymentStage(model.PaymentStage),
		CreatedAt:    model.CreatedAt,
	}

	if model.PendingOrder != nil {
		totals, err := parseTotals(model.PendingOrder)
		if err != nil {
			return nil, err
		}
		session.PendingOrder = &domain.PendingOrder{
			ID:       model.PendingOrder.ID,
			Totals:   totals,
			PlacedAt: model.PendingOrder.PlacedAt,
		}
	}

	return session, nil
}

func parseTotals(model *PendingOrderRedisModel) (domain.CheckoutTotals, error) {
	var totals domain.CheckoutTotals
	var err error

	if totals.Subtotal, err = decimal.NewFromString(model.Subtotal); err != nil {
		return totals, err
	}
	if totals.Shipping, err = decimal.NewFromString(model.Shipping); err != nil {
		return totals, err
	}
	if totals.Tax, err = decimal.NewFromString(model.Tax); err != nil {
		return totals, err
	}
	if totals.Total, err = decimal.NewFromString(model.Total); err != nil {
		return totals, err
	}

	return totals, nil
}
