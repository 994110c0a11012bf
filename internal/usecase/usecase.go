package usecase

import "context"

// StorefrontUC — интеракторы витрины: все интенты презентационного слоя
// и чтения, необходимые экранам.
type StorefrontUC interface {
	// Сессия и навигация
	GetSession(ctx context.Context, req *GetSessionReq) (*SessionRes, error)
	Navigate(ctx context.Context, req *NavigateReq) (*SessionRes, error)

	// Витрина
	GetListing(ctx context.Context, req *GetListingReq) (*GetListingRes, error)
	SetFilters(ctx context.Context, req *SetFiltersReq) (*GetListingRes, error)
	GetProduct(ctx context.Context, req *GetProductReq) (*ProductView, error)
	GetTaxonomy(ctx context.Context) (*GetTaxonomyRes, error)

	// Корзина
	GetCart(ctx context.Context, req *GetCartReq) (*CartRes, error)
	AddToCart(ctx context.Context, req *AddToCartReq) (*CartRes, error)
	UpdateCartLine(ctx context.Context, req *UpdateCartLineReq) (*CartRes, error)

	// Оформление заказа
	SubmitOrder(ctx context.Context, req *SubmitOrderReq) (*CheckoutStateRes, error)
	GetCheckoutState(ctx context.Context, req *GetCheckoutStateReq) (*CheckoutStateRes, error)
}
