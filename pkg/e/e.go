package e

import "fmt"

var (
	// Внутренние ошибки
	ErrInternalServerError  = fmt.Errorf("internal server error")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")

	// Ошибки каталога
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrEmptyCatalog    = fmt.Errorf("catalog is empty")

	// Ошибки сессии и корзины
	ErrSessionNotFound  = fmt.Errorf("session not found")
	ErrCartLineNotFound = fmt.Errorf("cart line not found")
	ErrEmptyCart        = fmt.Errorf("cart is empty")

	// Ошибки навигации
	ErrInvalidTransition = fmt.Errorf("navigation transition is not allowed")
	ErrProductRequired   = fmt.Errorf("product is required for product detail view")
	ErrUnknownView       = fmt.Errorf("unknown view")

	// Ошибки оформления заказа
	ErrUnsupportedRegion = fmt.Errorf("shipping region is not supported")
	ErrPaymentInProgress = fmt.Errorf("payment is already in progress")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrMissingFields    = fmt.Errorf("missing required fields")
	ErrInvalidQuantity  = fmt.Errorf("invalid quantity value")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
