package domain

import (
	"fmt"
	"strings"

	"github.com/msr-works/storefront-backend/pkg/e"
)

// SupportedRegion — единственный регион доставки в текущем бизнес-правиле.
const SupportedRegion = "Uttar Pradesh"

// RegionRule — подключаемый предикат допустимости региона доставки.
// Список поддерживаемых регионов расширяется заменой правила,
// автомат навигации при этом не меняется.
type RegionRule func(region string) bool

// DefaultRegionRule допускает единственный поддерживаемый регион.
func DefaultRegionRule(region string) bool {
	return region == SupportedRegion
}

// OrderForm — данные формы оплаты, проверяемые перед отправкой заказа.
type OrderForm struct {
	FullName      string
	Email         string
	Phone         string
	Address       string
	City          string
	State         string
	ZipCode       string
	PaymentMethod string
}

// CheckoutValidator проверяет форму и регион доставки перед отправкой заказа.
type CheckoutValidator struct {
	allowed RegionRule
}

func NewCheckoutValidator(rule RegionRule) *CheckoutValidator {
	if rule == nil {
		rule = DefaultRegionRule
	}
	return &CheckoutValidator{allowed: rule}
}

// ValidateForm требует заполнения всех полей формы.
// Какие именно поля пусты, наружу не сообщается: форма отклоняется целиком.
func (v *CheckoutValidator) ValidateForm(form *OrderForm) error {
	required := []string{
		form.FullName,
		form.Email,
		form.Phone,
		form.Address,
		form.City,
		form.State,
		form.ZipCode,
		form.PaymentMethod,
	}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return e.ErrMissingFields
		}
	}

	return nil
}

// ValidateRegion возвращает nil для поддерживаемого или незаполненного региона.
// Пустой регион трактуется как «еще не введен» и не блокирует до момента отправки.
// Для неподдерживаемого непустого региона возвращается e.ErrUnsupportedRegion
// с указанием региона; состояние навигации вызывающая сторона не меняет.
func (v *CheckoutValidator) ValidateRegion(region string) error {
	if region == "" {
		return nil
	}
	if v.allowed(region) {
		return nil
	}
	return fmt.Errorf("%q: %w", region, e.ErrUnsupportedRegion)
}
