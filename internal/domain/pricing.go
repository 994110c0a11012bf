package domain

import "github.com/shopspring/decimal"

// Бизнес-константы доставки и налога. Не настраиваются в рантайме.
const (
	// FreeShippingThreshold — порог бесплатной доставки. Порог строгий:
	// при сумме ровно 50000 доставка еще платная.
	FreeShippingThreshold int64 = 50000
	// ShippingFee — фиксированная стоимость доставки ниже порога.
	ShippingFee int64 = 500
)

// taxRate — единая ставка налога 10%. Налог начисляется только на экране оплаты,
// сводка корзины показывается без налоговой строки.
var taxRate = decimal.New(1, -1)

// CartSummary — итоги корзины без налога (экран корзины).
type CartSummary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
	// FreeShippingRemainder — сколько осталось добрать до бесплатной доставки.
	// Ноль, если корзина пуста или порог уже пройден.
	FreeShippingRemainder decimal.Decimal
}

// CheckoutTotals — итоги заказа с налогом (экран оплаты).
type CheckoutTotals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Subtotal суммирует цену×количество по всем позициям.
func Subtotal(lines []CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		lineTotal := decimal.NewFromInt(l.Product.Price).Mul(decimal.NewFromInt(int64(l.Quantity)))
		sum = sum.Add(lineTotal)
	}
	return sum
}

// ShippingFor возвращает стоимость доставки для данной суммы.
func ShippingFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(decimal.NewFromInt(FreeShippingThreshold)) {
		return decimal.Zero
	}
	return decimal.NewFromInt(ShippingFee)
}

// SummarizeCart считает итоги для экрана корзины. Корзина не изменяется.
func SummarizeCart(lines []CartLine) CartSummary {
	subtotal := Subtotal(lines)
	shipping := ShippingFor(subtotal)

	remainder := decimal.Zero
	threshold := decimal.NewFromInt(FreeShippingThreshold)
	if subtotal.IsPositive() && subtotal.LessThan(threshold) {
		remainder = threshold.Sub(subtotal)
	}

	return CartSummary{
		Subtotal:              subtotal,
		Shipping:              shipping,
		Total:                 subtotal.Add(shipping),
		FreeShippingRemainder: remainder,
	}
}

// CalculateCheckout считает итоги для экрана оплаты, включая налог.
func CalculateCheckout(lines []CartLine) CheckoutTotals {
	subtotal := Subtotal(lines)
	shipping := ShippingFor(subtotal)
	tax := subtotal.Mul(taxRate)

	return CheckoutTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}
