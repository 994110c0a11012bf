package domain

import "time"

// PaymentStage — стадия имитации оплаты.
// Последовательность фиксирована: form -> processing -> success,
// каждая стадия удерживается минимум заданное время.
type PaymentStage string

const (
	PaymentStageNone       PaymentStage = ""           // Оплата не начата
	PaymentStageForm       PaymentStage = "form"       // Открыт экран оплаты
	PaymentStageProcessing PaymentStage = "processing" // Заказ отправлен, идет «обработка»
	PaymentStageSuccess    PaymentStage = "success"    // Оплата завершена, корзина еще не очищена
)

// PendingOrder — снимок отправленного заказа на время имитации оплаты.
type PendingOrder struct {
	ID       string
	Totals   CheckoutTotals
	PlacedAt time.Time
}

// Session — состояние одной пользовательской сессии: корзина, навигация,
// фильтры витрины и стадия оплаты. Живет только в памяти (или в Redis с TTL),
// между сессиями не переносится.
type Session struct {
	ID           string
	Cart         *Cart
	Navigation   *NavigationState
	Filters      FilterState
	Sort         SortKey
	PaymentStage PaymentStage
	PendingOrder *PendingOrder
	CreatedAt    time.Time
}

// NewSession создает пустую сессию: пустая корзина, экран home, фильтры по умолчанию.
func NewSession(id string, now time.Time) *Session {
	return &Session{
		ID:         id,
		Cart:       NewCart(),
		Navigation: NewNavigationState(),
		Filters:    NewFilterState(),
		Sort:       SortFeatured,
		CreatedAt:  now,
	}
}
