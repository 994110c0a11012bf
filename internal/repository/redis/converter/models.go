package converter

import "time"

// SessionRedisModel — сериализуемое представление сессии в Redis.
// Позиции корзины хранят только идентификатор товара и количество:
// товар восстанавливается из неизменяемого каталога при чтении.
type SessionRedisModel struct {
	ID                string                  `json:"id"`
	Lines             []CartLineRedisModel    `json:"lines"`
	CurrentView       string                  `json:"current_view"`
	PreviousView      string                  `json:"previous_view"`
	SelectedProductID string                  `json:"selected_product_id,omitempty"`
	SelectedCategory  string                  `json:"selected_category,omitempty"`
	Filters           FilterRedisModel        `json:"filters"`
	Sort              string                  `json:"sort"`
	PaymentStage      string                  `json:"payment_stage,omitempty"`
	PendingOrder      *PendingOrderRedisModel `json:"pending_order,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
}

type CartLineRedisModel struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type FilterRedisModel struct {
	Categories    []string `json:"categories,omitempty"`
	Subcategories []string `json:"subcategories,omitempty"`
	Items         []string `json:"items,omitempty"`
	PriceMin      int64    `json:"price_min"`
	PriceMax      int64    `json:"price_max"`
	SearchQuery   string   `json:"search_query,omitempty"`
}

type PendingOrderRedisModel struct {
	ID       string    `json:"id"`
	Subtotal string    `json:"subtotal"`
	Shipping string    `json:"shipping"`
	Tax      string    `json:"tax"`
	Total    string    `json:"total"`
	PlacedAt time.Time `json:"placed_at"`
}
