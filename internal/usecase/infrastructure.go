package usecase

import "context"

// AssetsInfra разрешает ключи изображений каталога в отображаемые URL.
// Для бизнес-логики ключ непрозрачен; при сбое разрешения возвращается сам ключ.
type AssetsInfra interface {
	ResolveImage(ctx context.Context, key string) string
}

// OrderEventsProducer публикует событие успешно оформленного заказа.
type OrderEventsProducer interface {
	PublishOrderPlaced(ctx context.Context, req *OrderPlacedReq) error
}
