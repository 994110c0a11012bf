package usecase

import (
	"context"

	"github.com/msr-works/storefront-backend/internal/domain"
)

// CatalogRepository — источник каталога. Читается один раз при старте,
// после загрузки каталог неизменяем.
type CatalogRepository interface {
	LoadProducts(ctx context.Context) ([]domain.Product, error)
	LoadTaxonomy(ctx context.Context) ([]domain.Category, error)
}

// SessionRepository хранит состояние пользовательских сессий.
// Get возвращает e.ErrSessionNotFound для неизвестного идентификатора.
type SessionRepository interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, id string) error
}
