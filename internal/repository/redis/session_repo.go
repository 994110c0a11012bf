package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jimlawless/whereami"
	"github.com/msr-works/storefront-backend/internal/cfg"
	"github.com/msr-works/storefront-backend/internal/domain"
	"github.com/msr-works/storefront-backend/internal/repository/redis/converter"
	"github.com/msr-works/storefront-backend/pkg/clients"
	"github.com/msr-works/storefront-backend/pkg/e"
	"github.com/msr-works/storefront-backend/pkg/logger"
	r "github.com/redis/go-redis/v9"
)

// SessionRepo хранит сессии витрины в Redis.
// TTL ключа — время жизни неактивной сессии: каждое сохранение продлевает его.
// Это не межсессионная персистентность, а внешняя память одного сеанса.
type SessionRepo struct {
	client  *clients.RedisClient
	conv    converter.SessionConverter
	catalog *domain.Catalog
	cfg     *cfg.SessionCfg
	logger  logger.Logger
}

func NewSessionRepo(client *clients.RedisClient, conv converter.SessionConverter,
	catalog *domain.Catalog, cfg *cfg.SessionCfg, logger logger.Logger) *SessionRepo {
	return &SessionRepo{
		client:  client,
		conv:    conv,
		catalog: catalog,
		cfg:     cfg,
		logger:  logger,
	}
}

// Get возвращает сессию по идентификатору.
// Отсутствующий или нечитаемый ключ трактуется как e.ErrSessionNotFound.
func (s *SessionRepo) Get(ctx context.Context, id string) (*domain.Session, error) {
	data, err := s.client.Client.Get(ctx, s.sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, e.ErrSessionNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.SessionRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		s.logger.Warnf("Redis session unmarshal failed, dropping key: %v", e.Wrap(whereami.WhereAmI(), err))
		if delErr := s.client.Client.Del(context.Background(), s.sessionKey(id)).Err(); delErr != nil {
			s.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), delErr))
		}
		return nil, e.ErrSessionNotFound
	}

	session, err := s.conv.ToEntity(&model, s.catalog)
	if err != nil {
		s.logger.Warnf("Session restore failed, dropping key: %v", e.Wrap(whereami.WhereAmI(), err))
		if delErr := s.client.Client.Del(context.Background(), s.sessionKey(id)).Err(); delErr != nil {
			s.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), delErr))
		}
		return nil, e.ErrSessionNotFound
	}

	return session, nil
}

// Save сериализует сессию и продлевает TTL ключа.
func (s *SessionRepo) Save(ctx context.Context, session *domain.Session) error {
	model := s.conv.ToRedisModel(session)

	data, err := json.Marshal(model)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := s.client.Client.Set(ctx, s.sessionKey(session.ID), data, s.cfg.TTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// Delete удаляет сессию.
func (s *SessionRepo) Delete(ctx context.Context, id string) error {
	if err := s.client.Client.Del(ctx, s.sessionKey(id)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// sessionKey возвращает Redis-ключ для сессии.
func (s *SessionRepo) sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}
