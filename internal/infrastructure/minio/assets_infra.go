package minio

import (
	"context"
	"net/url"
	"strings"

	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
	"github.com/msr-works/storefront-backend/internal/cfg"
	"github.com/msr-works/storefront-backend/pkg/e"
	"github.com/msr-works/storefront-backend/pkg/logger"
)

// AssetsInfra выдает временные ссылки на изображения каталога из MinIO.
type AssetsInfra struct {
	mc     *minio.Client
	cfg    *cfg.MinIOCfg
	logger logger.Logger
}

func NewAssetsInfra(mc *minio.Client, cfg *cfg.MinIOCfg, logger logger.Logger) *AssetsInfra {
	return &AssetsInfra{
		mc:     mc,
		cfg:    cfg,
		logger: logger,
	}
}

// ResolveImage превращает ключ объекта в presigned-ссылку.
// Внешние URL каталога возвращаются как есть. При недоступности MinIO
// отдается исходный ключ, чтобы не рушить выдачу каталога из-за картинки.
func (a *AssetsInfra) ResolveImage(ctx context.Context, key string) string {
	if key == "" {
		return ""
	}

	if strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://") {
		return key
	}

	presigned, err := a.mc.PresignedGetObject(ctx, a.cfg.BucketName, key, a.cfg.ImageURLTTL, url.Values{})
	if err != nil {
		a.logger.Warnf("presign failed for %q: %v", key, e.Wrap(whereami.WhereAmI(), err))
		return key
	}

	return presigned.String()
}
