package ports

import (
	"context"
	"io"
	"time"
)

// ObjectStore abstrai o armazenamento de objetos por bucket.
// O bucket "arquivos" é privado e servido via URL assinada;
// o bucket "sistema" é público.
type ObjectStore interface {
	Put(ctx context.Context, bucket, path string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, bucket, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, bucket, path string) error
	// SignedURL gera uma URL temporária de leitura para objetos privados.
	SignedURL(bucket, path string, expires time.Duration) (string, error)
	// PublicURL gera a URL estável de um objeto em bucket público.
	PublicURL(bucket, path string) string
}
