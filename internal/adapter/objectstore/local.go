package objectstore

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Kleberfca/timeline-project-system/internal/ports"
	"github.com/Kleberfca/timeline-project-system/pkg/config"
)

// LocalStore keeps objects on the local filesystem under basePath/bucket/.
// Private objects are served through the signed-URL route; public objects
// get a stable URL under /storage/.
type LocalStore struct {
	basePath   string
	baseURL    string
	signingKey []byte
	log        *zap.Logger
}

func NewLocalStore(cfg config.StorageConfig, baseURL string, log *zap.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.BasePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &LocalStore{
		basePath:   cfg.BasePath,
		baseURL:    strings.TrimRight(baseURL, "/"),
		signingKey: []byte(cfg.SigningKey),
		log:        log,
	}, nil
}

var _ ports.ObjectStore = (*LocalStore)(nil)

func (s *LocalStore) Put(ctx context.Context, bucket, path string, r io.Reader, size int64, contentType string) error {
	full, err := s.resolve(bucket, path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return err
	}

	f, err := os.Create(full)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, io.LimitReader(r, size)); err != nil {
		os.Remove(full)
		return err
	}
	return nil
}

func (s *LocalStore) Get(ctx context.Context, bucket, path string) (io.ReadCloser, error) {
	full, err := s.resolve(bucket, path)
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

func (s *LocalStore) Delete(ctx context.Context, bucket, path string) error {
	full, err := s.resolve(bucket, path)
	if err != nil {
		return err
	}
	err = os.Remove(full)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// SignedURL returns a time-limited URL for a private object. The signature
// covers bucket, path and expiry, so any tampering invalidates it.
func (s *LocalStore) SignedURL(bucket, path string, expires time.Duration) (string, error) {
	exp := time.Now().Add(expires).Unix()
	sig := s.sign(bucket, path, exp)

	q := url.Values{}
	q.Set("expires", strconv.FormatInt(exp, 10))
	q.Set("signature", sig)

	return fmt.Sprintf("%s/storage/%s/%s?%s", s.baseURL, bucket, encodePath(path), q.Encode()), nil
}

func (s *LocalStore) PublicURL(bucket, path string) string {
	return fmt.Sprintf("%s/storage/%s/%s", s.baseURL, bucket, encodePath(path))
}

// Verify checks the signature and expiry produced by SignedURL.
func (s *LocalStore) Verify(bucket, path, signature string, expires int64) bool {
	if time.Now().Unix() > expires {
		return false
	}
	expected := s.sign(bucket, path, expires)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (s *LocalStore) sign(bucket, path string, expires int64) string {
	mac := hmac.New(sha256.New, s.signingKey)
	fmt.Fprintf(mac, "%s/%s:%d", bucket, path, expires)
	return hex.EncodeToString(mac.Sum(nil))
}

// resolve joins bucket and path under basePath, rejecting traversal.
func (s *LocalStore) resolve(bucket, path string) (string, error) {
	cleaned := filepath.Clean("/" + path)
	if strings.Contains(bucket, "..") || strings.ContainsAny(bucket, "/\\") {
		return "", fmt.Errorf("invalid bucket: %s", bucket)
	}
	return filepath.Join(s.basePath, bucket, cleaned), nil
}

func encodePath(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}
