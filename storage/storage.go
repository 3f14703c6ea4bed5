package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage holds the case documents clients upload (procurações, CTPS
// scans, prints de conversa, faturas). The database keeps only the
// returned path; the bytes live behind this interface.
type Storage interface {
	// Upload stores a document and returns its storage path
	Upload(ctx context.Context, fileID uuid.UUID, filename string, data io.Reader) (string, error)

	// Download retrieves a document by storage path
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)

	// Delete removes a document by storage path
	Delete(ctx context.Context, storagePath string) error
}

// StorageType represents the storage backend type
type StorageType string

const (
	StorageTypeLocal StorageType = "local"
	StorageTypeS3    StorageType = "s3"
)

// StorageConfig holds configuration for storage
type StorageConfig struct {
	Type         StorageType
	LocalPath    string // For local storage
	S3Bucket     string // For S3 storage
	S3Region     string // For S3 storage
	AWSAccessKey string
	AWSSecretKey string
}

// NewStorage creates a storage instance based on configuration
func NewStorage(cfg StorageConfig) (Storage, error) {
	switch cfg.Type {
	case StorageTypeLocal:
		return NewLocalStorage(cfg.LocalPath)
	case StorageTypeS3:
		if cfg.S3Bucket == "" {
			return nil, errors.New("S3 storage requires a bucket name")
		}
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}

// NewStorageFromEnv creates a storage instance from environment
// variables. Local disk is the development default.
func NewStorageFromEnv() (Storage, error) {
	cfg := StorageConfig{
		Type:         StorageTypeLocal,
		LocalPath:    os.Getenv("STORAGE_LOCAL_PATH"),
		S3Bucket:     os.Getenv("AWS_S3_BUCKET"),
		S3Region:     os.Getenv("AWS_REGION"),
		AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}
	if t := os.Getenv("STORAGE_TYPE"); t != "" {
		cfg.Type = StorageType(t)
	}
	if cfg.LocalPath == "" {
		cfg.LocalPath = "./data/documentos"
	}
	if cfg.S3Region == "" {
		cfg.S3Region = "us-east-1"
	}
	return NewStorage(cfg)
}

const maxSlugLen = 80

// documentPath builds the storage key for one case document:
// documentos/<id prefix>/<id>_<slug><ext>. The uuid guarantees
// uniqueness; the slug keeps keys readable when browsing the bucket.
func documentPath(fileID uuid.UUID, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	slug := slugify(strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename)))
	if slug == "" {
		slug = "documento"
	}
	id := fileID.String()
	return fmt.Sprintf("documentos/%s/%s_%s%s", id[:2], id, slug, ext)
}

// slugify lowercases and keeps only letters, digits, dash and underscore;
// everything else collapses to underscores.
func slugify(name string) string {
	var sb strings.Builder
	lastUnderscore := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			sb.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				sb.WriteByte('_')
				lastUnderscore = true
			}
		}
		if sb.Len() >= maxSlugLen {
			break
		}
	}
	return strings.Trim(sb.String(), "_")
}
