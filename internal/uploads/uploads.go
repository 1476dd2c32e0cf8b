// Package uploads relays a multipart upload to where the ingestion source
// can read it back: a local directory in development, a GCS bucket in
// production. The returned handle is a local path or a public object URL.
package uploads

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"cloud.google.com/go/storage"
)

// Service saves one uploaded file and reports where it went. remote tells
// the caller which ingestion source variant to construct.
type Service interface {
	Save(ctx context.Context, dataset string, file *multipart.FileHeader) (handle string, remote bool, err error)
}

// LocalService stores uploads under <Dir>/<dataset>/.
type LocalService struct {
	Dir string
}

func NewLocalService(dir string) *LocalService {
	return &LocalService{Dir: dir}
}

func (s *LocalService) Save(ctx context.Context, dataset string, file *multipart.FileHeader) (string, bool, error) {
	dir := filepath.Join(s.Dir, dataset)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", false, fmt.Errorf("failed to create upload directory: %w", err)
	}

	src, err := file.Open()
	if err != nil {
		return "", false, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	path := filepath.Join(dir, objectName(file.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", false, fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", false, fmt.Errorf("failed to write upload file: %w", err)
	}
	return path, false, nil
}

// GCSService streams uploads to a bucket and hands back the public object
// URL, so the ingestion source re-reads it over plain HTTP.
type GCSService struct {
	Client *storage.Client
	Bucket string
}

func NewGCSService(client *storage.Client, bucket string) *GCSService {
	return &GCSService{Client: client, Bucket: bucket}
}

func (s *GCSService) Save(ctx context.Context, dataset string, file *multipart.FileHeader) (string, bool, error) {
	src, err := file.Open()
	if err != nil {
		return "", false, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	objectPath := "uploads/" + dataset + "/" + objectName(file.Filename)
	w := s.Client.Bucket(s.Bucket).Object(objectPath).NewWriter(ctx)

	if _, err := io.Copy(w, src); err != nil {
		return "", false, fmt.Errorf("failed to upload file to GCS: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", false, fmt.Errorf("failed to close GCS writer: %w", err)
	}

	return "https://storage.googleapis.com/" + s.Bucket + "/" + objectPath, true, nil
}

func objectName(filename string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(filename))
}
