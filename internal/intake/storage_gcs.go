package intake

import (
	"context"
	"fmt"
	"io"

	gcs "cloud.google.com/go/storage"
)

// GCSStorage implements StorageClient using Google Cloud Storage.
type GCSStorage struct {
	client *gcs.Client
	bucket string
}

// NewGCSStorage creates a GCS-backed StorageClient.
// It uses Application Default Credentials (works with Workload Identity, SA keys, gcloud auth).
func NewGCSStorage(ctx context.Context, bucket string) (*GCSStorage, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcs client: %w", err)
	}
	return &GCSStorage{client: client, bucket: bucket}, nil
}

func (s *GCSStorage) key(sessionID, kind, id string) string {
	return sessionID + "/" + kind + "/" + id + ".json"
}

func (s *GCSStorage) put(ctx context.Context, key string, data []byte) error {
	w := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	w.ContentType = "application/json"
	if _, err := w.Write(data); err != nil {
		w.Close()
		return fmt.Errorf("gcs write %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("gcs close %s: %w", key, err)
	}
	return nil
}

func (s *GCSStorage) get(ctx context.Context, key string) ([]byte, error) {
	r, err := s.client.Bucket(s.bucket).Object(key).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("gcs read %s: %w", key, err)
	}
	defer r.Close()
	return io.ReadAll(r)
}

func (s *GCSStorage) PutAnswerSet(ctx context.Context, sessionID, assessmentID string, data []byte) error {
	return s.put(ctx, s.key(sessionID, "answers", assessmentID), data)
}

func (s *GCSStorage) GetAnswerSet(ctx context.Context, sessionID, assessmentID string) ([]byte, error) {
	return s.get(ctx, s.key(sessionID, "answers", assessmentID))
}

func (s *GCSStorage) PutOutcome(ctx context.Context, sessionID, outcomeID string, data []byte) error {
	return s.put(ctx, s.key(sessionID, "outcomes", outcomeID), data)
}

func (s *GCSStorage) GetOutcome(ctx context.Context, sessionID, outcomeID string) ([]byte, error) {
	return s.get(ctx, s.key(sessionID, "outcomes", outcomeID))
}
