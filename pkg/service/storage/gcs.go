package storage

import (
	"context"
	"errors"
	"io"
	"path"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"

	"github.com/complypilot/complypilot/pkg/domain/types"
	"github.com/complypilot/complypilot/pkg/utils/safe"
)

// GCS stores blobs in a Google Cloud Storage bucket, optionally under a
// fixed object prefix so one bucket can back several deployments.
type GCS struct {
	client *storage.Client
	bucket string
	prefix string
}

var _ Service = &GCS{}

type GCSOption func(*GCS)

// WithPrefix stores all objects under the given prefix.
func WithPrefix(prefix string) GCSOption {
	return func(g *GCS) {
		g.prefix = prefix
	}
}

// NewGCS creates a GCS-backed blob store. Credentials come from the ambient
// environment the same way as the Firestore client.
func NewGCS(ctx context.Context, bucket string, opts ...GCSOption) (*GCS, error) {
	if bucket == "" {
		return nil, goerr.New("bucket name is required", goerr.T(types.ErrTagValidation))
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client", goerr.V("bucket", bucket))
	}

	g := &GCS{
		client: client,
		bucket: bucket,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

func (g *GCS) object(key string) *storage.ObjectHandle {
	name := key
	if g.prefix != "" {
		name = path.Join(g.prefix, key)
	}
	return g.client.Bucket(g.bucket).Object(name)
}

func (g *GCS) Put(ctx context.Context, key string, data []byte, contentType string) error {
	w := g.object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write object", goerr.V("key", key))
	}

	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize object", goerr.V("key", key))
	}

	return nil
}

func (g *GCS) Get(ctx context.Context, key string) ([]byte, error) {
	r, err := g.object(key).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, goerr.Wrap(err, "object not found", goerr.T(types.ErrTagNotFound), goerr.V("key", key))
		}
		return nil, goerr.Wrap(err, "failed to open object", goerr.V("key", key))
	}
	defer safe.Close(ctx, r)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read object", goerr.V("key", key))
	}

	return data, nil
}

func (g *GCS) Delete(ctx context.Context, key string) error {
	if err := g.object(key).Delete(ctx); err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return goerr.Wrap(err, "object not found", goerr.T(types.ErrTagNotFound), goerr.V("key", key))
		}
		return goerr.Wrap(err, "failed to delete object", goerr.V("key", key))
	}
	return nil
}

// Close releases the underlying client.
func (g *GCS) Close() error {
	return g.client.Close()
}
