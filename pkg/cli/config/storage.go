package config

import (
	"context"

	"github.com/complypilot/complypilot/pkg/service/storage"
	"github.com/complypilot/complypilot/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Storage holds CLI flags for document blob storage configuration
type Storage struct {
	backend string
	bucket  string
	prefix  string
}

// Flags returns CLI flags for storage configuration
func (s *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage-backend",
			Usage:       "Document storage backend type (gcs or memory)",
			Value:       "gcs",
			Sources:     cli.EnvVars("COMPLYPILOT_STORAGE_BACKEND"),
			Destination: &s.backend,
		},
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "Cloud Storage bucket for uploaded documents (required when using gcs backend)",
			Sources:     cli.EnvVars("COMPLYPILOT_GCS_BUCKET"),
			Destination: &s.bucket,
		},
		&cli.StringFlag{
			Name:        "gcs-prefix",
			Usage:       "Object name prefix within the bucket",
			Sources:     cli.EnvVars("COMPLYPILOT_GCS_PREFIX"),
			Destination: &s.prefix,
		},
	}
}

// Configure initializes and returns a blob storage service based on the
// configured backend.
func (s *Storage) Configure(ctx context.Context) (storage.Service, error) {
	switch s.backend {
	case "gcs":
		if s.bucket == "" {
			return nil, goerr.New("gcs-bucket is required when using gcs backend")
		}
		var opts []storage.GCSOption
		if s.prefix != "" {
			opts = append(opts, storage.WithPrefix(s.prefix))
		}
		svc, err := storage.NewGCS(ctx, s.bucket, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize GCS storage")
		}
		logging.Default().Info("Using Cloud Storage for documents",
			"bucket", s.bucket,
			"prefix", s.prefix,
		)
		return svc, nil

	case "memory":
		logging.Default().Info("Using in-memory document storage (development mode)")
		return storage.NewMemory(), nil

	default:
		return nil, goerr.New("invalid storage backend", goerr.V("backend", s.backend))
	}
}
