package config_test

import (
	"testing"

	"github.com/complypilot/complypilot/pkg/cli/config"
	"github.com/m-mizutani/gt"
)

func TestRepository_Configure(t *testing.T) {
	t.Run("memory backend", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("memory", "", "")
		repo, err := cfg.Configure(t.Context())
		gt.NoError(t, err).Required()
		gt.Value(t, repo).NotNil()
		gt.NoError(t, repo.Close())
	})

	t.Run("firestore backend requires project ID", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("firestore", "", "")
		_, err := cfg.Configure(t.Context())
		gt.Error(t, err)
	})

	t.Run("rejects unknown backend", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("postgres", "", "")
		_, err := cfg.Configure(t.Context())
		gt.Error(t, err)
	})
}

func TestStorage_Configure(t *testing.T) {
	t.Run("memory backend", func(t *testing.T) {
		cfg := config.NewStorageForTest("memory", "", "")
		svc, err := cfg.Configure(t.Context())
		gt.NoError(t, err).Required()
		gt.Value(t, svc).NotNil()
	})

	t.Run("gcs backend requires bucket", func(t *testing.T) {
		cfg := config.NewStorageForTest("gcs", "", "")
		_, err := cfg.Configure(t.Context())
		gt.Error(t, err)
	})

	t.Run("rejects unknown backend", func(t *testing.T) {
		cfg := config.NewStorageForTest("s3", "", "")
		_, err := cfg.Configure(t.Context())
		gt.Error(t, err)
	})
}
