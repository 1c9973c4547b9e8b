package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeSecrets(t *testing.T, contents string) string {
	path := filepath.Join(t.TempDir(), "secrets.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadSecrets(t *testing.T) {
	t.Run("reads file and applies defaults", func(t *testing.T) {
		path := writeSecrets(t, `{
			"db": {"host": "localhost", "user": "postgres", "password": "postgres", "database": "factorrank"}
		}`)

		secrets, err := loadSecretsFrom(path)
		require.NoError(t, err)
		require.Equal(t, "localhost", secrets.Db.Host)
		require.Equal(t, "5432", secrets.Db.Port)
		require.Equal(t, 3009, secrets.Port)
		require.Equal(t, 90, secrets.Scoring.PriceLookback)
		require.Equal(t, 5*time.Minute, secrets.Scoring.PriceCacheTtl)
		require.Equal(
			t,
			"host=localhost port=5432 user=postgres password=postgres dbname=factorrank sslmode=disable",
			secrets.Db.ToConnectionStr(),
		)
	})

	t.Run("env overrides file", func(t *testing.T) {
		path := writeSecrets(t, `{"db": {"host": "localhost", "password": "from-file"}}`)
		t.Setenv("FACTORRANK_DB_PASSWORD", "from-env")

		secrets, err := loadSecretsFrom(path)
		require.NoError(t, err)
		require.Equal(t, "from-env", secrets.Db.Password)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadSecretsFrom(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})
}
