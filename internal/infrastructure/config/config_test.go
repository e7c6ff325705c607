package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"UNION_APP_NAME":          os.Getenv("UNION_APP_NAME"),
		"UNION_APP_ENV":           os.Getenv("UNION_APP_ENV"),
		"UNION_APP_PORT":          os.Getenv("UNION_APP_PORT"),
		"UNION_DATABASE_HOST":     os.Getenv("UNION_DATABASE_HOST"),
		"UNION_DATABASE_PORT":     os.Getenv("UNION_DATABASE_PORT"),
		"UNION_DATABASE_USER":     os.Getenv("UNION_DATABASE_USER"),
		"UNION_DATABASE_PASSWORD": os.Getenv("UNION_DATABASE_PASSWORD"),
		"UNION_DATABASE_DBNAME":   os.Getenv("UNION_DATABASE_DBNAME"),
		"UNION_DATABASE_SSLMODE":  os.Getenv("UNION_DATABASE_SSLMODE"),
		"UNION_JWT_SECRET":        os.Getenv("UNION_JWT_SECRET"),
		"UNION_STORAGE_BUCKET":    os.Getenv("UNION_STORAGE_BUCKET"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	clearEnv := func() {
		for k := range originalEnv {
			os.Unsetenv(k)
		}
	}

	t.Run("loads default values when env vars not set", func(t *testing.T) {
		clearEnv()

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "union-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "union", cfg.Database.DBName)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, "union-documents", cfg.Storage.Bucket)
		assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)
	})

	t.Run("loads values from environment variables with UNION prefix", func(t *testing.T) {
		clearEnv()
		os.Setenv("UNION_APP_NAME", "test-app")
		os.Setenv("UNION_APP_PORT", "9000")
		os.Setenv("UNION_DATABASE_HOST", "testdb.local")
		os.Setenv("UNION_DATABASE_PORT", "5433")
		os.Setenv("UNION_DATABASE_PASSWORD", "testpass")
		os.Setenv("UNION_STORAGE_BUCKET", "test-docs")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, "testpass", cfg.Database.Password)
		assert.Equal(t, "test-docs", cfg.Storage.Bucket)
	})

	t.Run("rejects production config without jwt secret", func(t *testing.T) {
		clearEnv()
		os.Setenv("UNION_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.local",
		Port:     5432,
		User:     "union",
		Password: "p@ss/word",
		DBName:   "union",
		SSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.local:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// Special characters in the password must be escaped
	assert.NotContains(t, dsn, "p@ss/word")
}
