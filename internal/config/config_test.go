package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("ファイルが存在しない場合はデフォルト値を使用", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Server.Address)
		assert.Equal(t, 22.6247, cfg.Location.DefaultLat)
		assert.Equal(t, 120.3578, cfg.Location.DefaultLng)
	})

	t.Run("YAMLファイルから設定を読み込む", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `server:
  address: ":9090"
google:
  api_key: "file-key"
location:
  default_lat: 35.0116
  default_lng: 135.7681
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ":9090", cfg.Server.Address)
		assert.Equal(t, "file-key", cfg.Google.APIKey)
		assert.Equal(t, 35.0116, cfg.DefaultLocation().Lat)
	})

	t.Run("環境変数がファイルの設定より優先される", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `google:
  api_key: "file-key"
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		t.Setenv("GOOGLE_MAPS_API_KEY", "env-key")
		t.Setenv("SERVER_ADDRESS", ":7070")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.Google.APIKey)
		assert.Equal(t, ":7070", cfg.Server.Address)
	})

	t.Run("不正なYAMLはエラー", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [broken"), 0644))

		_, err := Load(path)
		assert.Error(t, err)
	})
}
