package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"MeshiGacha-App/internal/domain/model"
)

// Config サーバーの設定
type Config struct {
	Server struct {
		Address string `yaml:"address"`
	} `yaml:"server"`
	Google struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"google"`
	Location struct {
		DefaultLat float64 `yaml:"default_lat"`
		DefaultLng float64 `yaml:"default_lng"`
	} `yaml:"location"`
}

// Load 設定ファイルと環境変数から設定を読み込む
// ファイルが存在しない場合はデフォルト値を使用する
// GOOGLE_MAPS_API_KEYとSERVER_ADDRESSは環境変数が優先される
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("設定ファイルの解析に失敗: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
		}
	}

	if addr := os.Getenv("SERVER_ADDRESS"); addr != "" {
		cfg.Server.Address = addr
	}
	if key := os.Getenv("GOOGLE_MAPS_API_KEY"); key != "" {
		cfg.Google.APIKey = key
	}

	return cfg, nil
}

// DefaultLocation 位置取得失敗時のフォールバック座標を取得
func (c *Config) DefaultLocation() model.LatLng {
	return model.LatLng{Lat: c.Location.DefaultLat, Lng: c.Location.DefaultLng}
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Server.Address = ":8080"
	loc := model.DefaultLocation()
	cfg.Location.DefaultLat = loc.Lat
	cfg.Location.DefaultLng = loc.Lng
	return cfg
}
