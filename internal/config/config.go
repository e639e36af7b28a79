package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// ViewerConfig — настройки терминального клиента.
type ViewerConfig struct {
	APIBaseURL string        `env:"API_BASE_URL" env-default:"http://localhost:8080"`
	APITimeout time.Duration `env:"API_TIMEOUT" env-default:"10s"`
	LogLevel   string        `env:"LOG_LEVEL" env-default:"info"`
}

// MockServerConfig — настройки фикстурного бэкенда.
type MockServerConfig struct {
	HTTPAddr   string `env:"HTTP_ADDR" env-default:":8080"`
	OrdersFile string `env:"ORDERS_FILE" env-default:"testdata/orders.json"`
	LogLevel   string `env:"LOG_LEVEL" env-default:"info"`
}

// LoadViewer читает окружение; .env рядом с бинарём опционален.
func LoadViewer() (*ViewerConfig, error) {
	_ = godotenv.Load(".env")
	var cfg ViewerConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func LoadMockServer() (*MockServerConfig, error) {
	_ = godotenv.Load(".env")
	var cfg MockServerConfig
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
