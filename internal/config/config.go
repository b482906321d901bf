// Package config загружает настройки плагина из окружения.
//
// Приоритет источников (от низшего к высшему): значения по умолчанию,
// env-файл, переменные SOLR_*, переменные в стиле Munin (env.host и т.п.
// в plugin-conf.d превращаются в переменную host).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix - префикс переменных окружения для envconfig.
const Prefix = "solr"

// Ошибки валидации конфигурации
var (
	ErrInvalidScheme = errors.New("scheme must be 'http' or 'https'")
	ErrInvalidHost   = errors.New("host cannot be empty")
	ErrInvalidPort   = errors.New("port must be between 1 and 65535")
)

// Config - настройки доступа к Solr.
type Config struct {
	Scheme       string `default:"http"`
	Host         string `default:"127.0.0.1"`
	Port         int    `default:"8983"`
	Path         string `default:"solr"`
	QueryHandler string `split_words:"true" default:"/select"`
	LogLevel     string `split_words:"true" default:"warn"`
}

// Load собирает конфигурацию. envFile может быть пустым.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		// godotenv.Load не перезаписывает уже заданные переменные
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := applyMuninEnv(&cfg); err != nil {
		return nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyMuninEnv применяет переменные, заданные через env.* в plugin-conf.d.
func applyMuninEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("scheme"); ok {
		cfg.Scheme = v
	}
	if v, ok := os.LookupEnv("host"); ok {
		cfg.Host = v
	}
	if v, ok := os.LookupEnv("port"); ok {
		port, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("invalid port %q: %w", v, err)
		}
		cfg.Port = port
	}
	if v, ok := os.LookupEnv("path"); ok {
		cfg.Path = v
	}
	if v, ok := os.LookupEnv("query_handler"); ok {
		cfg.QueryHandler = v
	}
	return nil
}

// Validate проверяет конфигурацию и возвращает ошибку, если она некорректна.
func Validate(cfg *Config) error {
	if cfg.Scheme != "http" && cfg.Scheme != "https" {
		return ErrInvalidScheme
	}
	if strings.TrimSpace(cfg.Host) == "" {
		return ErrInvalidHost
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return ErrInvalidPort
	}
	return nil
}

// StatsURL возвращает адрес страницы статистики:
// {scheme}://{host}:{port}/{path}/admin/stats.jsp
func (c *Config) StatsURL() string {
	path := strings.Trim(c.Path, "/")
	if path != "" {
		path += "/"
	}
	return fmt.Sprintf("%s://%s:%d/%sadmin/stats.jsp", c.Scheme, c.Host, c.Port, path)
}
