package config

import (
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata" // часовые пояса доступны и в минимальных образах

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// ErrInvalidConfig возвращается при некорректных значениях конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// envDBPassword переменная окружения, переопределяющая пароль БД
const envDBPassword = "CALENDAR_DB_PASSWORD"

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Calendar CalendarConfig `toml:"calendar"`
	Cache    CacheConfig    `toml:"cache"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`  // секунды
	WriteTimeout    int `toml:"write_timeout"` // секунды
	IdleTimeout     int `toml:"idle_timeout"`  // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CalendarConfig рабочие часы календаря
// Часы открытия/закрытия должны давать целое число часов
type CalendarConfig struct {
	OpenTime  string `toml:"open_time"`  // "08:00"
	CloseTime string `toml:"close_time"` // "17:00"
	Timezone  string `toml:"timezone"`   // IANA, например "Europe/Moscow"
}

// Location возвращает часовой пояс календаря
func (c CalendarConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

// Hours возвращает распарсенные часы открытия и закрытия
func (c CalendarConfig) Hours() (openTime, closeTime types.TimeString, err error) {
	openTime, err = types.NewTimeStringFromString(c.OpenTime)
	if err != nil {
		return "", "", fmt.Errorf("open_time: %w", err)
	}
	closeTime, err = types.NewTimeStringFromString(c.CloseTime)
	if err != nil {
		return "", "", fmt.Errorf("close_time: %w", err)
	}
	return openTime, closeTime, nil
}

type CacheConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"` // секунды
}

// Load загружает конфигурацию из TOML файла и применяет значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if password := os.Getenv(envDBPassword); password != "" {
		cfg.Database.Password = password
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "calendar-service",
		},
		Calendar: CalendarConfig{
			OpenTime:  domain.DefaultOpenTime,
			CloseTime: domain.DefaultCloseTime,
		},
		Cache: CacheConfig{
			Addr: "localhost:6379",
			TTL:  15,
		},
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}

	if c.Database.DBName == "" {
		return fmt.Errorf("%w: database.dbname is required", ErrInvalidConfig)
	}

	openTime, closeTime, err := c.Calendar.Hours()
	if err != nil {
		return fmt.Errorf("%w: calendar: %v", ErrInvalidConfig, err)
	}

	openMinutes, _ := openTime.Minutes()
	closeMinutes, _ := closeTime.Minutes()
	if closeMinutes <= openMinutes || (closeMinutes-openMinutes)%60 != 0 {
		return fmt.Errorf("%w: calendar hours %s-%s must span a positive whole number of hours",
			ErrInvalidConfig, openTime, closeTime)
	}

	if _, err := c.Calendar.Location(); err != nil {
		return fmt.Errorf("%w: calendar.timezone: %v", ErrInvalidConfig, err)
	}

	if c.Cache.Enabled {
		if c.Cache.Addr == "" {
			return fmt.Errorf("%w: cache.addr is required when cache is enabled", ErrInvalidConfig)
		}
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("%w: cache.ttl must be positive", ErrInvalidConfig)
		}
	}

	return nil
}
