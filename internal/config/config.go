package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Photos   PhotosConfig
	Static   StaticConfig
	Auth     AuthConfig
	Users    UsersConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Log      LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	// Path - путь к файлу SQLite. БД создаётся при первом обращении.
	Path string
}

type PhotosConfig struct {
	// Root - корневой каталог для файлов фотографий, задаётся явно
	// (никакой привязки к текущему каталогу процесса).
	Root string
}

type StaticConfig struct {
	Dir string
}

type AuthConfig struct {
	// JWTSecret - ключ проверки подписи bearer-токенов (HS256).
	JWTSecret string
}

type UsersConfig struct {
	// BaseURL - адрес внешнего сервиса пользователей.
	// Пустое значение отключает обогащение автором.
	BaseURL string
	// RequestTimeout - таймаут запроса в секундах.
	RequestTimeout int
}

type RedisConfig struct {
	// Host пустой - сервис работает без кеша профилей.
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	ProfileCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// .env необязателен: при его отсутствии работаем только с переменными окружения
	_ = viper.ReadInConfig()

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Path: viper.GetString("DB_PATH"),
		},
		Photos: PhotosConfig{
			Root: viper.GetString("PHOTOS_DIR"),
		},
		Static: StaticConfig{
			Dir: viper.GetString("STATIC_DIR"),
		},
		Auth: AuthConfig{
			JWTSecret: viper.GetString("JWT_SECRET"),
		},
		Users: UsersConfig{
			BaseURL:        viper.GetString("USERS_API_URL"),
			RequestTimeout: viper.GetInt("USERS_API_TIMEOUT"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			ProfileCacheTTL: time.Duration(viper.GetInt("PROFILE_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "PlaceDB/place.db"
	}
	if cfg.Photos.Root == "" {
		cfg.Photos.Root = "Photos"
	}
	if cfg.Static.Dir == "" {
		cfg.Static.Dir = "./static"
	}
	if cfg.Users.RequestTimeout == 0 {
		cfg.Users.RequestTimeout = 10
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Cache.ProfileCacheTTL == 0 {
		cfg.Cache.ProfileCacheTTL = 5 * time.Minute
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
