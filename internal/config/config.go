// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env                     string `yaml:"env" env:"ENV" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING"`
	CORSAllowedOrigin       string `yaml:"cors_allowed_origin" env:"CORS_ALLOWED_ORIGIN" env-default:"*"`
	RedisConnection         `yaml:"redis_connection"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
	MediaStore              `yaml:"media_store"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env:"ADDRESS_HTTP"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis" env:"ADDRESS_REDIS"`
	Password     string        `yaml:"password" env:"REDIS_PASSWORD"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// JWTToken структура для работы с парой jwt-токенов: секреты и время жизни
// задаются отдельно для access и refresh токена.
type JWTToken struct {
	AccessSecretKey  string        `yaml:"access_secret_key" env:"ACCESS_TOKEN_SECRET"`
	RefreshSecretKey string        `yaml:"refresh_secret_key" env:"REFRESH_TOKEN_SECRET"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl" env-default:"15m"`
	RefreshTokenTTL  time.Duration `yaml:"refresh_token_ttl" env-default:"240h"`
}

// MediaStore структура для настройки подключения к S3-совместимому медиахранилищу
type MediaStore struct {
	Endpoint      string `yaml:"endpoint" env:"MEDIA_STORE_ENDPOINT"`
	Region        string `yaml:"region" env-default:"us-east-1"`
	Bucket        string `yaml:"bucket" env:"MEDIA_STORE_BUCKET"`
	AccessKey     string `yaml:"access_key" env:"MEDIA_STORE_ACCESS_KEY"`
	SecretKey     string `yaml:"secret_key" env:"MEDIA_STORE_SECRET_KEY"`
	PublicBaseURL string `yaml:"public_base_url" env:"MEDIA_STORE_PUBLIC_BASE_URL"`
}

// MustLoad функция для загрузки конфига, путь берется из переменной окружения CONFIG_PATH
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"StorageConnectionString: %s\n"+
			"CORSAllowedOrigin: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  User: %s\n"+
			"  DB: %d\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"JWTToken:\n"+
			"  AccessTokenTTL: %s\n"+
			"  RefreshTokenTTL: %s\n"+
			"MediaStore:\n"+
			"  Endpoint: %s\n"+
			"  Bucket: %s\n",
		c.Env,
		c.StorageConnectionString,
		c.CORSAllowedOrigin,
		c.AddressRedis,
		c.User,
		c.DB,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.AccessTokenTTL,
		c.RefreshTokenTTL,
		c.Endpoint,
		c.Bucket,
	)
}
