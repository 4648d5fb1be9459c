// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env                     string `yaml:"env" env-default:"local"`
	StorageConnectionString string `yaml:"storage_connection_string" env:"STORAGE_CONNECTION_STRING"`
	RedisConnection         `yaml:"redis_connection"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
	Stripe                  `yaml:"stripe"`
	CurrencyAPI             `yaml:"currency_api"`
	RabbitMQ                `yaml:"rabbitmq"`
	SMTP                    `yaml:"smtp"`
	Media                   `yaml:"media"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:":8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// JWTToken структура для работы с jwt-токенами.
// Access токен короткоживущий, refresh живёт сутки.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env:"JWT_SECRET_KEY"`
	AccessTTL    time.Duration `yaml:"access_ttl" env-default:"30m"`
	RefreshTTL   time.Duration `yaml:"refresh_ttl" env-default:"24h"`
}

// Stripe настройки платёжного провайдера. Ключ передаётся в явно
// сконструированный клиент, а не в глобальную переменную пакета.
type Stripe struct {
	APIKey     string `yaml:"api_key" env:"STRIPE_API_KEY"`
	SuccessURL string `yaml:"success_url" env-default:"http://localhost:8080/"`
	CancelURL  string `yaml:"cancel_url" env-default:"http://localhost:8080/"`
}

// CurrencyAPI настройки сервиса курсов валют.
type CurrencyAPI struct {
	AddressCurrency string `yaml:"address_currency" env-default:"https://api.frankfurter.app"`
}

// RabbitMQ настройки подключения к брокеру сообщений.
type RabbitMQ struct {
	URLRabbit string `yaml:"url_rabbit" env:"RABBITMQ_URL"`
}

// SMTP настройки почтового транспорта сервиса уведомлений.
type SMTP struct {
	SMTPHost     string `yaml:"smtp_host"`
	SMTPPort     string `yaml:"smtp_port"`
	SMTPUsername string `yaml:"smtp_username"`
	SMTPPassword string `yaml:"smtp_password" env:"SMTP_PASSWORD"`
	SMTPFrom     string `yaml:"smtp_from"`
}

// Media настройки файлового хранилища загрузок.
type Media struct {
	MediaDir       string `yaml:"media_dir" env-default:"./media"`
	MaxUploadBytes int64  `yaml:"max_upload_bytes" env-default:"2097152"` // 2 MB
}

// MustLoad загружает конфиг по пути из CONFIG_PATH и завершает процесс,
// если конфиг отсутствует или не читается.
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
