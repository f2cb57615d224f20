package config

import "time"

// Config agrega toda a configuração da aplicação
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Queue     QueueConfig     `mapstructure:"queue"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Email     EmailConfig     `mapstructure:"email"`
	Vault     VaultConfig     `mapstructure:"vault"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	BaseURL         string        `mapstructure:"base_url"`
	FrontendURL     string        `mapstructure:"frontend_url"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	Name         string `mapstructure:"name"`
	SSLMode      string `mapstructure:"ssl_mode"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
	// CleanupInterval controla a varredura de expirados do cache em memória
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	AccessTTL  time.Duration `mapstructure:"access_ttl"`
	RefreshTTL time.Duration `mapstructure:"refresh_ttl"`
	ResetTTL   time.Duration `mapstructure:"reset_ttl"`
	Issuer     string        `mapstructure:"issuer"`
}

type QueueConfig struct {
	// Provider: "nats" ou "rabbitmq"
	Provider    string `mapstructure:"provider"`
	NATSUrl     string `mapstructure:"nats_url"`
	RabbitMQURL string `mapstructure:"rabbitmq_url"`
}

type StorageConfig struct {
	// BasePath é o diretório raiz dos buckets no disco
	BasePath string `mapstructure:"base_path"`
	// SigningKey assina URLs temporárias do bucket privado
	SigningKey   string        `mapstructure:"signing_key"`
	SignedURLTTL time.Duration `mapstructure:"signed_url_ttl"`
}

type EmailConfig struct {
	// Provider: "smtp" ou "sendgrid"
	Provider       string `mapstructure:"provider"`
	From           string `mapstructure:"from"`
	FromName       string `mapstructure:"from_name"`
	SMTPHost       string `mapstructure:"smtp_host"`
	SMTPPort       int    `mapstructure:"smtp_port"`
	SMTPUser       string `mapstructure:"smtp_user"`
	SMTPPassword   string `mapstructure:"smtp_password"`
	SendGridAPIKey string `mapstructure:"sendgrid_api_key"`
}

type VaultConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
	Token   string `mapstructure:"token"`
	Path    string `mapstructure:"path"`
}

type TelemetryConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	ServiceName    string `mapstructure:"service_name"`
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
}

type LogConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}
