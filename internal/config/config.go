package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type SummitConfig struct {
	Env string `yaml:"env"`
	HTTPServer    `yaml:"http_server"`
	SummitDB      `yaml:"summit_db"`
	LogConfig     `yaml:"log_config"`
	AuthService   `yaml:"auth-service"`
	MailerService `yaml:"mailer-service"`
	KafkaService  `yaml:"kafka-service"`
	RedisCache    `yaml:"redis-cache"`
	MetricsServer `yaml:"metrics_server"`
	Validation    `yaml:"validation"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type SummitDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type AuthService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type MailerService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	From string `yaml:"from"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"payment-events"`
}

type RedisCache struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	TTLSec   int    `yaml:"ttl_sec" env-default:"300"`
}

type MetricsServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type Validation struct {
	RetentionDays   int `yaml:"retention_days" env-default:"7"`
	SyncIntervalSec int `yaml:"sync_interval_sec" env-default:"60"`
	// SyncURL is the upstream reconciliation endpoint. Empty means this
	// instance is the upstream and only absorbs batches.
	SyncURL string `yaml:"sync_url"`
}

func MustLoad() *SummitConfig {

	// Processing env config variable and file
	configPath := os.Getenv("SUMMIT_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("SUMMIT_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg SummitConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
