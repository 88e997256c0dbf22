package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xxxsen/common/logger"
)

type Config struct {
	Database    DatabaseConfig    `json:"database"`
	Port        int               `json:"port"`
	JWTSecret   string            `json:"jwt_secret"`
	JWTTTLHours int               `json:"jwt_ttl_hours"`
	NonceSecret string            `json:"nonce_secret"`
	PublicURL   string            `json:"public_url"`
	LogConfig   logger.LogConfig  `json:"log_config"`
	RenderCache RenderCacheConfig `json:"render_cache"`
	Purge       PurgeConfig       `json:"purge"`
	Backup      BackupConfig      `json:"backup"`
}

type DatabaseConfig struct {
	DSN      string `json:"dsn"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
	SSLMode  string `json:"sslmode"`
}

type RenderCacheConfig struct {
	Size       int `json:"size"`
	TTLMinutes int `json:"ttl_minutes"`
}

type PurgeConfig struct {
	Enable        bool   `json:"enable"`
	Cron          string `json:"cron"`
	RetentionDays int    `json:"retention_days"`
}

type BackupConfig struct {
	Enable bool     `json:"enable"`
	Cron   string   `json:"cron"`
	S3     S3Config `json:"s3"`
}

type S3Config struct {
	Endpoint  string `json:"endpoint"`
	Region    string `json:"region"`
	SecretID  string `json:"secret_id"`
	SecretKey string `json:"secret_key"`
	Bucket    string `json:"bucket"`
	Prefix    string `json:"prefix"`
	UseSSL    bool   `json:"use_ssl"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.Database.DSN == "" && cfg.Database.Host == "" {
		return nil, fmt.Errorf("database.dsn or database.host is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt_secret is required")
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port is required")
	}
	if cfg.JWTTTLHours == 0 {
		cfg.JWTTTLHours = 72
	}
	if cfg.NonceSecret == "" {
		cfg.NonceSecret = cfg.JWTSecret
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	if cfg.RenderCache.Size == 0 {
		cfg.RenderCache.Size = 256
	}
	if cfg.RenderCache.TTLMinutes == 0 {
		cfg.RenderCache.TTLMinutes = 30
	}
	if cfg.Purge.Enable {
		if cfg.Purge.Cron == "" {
			cfg.Purge.Cron = "0 3 * * *"
		}
		if cfg.Purge.RetentionDays == 0 {
			cfg.Purge.RetentionDays = 30
		}
	}
	if cfg.Backup.Enable {
		if cfg.Backup.Cron == "" {
			cfg.Backup.Cron = "30 3 * * *"
		}
		s3 := cfg.Backup.S3
		if s3.Endpoint == "" || s3.Bucket == "" || s3.SecretID == "" || s3.SecretKey == "" {
			return nil, fmt.Errorf("backup.s3 endpoint/bucket/secret_id/secret_key are required when backup is enabled")
		}
		if cfg.Backup.S3.Region == "" {
			cfg.Backup.S3.Region = "us-east-1"
		}
	}
	return &cfg, nil
}
