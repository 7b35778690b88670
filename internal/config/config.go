package config

import (
	"time"

	"github.com/spf13/viper"
)

type AppConf struct {
	Env            string `mapstructure:"env"`
	Port           int    `mapstructure:"port"`
	ShutdownSecond int    `mapstructure:"shutdown_seconds"`
}

type PostgresConf struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`
}

type RedisConf struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AuthConf struct {
	Secret          string `mapstructure:"secret"`
	TokenTTLHours   int    `mapstructure:"token_ttl_hours"`
	LoginRatePerMin int    `mapstructure:"login_rate_per_minute"`
}

type AWSConf struct {
	Region string `mapstructure:"region"`
	Bucket string `mapstructure:"bucket"`
}

type Config struct {
	App      AppConf      `mapstructure:"app"`
	Postgres PostgresConf `mapstructure:"postgres"`
	Redis    RedisConf    `mapstructure:"redis"`
	Auth     AuthConf     `mapstructure:"auth"`
	AWS      AWSConf      `mapstructure:"aws"`

	// derived
	ShutdownTimeout time.Duration
	TokenTTL        time.Duration
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if cfg.App.Port == 0 {
		cfg.App.Port = 8080
	}
	if cfg.App.ShutdownSecond == 0 {
		cfg.App.ShutdownSecond = 15
	}
	if cfg.Postgres.SSLMode == "" {
		cfg.Postgres.SSLMode = "disable"
	}
	if cfg.Auth.TokenTTLHours == 0 {
		cfg.Auth.TokenTTLHours = 24 * 7
	}
	if cfg.Auth.LoginRatePerMin == 0 {
		cfg.Auth.LoginRatePerMin = 10
	}
	cfg.ShutdownTimeout = time.Duration(cfg.App.ShutdownSecond) * time.Second
	cfg.TokenTTL = time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	return &cfg, nil
}
