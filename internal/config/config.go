package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret    string `yaml:"secret"`
	Issuer    string `yaml:"issuer"`
	AccessTTL string `yaml:"access_ttl"`
}

type OTPConfig struct {
	TTL    string `yaml:"ttl"`
	Length int    `yaml:"length"`
}

type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	OTP      OTPConfig      `yaml:"otp"`
	Notifier string         `yaml:"notifier"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Twilio   TwilioConfig   `yaml:"twilio"`
	Casbin   CasbinConfig   `yaml:"casbin"`
}

type Config struct {
	Port            string
	GinMode         string
	DSN             string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	JWTIssuer       string
	AccessTTL       time.Duration
	OTPTTL          time.Duration
	OTPLength       int
	Notifier        string
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	SMTPFrom        string
	TwilioSID       string
	TwilioToken     string
	TwilioFrom      string
	CasbinModelPath string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// Load reads config/config.yml, applying environment overrides for secrets
// so deployments never need credentials in the file.
func Load() (*Config, error) {
	return LoadFrom(env("CONFIG_PATH", "config/config.yml"))
}

func LoadFrom(path string) (*Config, error) {
	file, err := loadConfigFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	accessTTL, err := time.ParseDuration(file.JWT.AccessTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access TTL: %w", err)
	}

	otpTTL, err := time.ParseDuration(file.OTP.TTL)
	if err != nil {
		return nil, fmt.Errorf("invalid OTP TTL: %w", err)
	}

	notifier := file.Notifier
	if notifier == "" {
		notifier = "smtp"
	}
	if notifier != "smtp" && notifier != "sms" {
		return nil, fmt.Errorf("unknown notifier %q (want smtp or sms)", notifier)
	}

	otpLength := file.OTP.Length
	if otpLength == 0 {
		otpLength = 6
	}

	return &Config{
		Port:            fmt.Sprintf("%d", file.App.Port),
		GinMode:         file.App.GinMode,
		DSN:             env("DATABASE_DSN", file.Database.DSN),
		RedisAddr:       env("REDIS_ADDR", file.Redis.Addr),
		RedisPassword:   env("REDIS_PASSWORD", file.Redis.Password),
		RedisDB:         envInt("REDIS_DB", file.Redis.DB),
		JWTSecret:       env("SECRET_KEY", file.JWT.Secret),
		JWTIssuer:       file.JWT.Issuer,
		AccessTTL:       accessTTL,
		OTPTTL:          otpTTL,
		OTPLength:       otpLength,
		Notifier:        notifier,
		SMTPHost:        env("SMTP_HOST", file.SMTP.Host),
		SMTPPort:        envInt("SMTP_PORT", file.SMTP.Port),
		SMTPUsername:    env("EMAIL_SENDER", file.SMTP.Username),
		SMTPPassword:    env("EMAIL_PASSWORD", file.SMTP.Password),
		SMTPFrom:        env("EMAIL_SENDER", file.SMTP.From),
		TwilioSID:       env("TWILIO_ACCOUNT_SID", file.Twilio.AccountSID),
		TwilioToken:     env("TWILIO_AUTH_TOKEN", file.Twilio.AuthToken),
		TwilioFrom:      env("TWILIO_FROM_NUMBER", file.Twilio.FromNumber),
		CasbinModelPath: file.Casbin.ModelPath,
	}, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}
