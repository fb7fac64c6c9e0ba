package utils

import (
	"errors"
	"io/fs"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

type SessionConfig struct {
	CookieName   string
	TTLHours     int
	SecureCookie bool
}

// RegisterFlags adds the flags LoadConfig understands to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("env-file", ".env", "path to the .env configuration file")
	fs.String("port", "", "HTTP listen port (overrides PORT)")
	fs.Bool("debug", false, "enable debug logging (overrides DEBUG)")
}

// LoadConfig reads the .env file named by the env-file flag, then the
// environment, then any flags that were set explicitly. A missing .env file
// is not an error.
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	envFile := ".env"
	if flags != nil {
		if f, err := flags.GetString("env-file"); err == nil && f != "" {
			envFile = f
		}
	}

	v.SetConfigFile(envFile)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "customer-crm")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("SESSION_COOKIE_NAME", "crm_session")
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("SESSION_SECURE_COOKIE", false)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	v.AutomaticEnv()

	if flags != nil {
		if f := flags.Lookup("port"); f != nil && f.Changed {
			v.Set("PORT", f.Value.String())
		}
		if f := flags.Lookup("debug"); f != nil && f.Changed {
			v.Set("DEBUG", f.Value.String())
		}
	}

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			CookieName:   v.GetString("SESSION_COOKIE_NAME"),
			TTLHours:     v.GetInt("SESSION_TTL_HOURS"),
			SecureCookie: v.GetBool("SESSION_SECURE_COOKIE"),
		},
	}

	return config, nil
}
