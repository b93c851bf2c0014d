// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/royalflight/flightsupport/geo"
	"github.com/royalflight/flightsupport/inbox"
)

type Config struct {
	Port    int
	BaseURL string

	DatabaseURL  string
	DatabaseType string
	AdminKeySalt string
	IPHashSalt   string

	Email        EmailConfig
	MailEndpoint string // when set, form posts go to this send-email URL

	Geo       GeoConfig
	ImagesDir string
	Log       LogConfig

	ConfigFile    string
	PrintAdminKey bool
}

type EmailConfig struct {
	Host          string
	Port          int
	Secure        bool
	User          string
	Pass          string
	To            string
	SimulateDelay time.Duration
}

type GeoConfig struct {
	URL      string
	CacheTTL time.Duration
	CacheDir string
}

type LogConfig struct {
	Level  string
	Format string
	File   string
}

// ParseFlags builds the configuration. Flags win over environment
// variables (including a .env file), which win over the YAML config file,
// which wins over defaults.
func ParseFlags(args []string) (Config, error) {
	var (
		flagCfg Config
		envFile string
	)

	fs := flag.NewFlagSet("flightsupport", flag.ContinueOnError)

	fs.IntVar(&flagCfg.Port, "p", 0, "Server port")
	fs.StringVar(&flagCfg.DatabaseURL, "d", "", "Inbox database URL (empty disables the inbox)")
	fs.StringVar(&flagCfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&flagCfg.ImagesDir, "images", "", "Directory holding gallery images")
	fs.StringVar(&flagCfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&flagCfg.ConfigFile, "config", "", "YAML config file")
	fs.StringVar(&envFile, "env-file", ".env", "dotenv file loaded into the environment")
	fs.BoolVar(&flagCfg.PrintAdminKey, "print-admin-key", false, "Print the inbox admin key and exit")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&flagCfg.AdminKeySalt, "admin-salt", "", "Admin key salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadDotEnv(envFile); err != nil {
		return Config{}, err
	}

	v, err := newViper(flagCfg.ConfigFile)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:         v.GetInt("port"),
		BaseURL:      v.GetString("base_url"),
		DatabaseURL:  v.GetString("database.url"),
		DatabaseType: v.GetString("database.type"),
		AdminKeySalt: v.GetString("admin_key_salt"),
		IPHashSalt:   v.GetString("ip_hash_salt"),
		Email: EmailConfig{
			Host:          v.GetString("email.host"),
			Port:          v.GetInt("email.port"),
			Secure:        v.GetBool("email.secure"),
			User:          v.GetString("email.user"),
			Pass:          v.GetString("email.pass"),
			To:            v.GetString("contact_email"),
			SimulateDelay: v.GetDuration("mail.simulate_delay"),
		},
		MailEndpoint: v.GetString("mail.endpoint"),
		Geo: GeoConfig{
			URL:      v.GetString("geo.url"),
			CacheTTL: v.GetDuration("geo.cache_ttl"),
			CacheDir: v.GetString("geo.cache_dir"),
		},
		ImagesDir: v.GetString("images.dir"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			File:   v.GetString("log.file"),
		},
		ConfigFile:    flagCfg.ConfigFile,
		PrintAdminKey: flagCfg.PrintAdminKey,
	}

	// CLI flags override everything else
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			cfg.Port = flagCfg.Port
		case "d":
			cfg.DatabaseURL = flagCfg.DatabaseURL
		case "t":
			cfg.DatabaseType = flagCfg.DatabaseType
		case "images":
			cfg.ImagesDir = flagCfg.ImagesDir
		case "log-level":
			cfg.Log.Level = flagCfg.Log.Level
		case "admin-salt":
			cfg.AdminKeySalt = flagCfg.AdminKeySalt
		}
	})

	if err := validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	// existing environment variables are not overwritten
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error reading %s: %w", path, err)
	}
	return nil
}

func newViper(configFile string) (*viper.Viper, error) {
	v := viper.New()

	v.SetDefault("port", 3000)
	v.SetDefault("base_url", "")
	v.SetDefault("database.url", "")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("admin_key_salt", "")
	v.SetDefault("ip_hash_salt", "")
	v.SetDefault("email.host", "")
	v.SetDefault("email.port", 587)
	v.SetDefault("email.secure", false)
	v.SetDefault("email.user", "")
	v.SetDefault("email.pass", "")
	v.SetDefault("contact_email", "Ops@royal-flightsupport.com")
	v.SetDefault("mail.endpoint", "")
	v.SetDefault("mail.simulate_delay", time.Second)
	v.SetDefault("geo.url", geo.DefaultURL)
	v.SetDefault("geo.cache_ttl", 6*time.Hour)
	v.SetDefault("geo.cache_dir", "")
	v.SetDefault("images.dir", "public/images")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")

	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("flightsupport")
		v.AddConfigPath("/etc/flightsupport")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// no config file: defaults + env
	}

	// email.host -> EMAIL_HOST, database.url -> DATABASE_URL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v, nil
}

func validate(cfg Config) error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("port out of range: %d", cfg.Port)
	}

	if _, err := inbox.ParseDialect(cfg.DatabaseType); err != nil {
		return err
	}

	if cfg.Email.Port <= 0 || cfg.Email.Port > 65535 {
		return fmt.Errorf("email port out of range: %d", cfg.Email.Port)
	}
	if cfg.Email.SimulateDelay < 0 {
		return errors.New("mail simulate delay must not be negative")
	}
	if cfg.Geo.CacheTTL < 0 {
		return errors.New("geo cache ttl must not be negative")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Log.Level)
	}
	validLogFormats := map[string]bool{"text": true, "json": true}
	if !validLogFormats[strings.ToLower(cfg.Log.Format)] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", cfg.Log.Format)
	}

	if cfg.PrintAdminKey && cfg.AdminKeySalt == "" {
		return errors.New("ADMIN_KEY_SALT required to print the admin key")
	}
	return nil
}
