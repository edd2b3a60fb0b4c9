// Package config defines the typed configuration structures shared across
// the application. Loading and defaults live in infrastructure/config.
package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// GetAddr returns the listen address in host:port form.
func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // minutes
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Enabled  bool   `mapstructure:"enabled"`
}

// Addr returns the redis address in host:port form.
func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // console or json
	OutputPath string `mapstructure:"output_path"`
}

// AnalyticsConfig holds visitor tracking and aggregation settings.
// SessionTimeoutMinutes is the inactivity gap that ends a session;
// ActiveWindowMinutes is the shorter freshness window used only for
// "currently active" counts. The two are independent thresholds.
type AnalyticsConfig struct {
	SessionTimeoutMinutes    int      `mapstructure:"session_timeout_minutes"`
	ActiveWindowMinutes      int      `mapstructure:"active_window_minutes"`
	DefaultStatsDays         int      `mapstructure:"default_stats_days"`
	SweepIntervalMinutes     int      `mapstructure:"sweep_interval_minutes"`
	BusinessTimezone         string   `mapstructure:"business_timezone"`
	TrackingExcludedPrefixes []string `mapstructure:"tracking_excluded_prefixes"`
	SessionCookieName        string   `mapstructure:"session_cookie_name"`
}

type ContentConfig struct {
	DefaultLanguage string `mapstructure:"default_language"`
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds"`
}
