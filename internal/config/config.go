package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	DB      DBConfig      `mapstructure:"db"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	News    NewsConfig    `mapstructure:"news"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Cron    CronConfig    `mapstructure:"cron"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type DBConfig struct {
	Driver          string        `mapstructure:"driver"`
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// RedisConfig selects the response cache backend. An empty Addr keeps the
// in-process cache.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CatalogConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	PageSize int           `mapstructure:"page_size"`
}

type NewsConfig struct {
	BaseURL  string        `mapstructure:"base_url"`
	APIKey   string        `mapstructure:"api_key"`
	Timeout  time.Duration `mapstructure:"timeout"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	PageSize int           `mapstructure:"page_size"`
	Topics   []string      `mapstructure:"topics"`
}

type AuthConfig struct {
	Disabled     bool   `mapstructure:"disabled"`
	ServiceToken string `mapstructure:"service_token"`
	UserHeader   string `mapstructure:"user_header"`
}

type CronConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	CatalogRefresh string `mapstructure:"catalog_refresh"`
	TrendingWarm   string `mapstructure:"trending_warm"`
}

// DefaultTopics rotates a different search query per news page so the
// upstream search API behaves like a paginated feed.
var DefaultTopics = []string{
	"gaming OR video games",
	"esports tournament",
	"PlayStation Xbox Nintendo",
	"game release 2024 2025",
	"PC gaming Steam",
	"mobile gaming",
	"MMO MMORPG online",
	"indie games",
	"gaming industry news",
	"game developers studio",
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("NP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("db.driver", "postgres")
	v.SetDefault("db.max_open_conns", 20)
	v.SetDefault("db.max_idle_conns", 5)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.conn_max_idle_time", "5m")
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("catalog.base_url", "https://www.freetogame.com/api")
	v.SetDefault("catalog.timeout", "15s")
	v.SetDefault("catalog.cache_ttl", "1h")
	v.SetDefault("catalog.page_size", 40)
	v.SetDefault("news.base_url", "https://gnews.io/api/v4")
	v.SetDefault("news.timeout", "15s")
	v.SetDefault("news.cache_ttl", "30m")
	v.SetDefault("news.page_size", 10)
	v.SetDefault("news.topics", DefaultTopics)
	v.SetDefault("auth.disabled", false)
	v.SetDefault("auth.user_header", "X-NextPlay-User")
	v.SetDefault("cron.enabled", true)
	v.SetDefault("cron.catalog_refresh", "@every 55m")
	v.SetDefault("cron.trending_warm", "@every 25m")

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if len(cfg.News.Topics) == 0 {
		cfg.News.Topics = DefaultTopics
	}

	return cfg, nil
}
