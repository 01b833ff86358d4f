package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置（启动时加载一次，之后只读）
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	DB     DBConfig     `mapstructure:"db"`
	Redis  RedisConfig  `mapstructure:"redis"`
	SMTP   SMTPConfig   `mapstructure:"smtp"`
	Mail   MailConfig   `mapstructure:"mail"`
	Export ExportConfig `mapstructure:"export"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Trace  TraceConfig  `mapstructure:"trace"`
	Sentry SentryConfig `mapstructure:"sentry"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	Mode string `mapstructure:"mode"` // debug / release
	// 公网提交接口限流（次/秒，burst）
	SubmitRate  float64 `mapstructure:"submit_rate"`
	SubmitBurst int     `mapstructure:"submit_burst"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// DBConfig 数据库配置，driver 支持 postgres / sqlite
type DBConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type SMTPConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// MailConfig 站点级邮件默认值（settings 表未配置时的兜底）
type MailConfig struct {
	AdminEmail string `mapstructure:"admin_email"`
	FromName   string `mapstructure:"from_name"`
	SiteName   string `mapstructure:"site_name"`
	SiteURL    string `mapstructure:"site_url"`
	AdminURL   string `mapstructure:"admin_url"` // 后台详情页前缀，用于通知邮件里的深链
}

type ExportConfig struct {
	MaxRecords int `mapstructure:"max_records"`
	BatchSize  int `mapstructure:"batch_size"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type TraceConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Endpoint string `mapstructure:"endpoint"`
}

type SentryConfig struct {
	DSN string `mapstructure:"dsn"`
}

// Load 读取 config.yaml（可被 INQ_ 前缀环境变量覆盖）
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("INQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// 配置文件缺失时仅用默认值 + 环境变量
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.submit_rate", 1.0)
	v.SetDefault("server.submit_burst", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "inquiry.db")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("smtp.enabled", false)
	v.SetDefault("smtp.port", 587)
	v.SetDefault("mail.admin_email", "admin@example.com")
	v.SetDefault("mail.from_name", "Product Inquiry")
	v.SetDefault("mail.site_name", "Demo Store")
	v.SetDefault("mail.site_url", "http://localhost:8080")
	v.SetDefault("mail.admin_url", "http://localhost:8080/admin/inquiries")
	v.SetDefault("export.max_records", 5000)
	v.SetDefault("export.batch_size", 100)
	v.SetDefault("auth.jwt_secret", "dev-secret-change-me")
	v.SetDefault("auth.token_ttl", 24*time.Hour)
	v.SetDefault("trace.enabled", false)
	v.SetDefault("trace.endpoint", "localhost:4318")
}
