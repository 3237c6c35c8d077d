package config

import (
	"fmt"
	"os"
	"time"

	"github.com/Korichi-ishak/traducteur-pro/pkg/validator"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	HTTP     HTTPConfig     `mapstructure:"http" validate:"required"`
	DB       DBConfig       `mapstructure:"db"`
	Lookup   LookupConfig   `mapstructure:"lookup" validate:"required"`
	Revision RevisionConfig `mapstructure:"revision" validate:"required"`
	Env      string         `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout time.Duration `mapstructure:"timeout" validate:"min=1"`
}

type HTTPConfig struct {
	Port            string        `mapstructure:"port" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"min=1"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"min=1"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=1"`
}

// DBConfig is optional: with an empty host the app runs on the in-memory
// store instead of postgres.
type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSL      string `mapstructure:"ssl" validate:"omitempty,oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

// LookupConfig caps the list fields of a stored lookup result.
type LookupConfig struct {
	MaxTranslations int `mapstructure:"max_translations" validate:"min=1,max=50"`
	MaxSenses       int `mapstructure:"max_senses" validate:"min=1,max=50"`
	MaxPhrases      int `mapstructure:"max_phrases" validate:"min=1,max=50"`
	MaxExamples     int `mapstructure:"max_examples" validate:"min=1,max=50"`
	MaxSynonyms     int `mapstructure:"max_synonyms" validate:"min=1,max=50"`
}

// RevisionConfig is the spaced-repetition policy. IntervalDays is indexed by
// the score an answer lands on; index 0 only applies when a correct answer
// somehow lands on score 0 and is kept at 1 day.
type RevisionConfig struct {
	IntervalDays []int         `mapstructure:"interval_days" validate:"len=6,dive,min=1"`
	SessionGap   time.Duration `mapstructure:"session_gap" validate:"min=1"`
	SelectLimit  int           `mapstructure:"select_limit" validate:"min=1,max=100"`
}

func Init() (*Config, error) {
	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	v.SetDefault("http.port", "8080")
	v.SetDefault("http.read_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 30*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("db.cfg.max_open_conns", 10)
	v.SetDefault("db.cfg.max_idle_conns", 5)
	v.SetDefault("db.cfg.conn_max_life_time", 30*time.Minute)
	v.SetDefault("db.cfg.conn_max_idle_time", 5*time.Minute)
	v.SetDefault("lookup.max_translations", 10)
	v.SetDefault("lookup.max_senses", 8)
	v.SetDefault("lookup.max_phrases", 6)
	v.SetDefault("lookup.max_examples", 6)
	v.SetDefault("lookup.max_synonyms", 5)
	v.SetDefault("revision.interval_days", []int{1, 1, 3, 7, 14, 30})
	v.SetDefault("revision.session_gap", 30*time.Minute)
	v.SetDefault("revision.select_limit", 20)

	if err := v.BindEnv("http.port", "HTTP_PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind HTTP_PORT: %w", err)
	}
	if err := v.BindEnv("db.conn.host", "DB_HOST"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_HOST: %w", err)
	}
	if err := v.BindEnv("db.conn.port", "DB_PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PORT: %w", err)
	}
	if err := v.BindEnv("db.conn.user", "DB_USER"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_USER: %w", err)
	}
	if err := v.BindEnv("db.conn.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD: %w", err)
	}
	if err := v.BindEnv("db.conn.name", "DB_NAME"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_NAME: %w", err)
	}
	if err := v.BindEnv("db.conn.ssl", "DB_SSL"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_SSL: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
