package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Orders       OrdersConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if !cfg.FeatureFlags.UseSQLite {
		if err := cfg.DB.ensureDSN(); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string   `envconfig:"TCKT_APP_ENV" required:"true"`
	Port         string   `envconfig:"TCKT_APP_PORT" default:"8080"`
	LogLevel     string   `envconfig:"TCKT_LOG_LEVEL" default:"info"`
	LogWarnStack bool     `envconfig:"TCKT_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string `envconfig:"TCKT_CORS_ORIGINS"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"TCKT_DB_DSN"`

	LegacyHost     string `envconfig:"TCKT_DB_HOST"`
	LegacyPort     int    `envconfig:"TCKT_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"TCKT_DB_USER"`
	LegacyPassword string `envconfig:"TCKT_DB_PASSWORD"`
	LegacyName     string `envconfig:"TCKT_DB_NAME"`
	LegacySSLMode  string `envconfig:"TCKT_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"TCKT_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"TCKT_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"TCKT_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"TCKT_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// OrdersConfig carries the business-policy toggles of the order lifecycle.
type OrdersConfig struct {
	// RequireTableNumber rejects order creation without a table number.
	// Deployments serving takeout-only menus turn this off.
	RequireTableNumber bool `envconfig:"TCKT_REQUIRE_TABLE_NUMBER" default:"true"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"TCKT_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"TCKT_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
