// Package config loads service configuration from YAML files with
// environment variable overrides.
package config

import "time"

// Default configuration values.
const (
	defaultServiceName     = "reviewpulse"
	defaultServiceVersion  = "1.0.0"
	defaultServicePort     = 8090
	defaultDBDriver        = "sqlite3"
	defaultSQLitePath      = "reviews.db"
	defaultDBHost          = "localhost"
	defaultDBPort          = 5432
	defaultDBUser          = "postgres"
	defaultDBName          = "reviews"
	defaultDBSSLMode       = "disable"
	defaultDBMaxConns      = 25
	defaultDBMaxIdleConns  = 5
	defaultConnMaxLifetime = 5 * time.Minute
	defaultArtifactDir     = "artifacts"
	defaultVectorizerFile  = "vectorizer.gob"
	defaultClassifierFile  = "classifier.gob"
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultRateLimitRPS    = 100
)

// Config holds all configuration for the review service.
type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Database  DatabaseConfig  `yaml:"database"`
	Artifacts ArtifactsConfig `yaml:"artifacts"`
	Logging   LoggingConfig   `yaml:"logging"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `env:"REVIEWPULSE_PORT" yaml:"port"`
	Debug   bool   `env:"APP_DEBUG"        yaml:"debug"`
}

// DatabaseConfig holds history store configuration. Driver selects the
// backend: "sqlite3" (default, Path) or "postgres" (Host/Port/...).
type DatabaseConfig struct {
	Driver          string        `env:"DB_DRIVER"         yaml:"driver"`
	Path            string        `env:"SQLITE_PATH"       yaml:"path"`
	Host            string        `env:"POSTGRES_HOST"     yaml:"host"`
	Port            int           `env:"POSTGRES_PORT"     yaml:"port"`
	User            string        `env:"POSTGRES_USER"     yaml:"user"`
	Password        string        `env:"POSTGRES_PASSWORD" yaml:"password"`
	Database        string        `env:"POSTGRES_DB"       yaml:"database"`
	SSLMode         string        `env:"POSTGRES_SSLMODE"  yaml:"sslmode"`
	MaxConnections  int           `yaml:"max_connections"`
	MaxIdleConns    int           `yaml:"max_idle_connections"`
	ConnMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
}

// ArtifactsConfig locates the trained model artifacts loaded at startup.
type ArtifactsConfig struct {
	Dir            string `env:"MODEL_DIR" yaml:"dir"`
	VectorizerFile string `yaml:"vectorizer_file"`
	ClassifierFile string `yaml:"classifier_file"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// RateLimitConfig holds predict endpoint rate limiting settings.
type RateLimitConfig struct {
	Enabled bool `yaml:"enabled"`
	RPS     int  `env:"RATE_LIMIT_RPS" yaml:"rps"`
	Burst   int  `yaml:"burst"`
}

func (c *Config) setDefaults() {
	setServiceDefaults(&c.Service)
	setDatabaseDefaults(&c.Database)
	setArtifactsDefaults(&c.Artifacts)
	setLoggingDefaults(&c.Logging)
	setRateLimitDefaults(&c.RateLimit)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
}

func setDatabaseDefaults(d *DatabaseConfig) {
	if d.Driver == "" {
		d.Driver = defaultDBDriver
	}
	if d.Path == "" {
		d.Path = defaultSQLitePath
	}
	if d.Host == "" {
		d.Host = defaultDBHost
	}
	if d.Port == 0 {
		d.Port = defaultDBPort
	}
	if d.User == "" {
		d.User = defaultDBUser
	}
	if d.Database == "" {
		d.Database = defaultDBName
	}
	if d.SSLMode == "" {
		d.SSLMode = defaultDBSSLMode
	}
	if d.MaxConnections == 0 {
		d.MaxConnections = defaultDBMaxConns
	}
	if d.MaxIdleConns == 0 {
		d.MaxIdleConns = defaultDBMaxIdleConns
	}
	if d.ConnMaxLifetime == 0 {
		d.ConnMaxLifetime = defaultConnMaxLifetime
	}
}

func setArtifactsDefaults(a *ArtifactsConfig) {
	if a.Dir == "" {
		a.Dir = defaultArtifactDir
	}
	if a.VectorizerFile == "" {
		a.VectorizerFile = defaultVectorizerFile
	}
	if a.ClassifierFile == "" {
		a.ClassifierFile = defaultClassifierFile
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}

func setRateLimitDefaults(r *RateLimitConfig) {
	if r.RPS == 0 {
		r.RPS = defaultRateLimitRPS
	}
	if r.Burst == 0 {
		r.Burst = r.RPS
	}
}
