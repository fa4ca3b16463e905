package config

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vango-dev/shellroute/internal/errors"
	"github.com/vango-dev/shellroute/pkg/routing"
	"go.opentelemetry.io/otel"
)

const (
	// ConfigFileName is the name of the JSON configuration file.
	ConfigFileName = "vroute.json"

	// TOMLConfigFileName is the name of the TOML configuration file.
	// It is used when no JSON file exists.
	TOMLConfigFileName = "vroute.toml"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default log format.
	DefaultLogFormat = "text"

	// DefaultMetricsNamespace is the default Prometheus namespace.
	DefaultMetricsNamespace = "vango"

	// DefaultMetricsSubsystem is the default Prometheus subsystem.
	DefaultMetricsSubsystem = "routing"

	// DefaultTracerName is the default OpenTelemetry tracer name.
	DefaultTracerName = "vango/routing"
)

// Config represents the complete route configuration.
type Config struct {
	// FoldCase makes route names case-insensitive.
	FoldCase bool `json:"foldCase,omitempty" toml:"foldCase,omitempty"`

	// Routes lists route names the application registers, checked by
	// "vroute check".
	Routes []string `json:"routes,omitempty" toml:"routes,omitempty"`

	// Log contains logging configuration.
	Log LogConfig `json:"log,omitempty" toml:"log,omitempty"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics,omitempty" toml:"metrics,omitempty"`

	// Tracing contains OpenTelemetry configuration.
	Tracing TracingConfig `json:"tracing,omitempty" toml:"tracing,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty" toml:"level,omitempty"`

	// Format is "text" or "json".
	Format string `json:"format,omitempty" toml:"format,omitempty"`
}

// MetricsConfig contains Prometheus configuration.
type MetricsConfig struct {
	// Enabled turns on registry metrics.
	Enabled bool `json:"enabled,omitempty" toml:"enabled,omitempty"`

	// Namespace is the metrics namespace.
	Namespace string `json:"namespace,omitempty" toml:"namespace,omitempty"`

	// Subsystem is the metrics subsystem.
	Subsystem string `json:"subsystem,omitempty" toml:"subsystem,omitempty"`
}

// TracingConfig contains OpenTelemetry configuration.
type TracingConfig struct {
	// TracerName is the name of the tracer taken from the global provider.
	TracerName string `json:"tracerName,omitempty" toml:"tracerName,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Metrics: MetricsConfig{
			Namespace: DefaultMetricsNamespace,
			Subsystem: DefaultMetricsSubsystem,
		},
		Tracing: TracingConfig{
			TracerName: DefaultTracerName,
		},
	}
}

// Load loads vroute.json, or vroute.toml if there is no JSON file, from dir.
func Load(dir string) (*Config, error) {
	for _, name := range []string{ConfigFileName, TOMLConfigFileName} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("R010").
		WithDetail("No " + ConfigFileName + " or " + TOMLConfigFileName + " found in " + dir).
		WithSuggestion("Run 'vroute init' to create one")
}

// LoadFile loads configuration from a specific file. The format follows the
// file extension.
func LoadFile(path string) (*Config, error) {
	unmarshal, err := decoderFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("R010").WithSubject(path).Wrap(err)
	}

	cfg := New()
	if err := unmarshal(data, cfg); err != nil {
		return nil, errors.New("R010").
			WithSubject(path).
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error())
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decoderFor(path string) (func([]byte, any) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return json.Unmarshal, nil
	case ".toml":
		return toml.Unmarshal, nil
	default:
		return nil, errors.New("R011").WithSubject(path)
	}
}

// Save writes the configuration back to the path it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		c.configPath = ConfigFileName
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to path, as JSON or TOML by extension.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	case ".toml":
		data, err = toml.Marshal(c)
	default:
		return errors.New("R011").WithSubject(path)
	}
	if err != nil {
		return errors.New("R010").WithSubject(path).Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("R010").WithSubject(path).Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills fields left empty by the file.
func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsNamespace
	}
	if c.Metrics.Subsystem == "" {
		c.Metrics.Subsystem = DefaultMetricsSubsystem
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("R010").
			WithSubject(c.Log.Format).
			WithDetail("Log format must be text or json")
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, errors.New("R012").WithSubject(c.Log.Level)
	}
	return level, nil
}

// Logger builds a logger writing to w according to Log.
func (c *Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := c.LogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// RegistryOptions returns the routing options described by the config.
// Metrics are registered with reg when enabled.
func (c *Config) RegistryOptions(reg prometheus.Registerer, logger *slog.Logger) []routing.Option {
	opts := []routing.Option{
		routing.WithFoldCase(c.FoldCase),
		routing.WithTracer(otel.Tracer(c.Tracing.TracerName)),
	}
	if logger != nil {
		opts = append(opts, routing.WithLogger(logger))
	}
	if c.Metrics.Enabled && reg != nil {
		opts = append(opts, routing.WithMetrics(routing.NewMetrics(
			routing.WithRegisterer(reg),
			routing.WithNamespace(c.Metrics.Namespace),
			routing.WithSubsystem(c.Metrics.Subsystem),
		)))
	}
	return opts
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	for _, name := range []string{ConfigFileName, TOMLConfigFileName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up from startDir to the first directory holding a
// config file.
func FindProjectRoot(startDir string) (string, error) {
	dir := startDir
	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("R010").
				WithDetail("No " + ConfigFileName + " or " + TOMLConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}
