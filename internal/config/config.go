package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/jst/internal/errors"
)

// Configuration file names, in lookup order.
var FileNames = []string{"jst.json", "jst.yaml", "jst.yml"}

const (
	// DefaultPort is the default port of `jst serve`.
	DefaultPort = 3000

	// DefaultHost is the default host of `jst serve`.
	DefaultHost = "localhost"

	// DefaultOutput is the default directory of `jst publish`.
	DefaultOutput = "dist"

	// DefaultPrefix is the default scope prefix base.
	DefaultPrefix = "jsto"

	// DefaultTick is the default interval between demo updates in
	// `jst serve`.
	DefaultTick = "1s"
)

// Config represents a jst configuration file.
type Config struct {
	// Name is the project name, used as the page title.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Render configures serialization and scoping.
	Render RenderConfig `json:"render,omitempty" yaml:"render,omitempty"`

	// Log configures logging.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty"`

	// Serve configures the preview server.
	Serve ServeConfig `json:"serve,omitempty" yaml:"serve,omitempty"`

	// Publish configures static publishing.
	Publish PublishConfig `json:"publish,omitempty" yaml:"publish,omitempty"`

	// Metrics configures Prometheus metrics.
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`

	// Tracing configures OpenTelemetry tracing.
	Tracing TracingConfig `json:"tracing,omitempty" yaml:"tracing,omitempty"`

	// configPath is the path to the config file (not serialized).
	configPath string
}

// RenderConfig configures serialization.
type RenderConfig struct {
	// Indent is the number of spaces per level in pretty output.
	Indent int `json:"indent,omitempty" yaml:"indent,omitempty"`

	// ShowFragments writes component fragments as elements.
	ShowFragments bool `json:"showFragments,omitempty" yaml:"showFragments,omitempty"`

	// Prefix is the base of generated class and id prefixes.
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `json:"level,omitempty" yaml:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`
}

// ServeConfig configures `jst serve`.
type ServeConfig struct {
	// Host is the address to bind.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty" yaml:"port,omitempty"`

	// Tick is the interval between demo updates, as a Go duration.
	Tick string `json:"tick,omitempty" yaml:"tick,omitempty"`
}

// PublishConfig configures `jst publish`.
type PublishConfig struct {
	// Output is the local output directory.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Bucket is the S3 bucket. When set, pages are uploaded to S3.
	Bucket string `json:"bucket,omitempty" yaml:"bucket,omitempty"`

	// KeyPrefix is prepended to every object key.
	KeyPrefix string `json:"keyPrefix,omitempty" yaml:"keyPrefix,omitempty"`

	// Region is the AWS region of the bucket.
	Region string `json:"region,omitempty" yaml:"region,omitempty"`

	// Endpoint overrides the S3 endpoint, for S3 compatible stores.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	// Enabled exposes /metrics in `jst serve`.
	Enabled bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`

	// Namespace is the metrics namespace.
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// TracingConfig configures OpenTelemetry tracing.
type TracingConfig struct {
	// TracerName is the name of the tracer.
	TracerName string `json:"tracerName,omitempty" yaml:"tracerName,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Name: "jst",
		Render: RenderConfig{
			Prefix: DefaultPrefix,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Serve: ServeConfig{
			Host: DefaultHost,
			Port: DefaultPort,
			Tick: DefaultTick,
		},
		Publish: PublishConfig{
			Output: DefaultOutput,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "jst",
		},
		Tracing: TracingConfig{
			TracerName: "jst",
		},
	}
}

// Load loads the configuration from the first config file found in dir.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("J012").
		WithDetail("No config file found in " + dir).
		WithSuggestion("Create jst.yaml or run without a config to use defaults")
}

// LoadFile loads the configuration from a specific file. The format follows
// the extension: .yaml and .yml are YAML, anything else JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("J012").WithDetail("No config file at " + path)
		}
		return nil, errors.New("J010").Wrap(err)
	}

	cfg := New()
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.New("J010").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that the file is valid " + formatName(path))
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save saves the configuration to its original path.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo saves the configuration to a specific path, in the format implied
// by its extension.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New("J010").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("J010").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path to the config file.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in values a file left empty.
func (c *Config) applyDefaults() {
	d := New()
	if c.Render.Prefix == "" {
		c.Render.Prefix = d.Render.Prefix
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
	if c.Serve.Host == "" {
		c.Serve.Host = d.Serve.Host
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = d.Serve.Port
	}
	if c.Serve.Tick == "" {
		c.Serve.Tick = d.Serve.Tick
	}
	if c.Publish.Output == "" {
		c.Publish.Output = d.Publish.Output
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = d.Metrics.Namespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = d.Tracing.TracerName
	}
}

var prefixRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return errors.New("J011").
			WithDetail("serve.port must be between 0 and 65535")
	}
	if c.Render.Indent < 0 || c.Render.Indent > 16 {
		return errors.New("J011").
			WithDetail("render.indent must be between 0 and 16")
	}
	if !prefixRe.MatchString(c.Render.Prefix) {
		return errors.New("J011").
			WithDetailf("render.prefix %q must start with a letter and contain only letters, digits and underscores", c.Render.Prefix)
	}
	if _, ok := levels[strings.ToLower(c.Log.Level)]; !ok {
		return errors.New("J011").
			WithDetailf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("J011").
			WithDetailf("log.format %q is not text or json", c.Log.Format)
	}
	if d, err := time.ParseDuration(c.Serve.Tick); err != nil || d <= 0 {
		return errors.New("J011").
			WithDetailf("serve.tick %q is not a positive duration", c.Serve.Tick)
	}
	return nil
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// LogLevel returns the configured log level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	if l, ok := levels[strings.ToLower(c.Log.Level)]; ok {
		return l
	}
	return slog.LevelInfo
}

// ServeAddress returns the host:port address of `jst serve`.
func (c *Config) ServeAddress() string {
	return c.Serve.Host + ":" + strconv.Itoa(c.Serve.Port)
}

// TickInterval returns the demo update interval, defaulting to one second.
func (c *Config) TickInterval() time.Duration {
	d, err := time.ParseDuration(c.Serve.Tick)
	if err != nil || d <= 0 {
		return time.Second
	}
	return d
}

// OutputPath returns the absolute path to the publish output directory.
func (c *Config) OutputPath() string {
	if filepath.IsAbs(c.Publish.Output) {
		return c.Publish.Output
	}
	return filepath.Join(c.Dir(), c.Publish.Output)
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	for _, name := range FileNames {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up from startDir to find a directory containing a
// config file.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("J012").
				WithDetail("No config file found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads the configuration found from the current working
// directory upwards, or returns defaults when there is none.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return New(), nil
	}

	return Load(root)
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func formatName(path string) string {
	if isYAML(path) {
		return "YAML"
	}
	return "JSON"
}
