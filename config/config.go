/*
Package config loads runtime settings for the server and the CLI.

SOURCES (later wins):
  1. Defaults set here
  2. Optional YAML file (-config / --config)
  3. .env file in the working directory, if present
  4. ROBOPAY_* environment variables, e.g. ROBOPAY_SERVER_PORT=3000,
     ROBOPAY_BREAKS_WORK=6h

KEYS:
  server.port              HTTP port (8080)
  server.allowed_origins   CORS origins
  breaks.work              paid time before a break (8h)
  breaks.break             unpaid break length (1h)
  calculator.strategy      "segments" or "minute_sweep"
  log.level                debug, info, warn, error
  log.format               text or json

SEE ALSO:
  - cmd/server/main.go, cmd/robopay/main.go: Callers
*/
package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/warp/robot-pay/payroll"
)

const envPrefix = "ROBOPAY"

const (
	keyServerPort     = "server.port"
	keyAllowedOrigins = "server.allowed_origins"
	keyReadTimeout    = "server.read_timeout"
	keyWriteTimeout   = "server.write_timeout"
	keyBreakWork      = "breaks.work"
	keyBreakBreak     = "breaks.break"
	keyStrategy       = "calculator.strategy"
	keyLogLevel       = "log.level"
	keyLogFormat      = "log.format"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Breaks     BreaksConfig     `mapstructure:"breaks"`
	Calculator CalculatorConfig `mapstructure:"calculator"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
}

type BreaksConfig struct {
	Work  time.Duration `mapstructure:"work"`
	Break time.Duration `mapstructure:"break"`
}

type CalculatorConfig struct {
	Strategy string `mapstructure:"strategy"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyServerPort, 8080)
	v.SetDefault(keyAllowedOrigins, []string{"http://localhost:5173", "http://localhost:8080"})
	v.SetDefault(keyReadTimeout, 15*time.Second)
	v.SetDefault(keyWriteTimeout, 15*time.Second)
	v.SetDefault(keyBreakWork, payroll.DefaultBreakPolicy.Work)
	v.SetDefault(keyBreakBreak, payroll.DefaultBreakPolicy.Break)
	v.SetDefault(keyStrategy, string(payroll.StrategySegments))
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "text")
}

// Load reads configuration. An empty path skips the config file; a path that
// does not exist is an error.
func Load(path string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file failed: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that would otherwise fail later at request time.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid %s: %d", keyServerPort, c.Server.Port)
	}
	if err := c.BreakPolicy().Validate(); err != nil {
		return err
	}
	if _, err := payroll.ParseStrategy(c.Calculator.Strategy); err != nil {
		return fmt.Errorf("invalid %s: %w", keyStrategy, err)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// BreakPolicy returns the configured break rule.
func (c *Config) BreakPolicy() payroll.BreakPolicy {
	return payroll.BreakPolicy{Work: c.Breaks.Work, Break: c.Breaks.Break}
}

// NewCalculator builds the calculator described by the config.
func (c *Config) NewCalculator() (payroll.Calculator, error) {
	strategy, err := payroll.ParseStrategy(c.Calculator.Strategy)
	if err != nil {
		return payroll.Calculator{}, err
	}
	return payroll.NewCalculator(c.BreakPolicy(), strategy)
}

// NewLogger builds a slog logger writing to w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid %s %q: %w", keyLogLevel, s, err)
	}
	return level, nil
}
