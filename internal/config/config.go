// Package config loads process settings with viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"pump_console/internal/models"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. PUMP_CONSOLE_DB_PATH.
const EnvPrefix = "PUMP_CONSOLE"

// Config is the full process configuration.
type Config struct {
	Port      string               `mapstructure:"port"`
	Log       LogConfig            `mapstructure:"log"`
	DB        DBConfig             `mapstructure:"db"`
	Server    ServerConfig         `mapstructure:"server"`
	Simulator SimulatorConfig      `mapstructure:"simulator"`
	Console   ConsoleConfig        `mapstructure:"console"`
	Pump      PumpConfig           `mapstructure:"pump"`
	Tanks     []models.TankReading `mapstructure:"tanks"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type ServerConfig struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

// SimulatorConfig drives the simulated tank feed.
type SimulatorConfig struct {
	Enabled            bool    `mapstructure:"enabled"`
	Spec               string  `mapstructure:"spec"`                  // cron spec, e.g. "@every 5s"
	FlowLPerMin        float64 `mapstructure:"flow_l_per_min"`        // main -> upper while the pump runs
	ConsumptionLPerMin float64 `mapstructure:"consumption_l_per_min"` // drawn from each upper tank
}

// PumpConfig describes the installed pump.
type PumpConfig struct {
	PressureBar float64 `mapstructure:"pressure_bar"`
}

// ConsoleConfig sets the initial toggles of a session.
type ConsoleConfig struct {
	PumpOn                bool `mapstructure:"pump_on"`
	AutoMode              bool `mapstructure:"auto_mode"`
	ManualScheduleEnabled bool `mapstructure:"manual_schedule_enabled"`
	ScheduleEnabled       bool `mapstructure:"schedule_enabled"`
	QueueSize             int  `mapstructure:"queue_size"`
}

// ControlState converts the initial toggles.
func (c ConsoleConfig) ControlState() models.ControlState {
	return models.ControlState{
		PumpOn:                c.PumpOn,
		AutoMode:              c.AutoMode,
		ManualScheduleEnabled: c.ManualScheduleEnabled,
		ScheduleEnabled:       c.ScheduleEnabled,
	}
}

// PumpRating combines the configured pressure with the feed's flow rate.
func (c *Config) PumpRating() models.PumpRating {
	return models.PumpRating{FlowLPerMin: c.Simulator.FlowLPerMin, PressureBar: c.Pump.PressureBar}
}

// DefaultTanks mirror the installation the console was first built for.
var DefaultTanks = []models.TankReading{
	{ID: "1", Name: "Upper tank(s)", Role: models.TankRoleUpper, CapacityL: 10000, VolumeL: 7000, TemperatureC: 22},
	{ID: "2", Name: "Upper tank(s)", Role: models.TankRoleUpper, CapacityL: 8000, VolumeL: 6800, TemperatureC: 21},
	{ID: "3", Name: "Upper tanks", Role: models.TankRoleUpper, CapacityL: 12000, VolumeL: 5400, TemperatureC: 23},
	{ID: "main", Name: "Main tank", Role: models.TankRoleMain, CapacityL: 10000, VolumeL: 8000, TemperatureC: 22},
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("db.path", "file::memory:?cache=shared")
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("simulator.enabled", true)
	v.SetDefault("simulator.spec", "@every 5s")
	v.SetDefault("simulator.flow_l_per_min", 45.0)
	v.SetDefault("simulator.consumption_l_per_min", 5.0)
	v.SetDefault("console.pump_on", true)
	v.SetDefault("console.auto_mode", true)
	v.SetDefault("console.manual_schedule_enabled", false)
	v.SetDefault("console.schedule_enabled", true)
	v.SetDefault("console.queue_size", 64)
	v.SetDefault("pump.pressure_bar", 2.5)
}

// Load reads config.yml from the given directories (first match wins).
// A missing file is not an error; defaults and environment still apply.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if len(cfg.Tanks) == 0 {
		cfg.Tanks = append([]models.TankReading(nil), DefaultTanks...)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	seen := make(map[string]bool, len(c.Tanks))
	mains := 0
	for _, t := range c.Tanks {
		if t.ID == "" {
			return errors.New("tank without id")
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate tank id %q", t.ID)
		}
		seen[t.ID] = true
		switch t.Role {
		case models.TankRoleMain:
			mains++
		case models.TankRoleUpper:
		default:
			return fmt.Errorf("tank %q: unknown role %q", t.ID, t.Role)
		}
		if t.CapacityL <= 0 {
			return fmt.Errorf("tank %q: capacity must be positive", t.ID)
		}
	}
	if mains > 1 {
		return fmt.Errorf("expected at most one main tank, got %d", mains)
	}
	return nil
}
