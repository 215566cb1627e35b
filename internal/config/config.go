package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/barleyrp/overlay/internal/zone"
)

// Load reads configuration from JSON file and sets default values.
// configDir is the directory containing the config file.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "./overlaylogs")

	viper.SetDefault("startup.screen", "login")
	viper.SetDefault("startup.name", "")

	viper.SetDefault("bridge.transport", "websocket")
	viper.SetDefault("bridge.url", "ws://localhost:7788/overlay")
	viper.SetDefault("bridge.secret", "")

	viper.SetDefault("validation.usernameMin", 3)
	viper.SetDefault("validation.loginPasswordMin", 5)
	viper.SetDefault("validation.registerPasswordMin", 5)
	viper.SetDefault("validation.registerPasswordMax", 20)

	viper.SetDefault("notifications.maxVisible", 5)
	viper.SetDefault("notifications.defaultDelayMs", 5000)

	viper.SetDefault("hud.updateIntervalMs", 1000)

	viper.SetDefault("journal.enabled", false)
	viper.SetDefault("journal.path", "overlay_journal.db")
	viper.SetDefault("journal.flushIntervalMs", 1000)

	viper.SetDefault("influx.enabled", false)
	viper.SetDefault("influx.host", "localhost")
	viper.SetDefault("influx.port", "8086")
	viper.SetDefault("influx.protocol", "http")
	viper.SetDefault("influx.token", "")
	viper.SetDefault("influx.org", "overlay-metrics")

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.serviceName", "overlay")
	viper.SetDefault("otel.batchTimeoutMs", 5000)
	viper.SetDefault("otel.endpoint", "")
	viper.SetDefault("otel.insecure", false)

	viper.SetDefault("debug.enabled", false)
	viper.SetDefault("debug.addr", "127.0.0.1:7780")

	viper.SetConfigName("overlay.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetMillis returns a millisecond config value as a duration.
func GetMillis(key string) time.Duration {
	return time.Duration(viper.GetInt(key)) * time.Millisecond
}

// Zones unmarshals the configured zone definitions.
func Zones() ([]zone.Definition, error) {
	var defs []zone.Definition
	if err := viper.UnmarshalKey("zones", &defs); err != nil {
		return nil, fmt.Errorf("error unmarshalling zones: %w", err)
	}
	return defs, nil
}
