package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type MQTT struct {
	Broker   string `mapstructure:"broker" yaml:"broker"`
	Topic    string `mapstructure:"topic" yaml:"topic"`
	ClientID string `mapstructure:"client_id" yaml:"client_id"`
	Username string `mapstructure:"username" yaml:"username"`
	Password string `mapstructure:"password" yaml:"password"`
}

type Config struct {
	// Backend selects who talks to the backlight: sysfs, logind or mock.
	Backend string `mapstructure:"backend" yaml:"backend"`
	// Device is the backlight device name; empty picks the first one.
	Device string `mapstructure:"device" yaml:"device"`
	// Notifier selects the change source: uevent or fsnotify.
	Notifier string `mapstructure:"notifier" yaml:"notifier"`
	MQTT     MQTT   `mapstructure:"mqtt" yaml:"mqtt"`
}

func Default() Config {
	return Config{
		Backend:  "sysfs",
		Notifier: "uevent",
		MQTT: MQTT{
			Broker:   "tcp://localhost:1883",
			Topic:    "lumo/brightness",
			ClientID: "lumo",
		},
	}
}

func Dir() string {
	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, "lumo")
}

func Path() string {
	return filepath.Join(Dir(), "lumo.yaml")
}

// Load reads lumo.yaml from the user config dir, falling back to
// defaults when no file exists. LUMO_* environment variables override
// file values.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("lumo")
	v.SetConfigType("yaml")
	v.AddConfigPath(Dir())
	return load(v)
}

// LoadFile reads an explicit config file path.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (Config, error) {
	v.SetEnvPrefix("lumo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("backend", def.Backend)
	v.SetDefault("device", def.Device)
	v.SetDefault("notifier", def.Notifier)
	v.SetDefault("mqtt.broker", def.MQTT.Broker)
	v.SetDefault("mqtt.topic", def.MQTT.Topic)
	v.SetDefault("mqtt.client_id", def.MQTT.ClientID)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

// Generate writes a default config file. It refuses to overwrite an
// existing one.
func Generate(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
