package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/inix-labs/inix/internal/branding"
	"github.com/inix-labs/inix/internal/reconcile"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyOnConflict   = "on_conflict"
	KeyAutoAllow    = "auto_allow"
	KeyTemplateDirs = "template_dirs"
)

// ErrNoConfigDir is returned when the user configuration directory cannot
// be determined.
var ErrNoConfigDir = errors.New("cannot determine the user configuration directory")

// Keys returns the known configuration keys, sorted.
func Keys() []string {
	keys := []string{KeyOnConflict, KeyAutoAllow, KeyTemplateDirs}
	sort.Strings(keys)
	return keys
}

// UserDir returns the inix config directory. INIX_CONFIG_DIR overrides the
// platform default (<user config dir>/inix).
func UserDir() (string, error) {
	if dir := os.Getenv(branding.EnvVar("CONFIG_DIR")); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoConfigDir, err)
	}
	return filepath.Join(base, branding.ConfigDir()), nil
}

// Dir is UserDir with a fallback to ./inix when no config directory is known.
func Dir() string {
	dir, err := UserDir()
	if err != nil {
		return filepath.Join(".", branding.ConfigDir())
	}
	return dir
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyAutoAllow, false)

	if err := viper.ReadInConfig(); err != nil {
		// A missing file just means nothing has been set yet.
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", FilePath(), err)
	}
	return nil
}

// Get returns a config value by key as a string. Returns empty string if not set.
func Get(key string) string {
	if key == KeyTemplateDirs {
		return strings.Join(TemplateDirs(), string(os.PathListSeparator))
	}
	return viper.GetString(key)
}

// Set validates and writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	var v interface{}
	switch key {
	case KeyOnConflict:
		b, err := reconcile.ParseConflictBehavior(value)
		if err != nil {
			return err
		}
		v = b.String()
	case KeyAutoAllow:
		b, err := cast.ToBoolE(value)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s: expected true or false", value, key)
		}
		v = b
	case KeyTemplateDirs:
		v = splitList(value)
	default:
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, v)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// OnConflict returns the configured conflict behavior, or nil when unset.
func OnConflict() (*reconcile.ConflictBehavior, error) {
	raw := strings.TrimSpace(viper.GetString(KeyOnConflict))
	if raw == "" {
		return nil, nil
	}
	b, err := reconcile.ParseConflictBehavior(raw)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", KeyOnConflict, err)
	}
	return &b, nil
}

// AutoAllow reports whether direnv should be allowed after a run.
func AutoAllow() bool {
	return viper.GetBool(KeyAutoAllow)
}

// TemplateDirs returns extra template locations, highest priority first. The
// environment form is a path list (INIX_TEMPLATE_DIRS=/a:/b).
func TemplateDirs() []string {
	switch raw := viper.Get(KeyTemplateDirs).(type) {
	case nil:
		return nil
	case string:
		return splitList(raw)
	default:
		return cast.ToStringSlice(raw)
	}
}

func splitList(s string) []string {
	var out []string
	for _, p := range filepath.SplitList(s) {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
