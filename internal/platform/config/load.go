package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
	baseProfile      = "base"
)

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir points Load at a directory other than ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load builds the configuration for profile from, lowest precedence first:
//
//  1. defaultConfig
//  2. {configDir}/base.yaml
//  3. {configDir}/{profile}.yaml
//  4. APP_* environment variables
//
// Both YAML files must exist. Environment names map onto known keys first so
// field names containing underscores survive:
//
//	APP_TEAMFORGE_BASE_URL         -> teamforge.base_url
//	APP_TEAMFORGE_KEYRING_ENABLED  -> teamforge.keyring.enabled
//	APP_CLIENT_RETRY_MAX_ATTEMPTS  -> client.retry.max_attempts
//
// The result is validated before it is returned.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}
	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	for _, name := range []string{baseProfile, profile} {
		path := filepath.Join(o.configDir, name+".yaml")
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading %s config %s: %w", name, path, err)
		}
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envKeyMapper(k.Keys()),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading %s* environment: %w", envPrefix, err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", profile, err)
	}
	return &cfg, nil
}

// envKeyMapper resolves APP_* names against the keys already loaded, falling
// back to treating every underscore as nesting for keys no layer declared.
func envKeyMapper(known []string) func(key, value string) (string, any) {
	byEnvName := make(map[string]string, len(known))
	for _, key := range known {
		byEnvName[strings.ReplaceAll(key, ".", "_")] = key
	}
	return func(key, value string) (string, any) {
		name := strings.ToLower(strings.TrimPrefix(key, envPrefix))
		if k, ok := byEnvName[name]; ok {
			return k, value
		}
		return strings.ReplaceAll(name, "_", "."), value
	}
}

// validateProfile rejects names that could escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a plain name", profile)
	case profile == baseProfile:
		return fmt.Errorf("profile %q is the shared layer, not a deployment profile", profile)
	}
	return nil
}
