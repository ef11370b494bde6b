package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"

	// ProfileEnv names the environment variable that selects the profile.
	ProfileEnv = envPrefix + "PROFILE"
)

// ProfileFromEnv returns the profile named by APP_PROFILE.
func ProfileFromEnv() (string, error) {
	profile := os.Getenv(ProfileEnv)
	if profile == "" {
		return "", fmt.Errorf("%s environment variable is required (e.g. local, dev, qa, prod)", ProfileEnv)
	}
	return profile, nil
}

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory where config YAML files are located.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load reads configuration using a 4-layer hierarchy (highest precedence last):
//
//  0. In-code defaults
//  1. Base config ({configDir}/base.yaml)
//  2. Profile config ({configDir}/{profile}.yaml)
//  3. Environment variables (APP_ prefix)
//
// Environment variables are matched against the known config keys, which
// resolves the ambiguity between nesting separators and underscores inside
// field names. List keys take comma-separated values. Variables that match
// no key, such as APP_PROFILE itself, are ignored.
//
//	APP_SERVER_PORT               -> server.port
//	APP_SERVER_READ_TIMEOUT       -> server.read_timeout
//	APP_CLIENT_RETRY_MAX_ATTEMPTS -> client.retry.max_attempts
//	APP_WEBHOOK_URLS=a,b          -> webhook.urls = [a b]
//	APP_CORS_ALLOWED_ORIGINS      -> cors.allowed_origins
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	// Layer 0: defaults, so every key is known to the env lookup below
	// even when no YAML file mentions it.
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	// Layer 1: Base config (shared across all profiles).
	basePath := filepath.Join(o.configDir, "base.yaml")
	if err := k.Load(file.Provider(basePath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading base config %s: %w", basePath, err)
	}

	// Layer 2: Profile-specific config.
	profilePath := filepath.Join(o.configDir, profile+".yaml")
	if err := k.Load(file.Provider(profilePath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading profile config %s: %w", profilePath, err)
	}

	// Layer 3: APP_ environment variables, matched against the keys known
	// so far (see envTransform).
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: envTransform(k),
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	// Unmarshal into Config struct.
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Validate.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// validateProfile checks that the profile name is safe and non-empty.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// envTransform maps APP_ variables onto the keys already loaded into k.
// Values for list keys are split on commas; unknown variables map to the
// empty key, which the env provider skips.
func envTransform(k *koanf.Koanf) func(key, value string) (string, any) {
	lookup := make(map[string]string)
	lists := make(map[string]bool)
	for _, key := range k.Keys() {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
		if _, ok := k.Get(key).([]any); ok {
			lists[key] = true
		} else if _, ok := k.Get(key).([]string); ok {
			lists[key] = true
		}
	}

	return func(envKey, value string) (string, any) {
		key, ok := lookup[strings.ToLower(strings.TrimPrefix(envKey, envPrefix))]
		if !ok {
			return "", nil
		}
		if lists[key] {
			return key, splitList(value)
		}
		return key, value
	}
}

// splitList splits a comma-separated value, dropping blanks.
func splitList(value string) []string {
	items := make([]string, 0, strings.Count(value, ",")+1)
	for item := range strings.SplitSeq(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
