package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

const (
	defaultGitBinary  = "git"
	defaultMinVersion = "2.20.0"
	defaultWorkers    = 4
)

// Settings is the top-level configuration for gitinsight.
type Settings struct {
	Git      GitSettings      `yaml:"git"`
	Style    CommitStyle      `yaml:"style"`
	Analysis AnalysisSettings `yaml:"analysis"`
}

// GitSettings configures the git process collaborator.
type GitSettings struct {
	Binary     string `yaml:"binary"`      // Executable name or path, ${ENV_VAR} allowed
	MinVersion string `yaml:"min_version"` // Lowest accepted `git version`, e.g. 2.20.0
}

// AnalysisSettings configures the impact analyzer.
type AnalysisSettings struct {
	Workers         int      `yaml:"workers"`
	ControlKeywords []string `yaml:"control_keywords"` // Replaces the default list when set
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no config file exists.
func DefaultSettings() *Settings {
	return &Settings{
		Git: GitSettings{
			Binary:     defaultGitBinary,
			MinVersion: defaultMinVersion,
		},
		Style: DefaultCommitStyle(),
		Analysis: AnalysisSettings{
			Workers: defaultWorkers,
		},
	}
}

// NewSettings reads and parses a configuration file on top of the defaults,
// expanding environment variables and validating the result.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Git.Binary = expandEnv(settings.Git.Binary)
	if settings.Git.Binary == "" {
		settings.Git.Binary = defaultGitBinary
	}

	if validateErr := ValidateSettings(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".gitinsight.yaml",
		".gitinsight.yml",
		"gitinsight.yaml",
		"gitinsight.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// LoadSettings loads the given config file, or the first one found in the
// default locations. A missing file is not an error: defaults are returned.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		found, err := FindConfigFile()
		if err != nil {
			logger.Debugf("No config file found, using defaults: %v", err)
			return DefaultSettings(), nil
		}
		path = found
	}

	logger.Debugf("Using config file: %s", path)
	return NewSettings(path)
}

// Reload replaces the receiver with the settings read by LoadSettings, so
// every holder of the pointer sees the new values.
func (it *Settings) Reload(path string) error {
	loaded, err := LoadSettings(path)
	if err != nil {
		return err
	}
	*it = *loaded
	return nil
}

// ValidateSettings checks the configuration values.
func ValidateSettings(settings *Settings) error {
	if _, err := ParseStyleType(string(settings.Style.Type)); err != nil {
		return fmt.Errorf("style.type: %w", err)
	}
	if settings.Style.MaxLength < 0 {
		return fmt.Errorf("style.max_length must not be negative, got %d", settings.Style.MaxLength)
	}
	if settings.Analysis.Workers < 0 {
		return fmt.Errorf("analysis.workers must not be negative, got %d", settings.Analysis.Workers)
	}
	if settings.Git.MinVersion != "" && !semver.IsValid(CanonicalVersion(settings.Git.MinVersion)) {
		return fmt.Errorf("git.min_version %q is not a valid version", settings.Git.MinVersion)
	}
	return nil
}

// CanonicalVersion turns "2.39.2" into the "v2.39.2" form expected by semver.
func CanonicalVersion(version string) string {
	if version == "" || version[0] == 'v' {
		return version
	}
	return "v" + version
}

// expandEnv expands ${ENV_VAR} references, warning about unset variables.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
