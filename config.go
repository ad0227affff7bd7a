package hanscan

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the per-project configuration file looked up in the
// scanned root.
const ConfigFileName = ".hanscan.yml"

// fileConfig is the YAML shape of the project configuration file. Every
// field is optional; absent fields keep their defaults.
type fileConfig struct {
	RemoveComments   *bool    `yaml:"remove_comments"`
	RemoveDocstrings *bool    `yaml:"remove_docstrings"`
	CodeOnly         *bool    `yaml:"code_only"`
	BackupOriginal   *bool    `yaml:"backup_original"`
	CacheFile        string   `yaml:"cache_file"`
	Extensions       []string `yaml:"extensions"`
	DocExtensions    []string `yaml:"doc_extensions"`
	BlacklistDirs    []string `yaml:"blacklist_dirs"`
	Workers          int      `yaml:"workers"`
}

// LoadConfig returns the configuration for a project root: defaults overlaid
// with the root's .hanscan.yml if one exists. A missing file is not an
// error; a malformed one is.
func LoadConfig(root string) (Config, error) {
	cfg := DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	data, err := os.ReadFile(path) // #nosec G304 - project config under user-chosen root
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return cfg, &TranslationError{Message: "parsing " + path, Cause: err}
	}

	if fc.RemoveComments != nil {
		cfg.RemoveComments = *fc.RemoveComments
	}
	if fc.RemoveDocstrings != nil {
		cfg.RemoveDocstrings = *fc.RemoveDocstrings
	}
	if fc.CodeOnly != nil {
		cfg.CodeOnly = *fc.CodeOnly
	}
	if fc.BackupOriginal != nil {
		cfg.BackupOriginal = *fc.BackupOriginal
	}
	if fc.CacheFile != "" {
		cfg.CacheFile = fc.CacheFile
	}
	if len(fc.Extensions) > 0 {
		cfg.Extensions = extSet(fc.Extensions)
	}
	if len(fc.DocExtensions) > 0 {
		cfg.DocExtensions = extSet(fc.DocExtensions)
	}
	if len(fc.BlacklistDirs) > 0 {
		cfg.BlacklistDirs = extSet(fc.BlacklistDirs)
	}
	if fc.Workers > 0 {
		cfg.Workers = fc.Workers
	}

	return cfg, nil
}
