package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SkillPatch holds all configuration for the skillpatch tool.
type SkillPatch struct {
	// Data files
	Data DataConfig `yaml:"data"`

	// Audit ledger (optional)
	Audit AuditConfig `yaml:"audit"`
}

// DataConfig locates the skill data files to patch.
type DataConfig struct {
	Dir       string `yaml:"dir"`
	SkillData string `yaml:"skilldata"`
	SkillDesc string `yaml:"skilldesc"`
}

// SkillDataPath returns the full path to skilldata.json.
func (d DataConfig) SkillDataPath() string {
	return filepath.Join(d.Dir, d.SkillData)
}

// SkillDescPath returns the full path to the description file.
func (d DataConfig) SkillDescPath() string {
	return filepath.Join(d.Dir, d.SkillDesc)
}

// AuditConfig controls the PostgreSQL run ledger.
// When Enabled is false the tool never touches the database.
type AuditConfig struct {
	Enabled  bool           `yaml:"enabled"`
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultSkillPatch returns SkillPatch config with sensible defaults.
func DefaultSkillPatch() SkillPatch {
	return SkillPatch{
		Data: DataConfig{
			Dir:       "lib/gw/data",
			SkillData: "skilldata.json",
			SkillDesc: "skilldesc-en.json",
		},
		Audit: AuditConfig{
			Enabled: false,
			Database: DatabaseConfig{
				Host:     "127.0.0.1",
				Port:     5432,
				User:     "gw1builds",
				Password: "gw1builds",
				DBName:   "gw1builds",
				SSLMode:  "disable",
			},
		},
	}
}

// LoadSkillPatch loads skillpatch config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSkillPatch(path string) (SkillPatch, error) {
	cfg := DefaultSkillPatch()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
