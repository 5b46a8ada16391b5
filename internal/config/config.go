package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the application configuration, loaded from config.toml next
// to the executable.
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Ingest IngestConfig `toml:"ingest"`
	Export ExportConfig `toml:"export"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// IngestConfig configures sheet discovery. Role sheets are matched by exact
// normalized name; monthly sheets by period token and position. The period
// token parameterizes the reporting year instead of hardcoding it.
type IngestConfig struct {
	IdentitySheet   string `toml:"identity_sheet"`
	CommentsSheet   string `toml:"comments_sheet"`
	PayrollSheet    string `toml:"payroll_sheet"`
	PeriodToken     string `toml:"period_token"`
	MinMonthlySheet int    `toml:"min_monthly_sheet"`
	MaxUploadMB     int    `toml:"max_upload_mb"`
}

// ExportConfig configures download filenames.
type ExportConfig struct {
	PayrollFilename string `toml:"payroll_filename"`
}

// LoadConfigInfo carries load metadata.
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20315,
			DevMode: false,
		},
		Ingest: IngestConfig{
			IdentitySheet:   "INFORMACION",
			CommentsSheet:   "COMENTARIOS",
			PayrollSheet:    "NOMINA",
			PeriodToken:     "2025",
			MinMonthlySheet: 7,
			MaxUploadMB:     10,
		},
		Export: ExportConfig{
			PayrollFilename: "Resumen_Nomina_SICET.csv",
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir returns the executable's directory.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo loads config.toml and returns load metadata. A missing
// file yields the defaults.
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	// Environment override, used by E2E runs against next year's workbooks.
	if v := os.Getenv("SICET_PERIOD_TOKEN"); v != "" {
		config.Ingest.PeriodToken = v
	}

	return config, info, nil
}

// LoadConfig loads config.toml from the executable's directory.
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig writes the configuration back to config.toml.
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}
