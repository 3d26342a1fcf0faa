package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/premisgen/pkg/premisgen"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// EnvPrefix prefixes every environment variable that overrides the YAML file.
const EnvPrefix = "PREMISGEN_"

type AgentConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type RightsConfig struct {
	Basis   string `yaml:"basis"`
	Granted string `yaml:"granted"`
}

type ApplicationConfig struct {
	Name string `yaml:"name"`
	Date string `yaml:"date"`
}

type EventsConfig struct {
	Ingestion *bool `yaml:"ingestion,omitempty"`
}

type ProjectConfig struct {
	SIPID               string            `yaml:"sip_id"`
	Output              string            `yaml:"output,omitempty"`
	SystemAgent         AgentConfig       `yaml:"system_agent"`
	Depositor           AgentConfig       `yaml:"depositor"`
	Rights              RightsConfig      `yaml:"rights"`
	CreatingApplication ApplicationConfig `yaml:"creating_application"`
	Events              EventsConfig      `yaml:"events"`
}

const ConfigFileName = "premisgen.yaml"

// Load reads premisgen.yaml from the SIP root.
func Load(sourcePath string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(sourcePath, ConfigFileName))
}

// LoadFile reads a project config from an explicit path.
func LoadFile(configPath string) (*ProjectConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", configPath, err, premisgen.ErrInvalidConfig)
	}
	return &cfg, nil
}

// Resolve loads .env, then the project config (explicit path or the one in
// sourcePath), then applies PREMISGEN_* overrides. A missing config file
// yields an empty config, except when explicitPath names it.
func Resolve(sourcePath, explicitPath string) (*ProjectConfig, error) {
	_ = godotenv.Load()

	var (
		cfg *ProjectConfig
		err error
	)
	if explicitPath != "" {
		cfg, err = LoadFile(explicitPath)
		if errors.Is(err, ErrConfigNotFound) {
			return nil, fmt.Errorf("%s: %w: %w", explicitPath, ErrConfigNotFound, premisgen.ErrInvalidConfig)
		}
	} else {
		cfg, err = Load(sourcePath)
		if errors.Is(err, ErrConfigNotFound) {
			cfg, err = &ProjectConfig{}, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", ConfigFileName, err)
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables. lookup has the
// signature of os.LookupEnv.
func (c *ProjectConfig) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}

	str("SIP_ID", &c.SIPID)
	str("OUTPUT", &c.Output)
	str("SYSTEM_AGENT_ID", &c.SystemAgent.ID)
	str("SYSTEM_AGENT_NAME", &c.SystemAgent.Name)
	str("DEPOSITOR_ID", &c.Depositor.ID)
	str("DEPOSITOR_NAME", &c.Depositor.Name)
	str("RIGHTS_BASIS", &c.Rights.Basis)
	str("RIGHTS_GRANTED", &c.Rights.Granted)
	str("APPLICATION_NAME", &c.CreatingApplication.Name)
	str("APPLICATION_DATE", &c.CreatingApplication.Date)

	if v, ok := lookup(EnvPrefix + "INGESTION_EVENT"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sINGESTION_EVENT=%q: %w", EnvPrefix, v, premisgen.ErrInvalidConfig)
		}
		c.Events.Ingestion = &b
	}
	return nil
}

// ApplyTo copies configured values onto gc. Empty fields leave gc untouched,
// so defaults set beforehand survive.
func (c *ProjectConfig) ApplyTo(gc *premisgen.GenerateConfig) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&gc.SIPID, c.SIPID)
	set(&gc.OutputPath, c.Output)
	set(&gc.SystemAgent.IdentifierValue, c.SystemAgent.ID)
	set(&gc.SystemAgent.Name, c.SystemAgent.Name)
	set(&gc.Depositor.IdentifierValue, c.Depositor.ID)
	set(&gc.Depositor.Name, c.Depositor.Name)
	set(&gc.Rights.Basis, c.Rights.Basis)
	set(&gc.Rights.Granted, c.Rights.Granted)
	set(&gc.CreatingApplication.Name, c.CreatingApplication.Name)
	set(&gc.CreatingApplication.DateCreated, c.CreatingApplication.Date)
	if c.Events.Ingestion != nil {
		gc.IngestionEvent = *c.Events.Ingestion
	}
}
