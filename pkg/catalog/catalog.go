// Package catalog loads the component catalog and generation settings from
// the embedded defaults overlaid with an optional workspace configuration
// file. Loading happens once per invocation; the resulting Catalog is a
// plain value handed to the graph, script, and envfile packages.
package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	koanftoml "github.com/knadh/koanf/parsers/toml"
	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/toolup-cli/toolup/pkg/errors"
	"github.com/toolup-cli/toolup/pkg/logging"
	"github.com/toolup-cli/toolup/pkg/types"
)

// workspaceFiles are the configuration file names probed in the workspace
// root, in priority order. The first one found wins.
var workspaceFiles = []string{".toolup.toml", "toolup.toml", "toolup.yaml", "toolup.yml"}

// envPrefix is the prefix for environment overrides of generation settings,
// e.g. TOOLUP_SCRIPT=bootstrap.sh.
const envPrefix = "TOOLUP_"

// Settings are the artifact file names used by generation commands.
type Settings struct {
	Script  string `koanf:"script"`
	Env     string `koanf:"env"`
	Secrets string `koanf:"secrets"`
}

// Config is the fully loaded configuration for one invocation.
type Config struct {
	Catalog  types.Catalog
	Settings Settings
}

type envConfig struct {
	Name        string  `koanf:"name"`
	Secret      bool    `koanf:"secret"`
	Description string  `koanf:"description"`
	Default     *string `koanf:"default"`
}

type componentConfig struct {
	ID           string      `koanf:"id"`
	Name         string      `koanf:"name"`
	Description  string      `koanf:"description"`
	Dependencies []string    `koanf:"dependencies"`
	Install      []string    `koanf:"install"`
	Env          []envConfig `koanf:"env"`
}

type fileConfig struct {
	Settings  Settings          `koanf:"settings"`
	Component []componentConfig `koanf:"component"`
}

// Load reads the embedded default catalog, overlays the workspace
// configuration file if one exists, and applies TOOLUP_* environment
// overrides to the settings. Workspace components replace embedded
// components with the same id and otherwise extend the catalog.
func Load(workspaceRoot string) (*Config, error) {
	log := logging.GetLogger("catalog")

	defaults, err := parseLayer(&rawBytesProvider{bytes: defaultCatalog}, koanftoml.Parser(), "embedded defaults")
	if err != nil {
		return nil, err
	}

	merged := defaults
	if path, ok := findWorkspaceFile(workspaceRoot); ok {
		parser := parserFor(path)
		workspace, err := parseLayer(file.Provider(path), parser, path)
		if err != nil {
			return nil, err
		}
		merged = overlay(defaults, workspace)
		log.Debug().Str("path", path).Msg("Workspace catalog loaded")
	}

	if err := applyEnvOverrides(&merged.Settings); err != nil {
		return nil, err
	}

	cat := toCatalog(merged.Component)

	log.Debug().Int("components", len(cat)).Msg("Catalog ready")
	return &Config{Catalog: cat, Settings: merged.Settings}, nil
}

func parseLayer(provider koanf.Provider, parser koanf.Parser, source string) (*fileConfig, error) {
	k := koanf.New(".")
	if err := k.Load(provider, parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse catalog from %s", source)
	}

	var cfg fileConfig
	conf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			TagName:          "koanf",
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, conf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to decode catalog from %s", source)
	}

	seen := make(map[string]bool, len(cfg.Component))
	for _, c := range cfg.Component {
		if seen[c.ID] {
			return nil, errors.Newf(errors.ErrInvalidComponentMetadata,
				"component %q is defined more than once in %s", c.ID, source).
				WithDetail("component", c.ID).
				WithDetail("reason", "duplicate component id")
		}
		seen[c.ID] = true
	}
	return &cfg, nil
}

// overlay merges the workspace layer over the defaults: same-id components
// are replaced wholesale, new ones appended; non-empty settings fields win.
func overlay(base, over *fileConfig) *fileConfig {
	out := &fileConfig{Settings: base.Settings}

	index := make(map[string]int, len(base.Component))
	for _, c := range base.Component {
		index[c.ID] = len(out.Component)
		out.Component = append(out.Component, c)
	}
	for _, c := range over.Component {
		if i, ok := index[c.ID]; ok {
			out.Component[i] = c
		} else {
			index[c.ID] = len(out.Component)
			out.Component = append(out.Component, c)
		}
	}

	if over.Settings.Script != "" {
		out.Settings.Script = over.Settings.Script
	}
	if over.Settings.Env != "" {
		out.Settings.Env = over.Settings.Env
	}
	if over.Settings.Secrets != "" {
		out.Settings.Secrets = over.Settings.Secrets
	}
	return out
}

// applyEnvOverrides lets TOOLUP_SCRIPT, TOOLUP_ENV and TOOLUP_SECRETS
// override the settings layer.
func applyEnvOverrides(settings *Settings) error {
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigLoad, "failed to read environment overrides")
	}

	if v := k.String("script"); v != "" {
		settings.Script = v
	}
	if v := k.String("env"); v != "" {
		settings.Env = v
	}
	if v := k.String("secrets"); v != "" {
		settings.Secrets = v
	}
	return nil
}

func findWorkspaceFile(root string) (string, bool) {
	for _, name := range workspaceFiles {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

func parserFor(path string) koanf.Parser {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return koanfyaml.Parser()
	default:
		return koanftoml.Parser()
	}
}

// toCatalog converts decoded component descriptors into a Catalog value.
// Duplicate ids were rejected per layer; full structural validation happens
// in graph.Build.
func toCatalog(components []componentConfig) types.Catalog {
	cat := make(types.Catalog, len(components))
	for _, c := range components {
		id := types.ComponentID(c.ID)

		deps := make([]types.ComponentID, len(c.Dependencies))
		for i, dep := range c.Dependencies {
			deps[i] = types.ComponentID(dep)
		}

		specs := make([]types.EnvSpec, len(c.Env))
		for i, e := range c.Env {
			specs[i] = types.EnvSpec{
				Name:        e.Name,
				Secret:      e.Secret,
				Description: e.Description,
				Default:     e.Default,
			}
		}

		cat[id] = types.SetupComponent{
			ID:           id,
			DisplayName:  c.Name,
			Description:  c.Description,
			Dependencies: deps,
			InstallSteps: c.Install,
			EnvSpecs:     specs,
		}
	}
	return cat
}
