package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/arthur-debert/bkgen/pkg/logging"
	"github.com/arthur-debert/bkgen/pkg/registry"
	"github.com/arthur-debert/bkgen/pkg/target"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is a manifest encoding.
type Format string

const (
	// FormatTOML reads manifests written in TOML.
	FormatTOML Format = "toml"
	// FormatYAML reads manifests written in YAML.
	FormatYAML Format = "yaml"
)

type manifest struct {
	Name    string           `toml:"name" yaml:"name"`
	Targets []manifestTarget `toml:"targets" yaml:"targets"`
}

type manifestTarget struct {
	ID         string         `toml:"id" yaml:"id"`
	Type       string         `toml:"type" yaml:"type"`
	Properties map[string]any `toml:"properties" yaml:"properties"`
}

// FormatFor picks the manifest format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.Newf(errors.ErrProjectLoad, "unsupported manifest extension %q", filepath.Ext(path)).
		WithDetail("path", path)
}

// Load reads and resolves the manifest at path. When the manifest has no
// name, the file's base name is used.
func Load(path string, types registry.Registry[target.Type]) (*Project, error) {
	logger := logging.GetLogger("project.load")

	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrProjectLoad, "cannot read manifest %s", path)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	p, err := Parse(data, format, base, types)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("path", path).
		Str("project", p.Name).
		Int("targets", len(p.Targets())).
		Msg("loaded manifest")
	return p, nil
}

// Parse decodes manifest data and resolves every target against its
// registered type.
func Parse(data []byte, format Format, defaultName string, types registry.Registry[target.Type]) (*Project, error) {
	var m manifest
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &m)
	case FormatYAML:
		err = yaml.Unmarshal(data, &m)
	default:
		return nil, errors.Newf(errors.ErrProjectLoad, "unsupported manifest format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrProjectLoad, "cannot decode %s manifest", format)
	}

	name := m.Name
	if name == "" {
		name = defaultName
	}

	targets := make([]*target.Target, 0, len(m.Targets))
	for i, mt := range m.Targets {
		if mt.ID == "" {
			return nil, errors.Newf(errors.ErrProjectInvalid, "target #%d has no id", i+1)
		}
		typ, err := types.Get(mt.Type)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrUnknownTargetType,
				"target %s: unknown type %q", mt.ID, mt.Type).
				WithDetail("target", mt.ID)
		}
		t, err := target.Resolve(typ, mt.ID, mt.Properties)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}

	return New(name, targets...)
}
