package generate

import (
	"github.com/arthur-debert/bkgen/pkg/config"
	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/arthur-debert/bkgen/pkg/logging"
	"github.com/arthur-debert/bkgen/pkg/project"
	"github.com/arthur-debert/bkgen/pkg/registry"
	"github.com/arthur-debert/bkgen/pkg/target"
	"github.com/arthur-debert/bkgen/pkg/toolsets"
	"github.com/arthur-debert/bkgen/pkg/xmlfmt"
)

// Result holds the documents generated for one toolset.
type Result struct {
	Toolset   string
	Documents []toolsets.Document
}

// Run generates every toolset listed in cfg.Toolsets, in order. It stops at
// the first toolset that fails.
func Run(
	cfg *config.Config,
	p *project.Project,
	types registry.Registry[target.Type],
	factories registry.Registry[toolsets.Factory],
) ([]Result, error) {
	logger := logging.GetLogger("generate")
	done := logging.LogOperationStart(logger, "generate")
	defer done()

	if err := validateTargets(p, types); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(cfg.Toolsets))
	for _, name := range cfg.Toolsets {
		factory, err := factories.Get(name)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrUnknownToolset, "unknown toolset %q", name).
				WithDetail("toolset", name)
		}

		docs, err := runToolset(cfg, factory(cfg), p, types)
		if err != nil {
			return nil, errors.Wrapf(err, errors.GetErrorCode(err), "toolset %s", name).
				WithDetail("toolset", name)
		}

		logger.Info().
			Str("toolset", name).
			Int("documents", len(docs)).
			Msg("Toolset generated")
		results = append(results, Result{Toolset: name, Documents: docs})
	}
	return results, nil
}

func validateTargets(p *project.Project, types registry.Registry[target.Type]) error {
	for _, t := range p.Targets() {
		typ, err := types.Get(t.TypeName)
		if err != nil {
			return errors.Wrapf(err, errors.ErrUnknownTargetType,
				"target %s: unknown type %q", t.ID, t.TypeName).
				WithDetail("target", t.ID)
		}
		if err := target.Validate(typ, t); err != nil {
			return err
		}
	}
	return nil
}

func runToolset(
	cfg *config.Config,
	w toolsets.Writer,
	p *project.Project,
	types registry.Registry[target.Type],
) (docs []toolsets.Document, err error) {
	defer errors.Recover(&err)

	src := p
	if w.ExpandsReferences() {
		src, err = p.ExpandReferences()
	} else {
		src, err = p.SpliceListReferences()
	}
	if err != nil {
		return nil, err
	}

	subgraphs, err := Subgraphs(src, w.Toolset(), types)
	if err != nil {
		return nil, err
	}

	if docs, err = w.Write(src, subgraphs); err != nil {
		return nil, err
	}

	if cfg.Verify {
		for _, d := range docs {
			if !d.Markup {
				continue
			}
			if err := xmlfmt.Validate(d.Content); err != nil {
				return nil, errors.Wrapf(err, errors.ErrOutputInvalid, "%s is not well-formed", d.Path).
					WithDetail("path", d.Path)
			}
		}
	}
	return docs, nil
}

// Subgraphs asks the type of every target in p for its build nodes.
func Subgraphs(p *project.Project, toolset target.Toolset, types registry.Registry[target.Type]) ([]toolsets.Subgraph, error) {
	subgraphs := make([]toolsets.Subgraph, 0, len(p.Targets()))
	for _, t := range p.Targets() {
		typ, err := types.Get(t.TypeName)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrUnknownTargetType,
				"target %s: unknown type %q", t.ID, t.TypeName)
		}
		subgraphs = append(subgraphs, toolsets.Subgraph{
			Target: t,
			Nodes:  typ.BuildSubgraph(toolset, t),
		})
	}
	return subgraphs, nil
}
