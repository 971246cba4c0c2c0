package core

import (
	"sync"

	"github.com/arthur-debert/bkgen/pkg/config"
	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/arthur-debert/bkgen/pkg/logging"
	"github.com/arthur-debert/bkgen/pkg/registry"
	"github.com/arthur-debert/bkgen/pkg/target"
	"github.com/arthur-debert/bkgen/pkg/targets/action"
	"github.com/arthur-debert/bkgen/pkg/toolsets"
	"github.com/arthur-debert/bkgen/pkg/toolsets/gnu"
	"github.com/arthur-debert/bkgen/pkg/toolsets/vs"
)

var (
	mu               sync.RWMutex
	targetTypes      registry.Registry[target.Type]
	toolsetFactories registry.Registry[toolsets.Factory]
)

// Initialize builds fresh registries holding every built-in target type
// and toolset. It is safe to call more than once.
func Initialize() error {
	logger := logging.GetLogger("core.init")

	types := registry.New[target.Type]("target type")
	if err := types.Register(action.ActionTypeName, action.NewActionType()); err != nil {
		return err
	}

	factories := registry.New[toolsets.Factory]("toolset")
	if err := factories.Register(string(gnu.Toolset), newGNU); err != nil {
		return err
	}
	if err := factories.Register(string(vs.Toolset), newVS); err != nil {
		return err
	}

	mu.Lock()
	targetTypes, toolsetFactories = types, factories
	mu.Unlock()

	logger.Debug().
		Strs("targetTypes", types.List()).
		Strs("toolsets", factories.List()).
		Msg("Core initialization completed")
	return nil
}

// MustInitialize calls Initialize and panics on error.
func MustInitialize() {
	if err := Initialize(); err != nil {
		panic("Core initialization failed: " + err.Error())
	}
}

// TargetTypes returns the target-type registry.
func TargetTypes() registry.Registry[target.Type] {
	mu.RLock()
	defer mu.RUnlock()
	errors.Assert(targetTypes != nil, "core is not initialized")
	return targetTypes
}

// Toolsets returns the toolset writer factories.
func Toolsets() registry.Registry[toolsets.Factory] {
	mu.RLock()
	defer mu.RUnlock()
	errors.Assert(toolsetFactories != nil, "core is not initialized")
	return toolsetFactories
}

func newGNU(cfg *config.Config) toolsets.Writer {
	return gnu.New(cfg.GNU.Makefile)
}

func newVS(cfg *config.Config) toolsets.Writer {
	return vs.New(vs.Options{
		Configurations: cfg.VS.Configurations,
		Platform:       cfg.VS.Platform,
		SolutionFolder: cfg.VS.SolutionFolder,
	})
}
