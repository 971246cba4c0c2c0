package bkgen

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/bkgen/pkg/core"
	"github.com/arthur-debert/bkgen/pkg/targets/action"
	"github.com/arthur-debert/bkgen/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifest = `
name = "demo"

[[targets]]
id = "hello"
type = "action"
[targets.properties]
commands = ["echo hi", "echo bye"]
`

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	testutil.IsolateState(t)
	core.MustInitialize()

	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeManifest(t *testing.T, extra map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range extra {
		testutil.CreateFile(t, dir, name, content)
	}
	return testutil.CreateFile(t, dir, "project.toml", manifest)
}

func TestGenerateCmd_WritesFiles(t *testing.T) {
	path := writeManifest(t, nil)
	dir := filepath.Dir(path)

	out, err := execute(t, "generate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Generated 4 file(s) for 2 toolset(s)")

	makefile := testutil.ReadFile(t, filepath.Join(dir, "Makefile"))
	assert.Contains(t, makefile, "hello:\n\t@echo hi\n\t@echo bye\n")

	for _, name := range []string{"hello.vcxproj", "hello.vcxproj.filters", "demo.sln"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}
}

func TestGenerateCmd_ConfigFileAndFlags(t *testing.T) {
	path := writeManifest(t, map[string]string{
		"bkgen.toml": "toolsets = [\"gnu\"]\n[gnu]\nmakefile = \"GNUmakefile\"\n",
	})
	outDir := t.TempDir()

	out, err := execute(t, "generate", "--output-dir", outDir, path)
	require.NoError(t, err)
	assert.Contains(t, out, "Generated 1 file(s) for 1 toolset(s)")
	assert.FileExists(t, filepath.Join(outDir, "GNUmakefile"))

	out, err = execute(t, "generate", "--stdout", "-t", "vs2010", path)
	require.NoError(t, err)
	assert.Contains(t, out, "==> hello.vcxproj <==\n<?xml")
	assert.Contains(t, out, "==> demo.sln <==\nMicrosoft Visual Studio Solution File")
}

func TestGenerateCmd_Errors(t *testing.T) {
	_, err := execute(t, "generate", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	path := writeManifest(t, nil)
	_, err = execute(t, "generate", "-t", "xcode", path)
	assert.Error(t, err)
}

func TestTypesCmd(t *testing.T) {
	out, err := execute(t, "types")
	require.NoError(t, err)
	assert.Contains(t, out, action.ActionTypeName)
	assert.Contains(t, out, "Custom action script.")
}

func TestDescribe(t *testing.T) {
	core.MustInitialize()
	typ, err := core.TargetTypes().Get(action.ActionTypeName)
	require.NoError(t, err)

	md := describe(typ)
	assert.Contains(t, md, "# action\n")
	assert.Contains(t, md, "| commands | list of strings | `[]` | List of commands to run. |")

	_, err = execute(t, "describe", "nosuchtype")
	assert.Error(t, err)
}

func TestGUIDCmd(t *testing.T) {
	out, err := execute(t, "guid", "project", "demo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "{8B3E7742-99D3-5197-8F87-FED04F8CBD6D}\n", out)

	_, err = execute(t, "guid", "bogus", "demo", "hello")
	assert.Error(t, err)
}

func TestConfigAndVersionCmds(t *testing.T) {
	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "toolsets")

	out, err = execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "bkgen version")
}
