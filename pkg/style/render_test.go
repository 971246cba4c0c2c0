package style

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderError(t *testing.T) {
	assert.Empty(t, RenderError(nil))

	plain := RenderError(stderrors.New("boom"))
	assert.Contains(t, plain, "Error: boom")

	coded := RenderError(errors.New(errors.ErrUnknownToolset, "unknown toolset").
		WithDetail("toolset", "xcode"))
	assert.Contains(t, coded, string(errors.ErrUnknownToolset))
	assert.Contains(t, coded, "unknown toolset")
	assert.Contains(t, coded, "toolset: xcode")
}

func TestMarkdown(t *testing.T) {
	out := Markdown("# Action\n\nRuns *commands*.", 0)
	assert.Contains(t, out, "Action")
	assert.Contains(t, out, "commands")
}

func TestTable(t *testing.T) {
	out, err := Table([]string{"NAME", "DESCRIPTION"}, [][]string{{"action", "Custom action script."}})
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "action")
	assert.Contains(t, out, "Custom action script.")
}
