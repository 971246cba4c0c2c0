package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/charmbracelet/glamour"
	"github.com/pterm/pterm"
)

// RenderError formats err for the terminal. Coded errors show their code and
// details.
func RenderError(err error) string {
	if err == nil {
		return ""
	}

	code := errors.GetErrorCode(err)
	if code == errors.ErrUnknown {
		return ErrorStyle.Render("Error: " + err.Error())
	}

	var sb strings.Builder
	sb.WriteString(ErrorStyle.Render(fmt.Sprintf("Error [%s]:", code)))
	sb.WriteString(" ")
	sb.WriteString(err.Error())

	details := errors.GetErrorDetails(err)
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString("\n  ")
		sb.WriteString(MutedStyle.Render(fmt.Sprintf("%s: %v", k, details[k])))
	}
	return sb.String()
}

// Markdown renders markdown for the terminal. width 0 keeps glamour's
// default wrapping. On renderer failure the source is returned unchanged.
func Markdown(content string, width int) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// Table renders rows under header as a boxed table.
func Table(header []string, rows [][]string) (string, error) {
	data := pterm.TableData{header}
	data = append(data, rows...)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
