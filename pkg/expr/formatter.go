package expr

import (
	"strings"

	"github.com/arthur-debert/bkgen/pkg/errors"
)

// Formatter converts values into text for one output backend.
type Formatter interface {
	// Format renders v. Implementations may abort through errors.Violation
	// when v breaks a backend invariant.
	Format(v Value) string
	// FormatBool renders a boolean with the backend's tokens.
	FormatBool(b bool) string
	// ListSeparator joins formatted list items.
	ListSeparator() string
}

// ReferenceFunc renders a reference for backends that can resolve them.
// The Formatter is passed so that resolved values are formatted recursively
// with the same policy.
type ReferenceFunc func(f Formatter, r Reference) string

// Policy is a table-driven Formatter. Each backend instantiates one Policy
// with its own tokens; there is no per-backend subtype.
type Policy struct {
	// Name identifies the backend in violation messages.
	Name      string
	Separator string
	True      string
	False     string
	// Reference is nil for backends where references are forbidden.
	Reference ReferenceFunc
}

var _ Formatter = (*Policy)(nil)

// Format implements Formatter.
func (p *Policy) Format(v Value) string {
	switch v := v.(type) {
	case Literal:
		return v.Text
	case List:
		parts := make([]string, len(v.Items))
		for i, item := range v.Items {
			parts[i] = p.Format(item)
		}
		return strings.Join(parts, p.Separator)
	case Bool:
		return p.FormatBool(v.Value)
	case Concat:
		var sb strings.Builder
		for _, item := range v.Items {
			sb.WriteString(p.Format(item))
		}
		return sb.String()
	case Reference:
		if p.Reference == nil {
			errors.Violation("%s output: reference %s was not expanded", p.Name, v)
		}
		return p.Reference(p, v)
	case nil:
		errors.Violation("%s output: nil value", p.Name)
	default:
		errors.Violation("%s output: unsupported value %T", p.Name, v)
	}
	return ""
}

// FormatBool implements Formatter.
func (p *Policy) FormatBool(b bool) string {
	if b {
		return p.True
	}
	return p.False
}

// ListSeparator implements Formatter.
func (p *Policy) ListSeparator() string {
	return p.Separator
}
