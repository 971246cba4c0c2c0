// Package xmlfmt renders node trees into markup documents laid out the way
// Visual Studio writes its own project files: two-space indentation,
// attributes in insertion order, no empty leaf elements.
package xmlfmt

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/arthur-debert/bkgen/pkg/expr"
	"github.com/arthur-debert/bkgen/pkg/node"
)

// Header opens every generated document.
const Header = `<?xml version="1.0" encoding="utf-8"?>` + "\n" +
	`<!-- This file was generated by bkgen. Do not modify, all changes will be overwritten! -->` + "\n"

const indentStep = "  "

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

// Formatter serializes node trees with a backend's expr.Formatter.
type Formatter struct {
	values expr.Formatter
}

// New returns a Formatter that renders expression values with values.
func New(values expr.Formatter) *Formatter {
	return &Formatter{values: values}
}

// Format renders root as a complete document. Output depends only on the
// tree, so identical trees always produce identical bytes.
func (f *Formatter) Format(root *node.Node) string {
	var sb strings.Builder
	sb.WriteString(Header)
	f.formatNode(&sb, root, "")
	return sb.String()
}

func (f *Formatter) formatNode(sb *strings.Builder, n *node.Node, indent string) {
	sb.WriteString(indent)
	sb.WriteByte('<')
	sb.WriteString(n.Name)
	for _, a := range n.Attrs() {
		sb.WriteByte(' ')
		sb.WriteString(a.Key)
		sb.WriteString(`="`)
		sb.WriteString(EscapeAttr(f.FormatDatum(a.Value)))
		sb.WriteByte('"')
	}

	var text string
	if n.Text != nil {
		text = f.FormatDatum(n.Text)
	}

	switch {
	case n.HasChildren():
		errors.Assert(text == "", "node %s has both text and children", n.Name)
		sb.WriteString(">\n")
		subindent := indent + indentStep
		for _, c := range n.Children() {
			if c.Node != nil {
				errors.Assert(c.Name == c.Node.Name,
					"child registered as %s but node is named %s", c.Name, c.Node.Name)
				f.formatNode(sb, c.Node, subindent)
				continue
			}
			v := EscapeText(f.FormatDatum(c.Value))
			if v == "" {
				continue
			}
			sb.WriteString(subindent)
			writeElement(sb, c.Name, v)
		}
		sb.WriteString(indent)
		sb.WriteString("</")
		sb.WriteString(n.Name)
		sb.WriteString(">\n")

	case text != "":
		sb.WriteByte('>')
		sb.WriteString(EscapeText(text))
		sb.WriteString("</")
		sb.WriteString(n.Name)
		sb.WriteString(">\n")

	default:
		sb.WriteString(" />\n")
	}
}

func writeElement(sb *strings.Builder, name, escaped string) {
	sb.WriteByte('<')
	sb.WriteString(name)
	sb.WriteByte('>')
	sb.WriteString(escaped)
	sb.WriteString("</")
	sb.WriteString(name)
	sb.WriteString(">\n")
}

// FormatDatum converts d to unescaped text.
func (f *Formatter) FormatDatum(d node.Datum) string {
	switch d := d.(type) {
	case node.Expr:
		return f.values.Format(d.Value)
	case node.Bool:
		return f.values.FormatBool(bool(d))
	case node.String:
		return string(d)
	case node.Int:
		return strconv.Itoa(int(d))
	case node.List:
		parts := make([]string, len(d))
		for i, item := range d {
			parts[i] = f.FormatDatum(item)
		}
		return strings.Join(parts, f.values.ListSeparator())
	case nil:
		errors.Violation("missing value")
	default:
		errors.Violation("unsupported datum %T", d)
	}
	return ""
}

// EscapeText escapes character data.
func EscapeText(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttr escapes a value for use inside a double-quoted attribute.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
