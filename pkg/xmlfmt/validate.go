package xmlfmt

import (
	"github.com/arthur-debert/bkgen/pkg/errors"
	"github.com/beevik/etree"
)

// Validate re-parses a generated document and reports whether it is
// well-formed markup with a single root element.
func Validate(doc string) error {
	d := etree.NewDocument()
	if err := d.ReadFromString(doc); err != nil {
		return errors.Wrap(err, errors.ErrOutputInvalid, "generated document is not well-formed")
	}
	if d.Root() == nil {
		return errors.New(errors.ErrOutputInvalid, "generated document has no root element")
	}
	return nil
}
