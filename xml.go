package odf

import (
	"fmt"

	"github.com/beevik/etree"
)

// Function variables for testing injection.
var (
	writeXML = func(doc *etree.Document) ([]byte, error) { return doc.WriteToBytes() }
)

// parseXML parses a distinguished member into a tree. Input that is not
// well-formed or has no root element is rejected.
func parseXML(name string, data []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.ValidateInput = true
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrXML, name, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: %s: no root element", ErrXML, name)
	}
	return doc, nil
}

// serializeXML renders a tree back to bytes for the member name.
func serializeXML(name string, doc *etree.Document) ([]byte, error) {
	b, err := writeXML(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrXML, name, err)
	}
	return b, nil
}
