// Package writer serializes an assembled document tree to XML text.
//
// Serialization is a read-only walk over the schema types; the output is
// deterministic, so repeated calls over an unchanged tree yield identical
// bytes.
package writer

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/orderx-go/orderx/schema"
)

const indent = "  "

// Marshal renders the document to XML text including the XML declaration.
func Marshal(doc *schema.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("document is nil")
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", indent)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')

	return buf.Bytes(), nil
}

// Write renders the document to w.
func Write(doc *schema.Document, w io.Writer) error {
	content, err := Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(content)
	return err
}
