package config

import (
	"bytes"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/npillmayer/bahr"
)

// Load decodes a single parser document (tokens, rules, onmatch_rules,
// whitespace) from YAML. It performs no validation beyond what yaml.v3
// itself enforces (well-formed YAML, type conformance of tagged fields).
func Load(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		tracer().Errorf("config: decoding parser document failed: %v", err)
		return nil, bahr.NewSchemaError("decoding YAML document: %v", err)
	}
	return &doc, nil
}

// LoadBytes is a convenience wrapper around Load for callers already holding
// the document in memory.
func LoadBytes(data []byte) (*Document, error) {
	return Load(bytes.NewReader(data))
}

// LoadScanner decodes a full scanner document set (three parser documents
// plus constraints and meters_list) from YAML.
func LoadScanner(r io.Reader) (*ScannerDocument, error) {
	var doc ScannerDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		tracer().Errorf("config: decoding scanner document failed: %v", err)
		return nil, bahr.NewSchemaError("decoding YAML scanner document: %v", err)
	}
	return &doc, nil
}

// LoadScannerBytes is LoadScanner for an in-memory document.
func LoadScannerBytes(data []byte) (*ScannerDocument, error) {
	return LoadScanner(bytes.NewReader(data))
}
