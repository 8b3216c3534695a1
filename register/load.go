package register

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the input file layout:
//
//	findings:
//	  - priority: 1
//	    severity: High
//	    resource_type: Storage Account
//	    issue: Public blob access enabled
//	    risk_score: 9
type Document struct {
	Findings []Finding `yaml:"findings"`
}

// Load decodes a findings document. Unknown keys are rejected so typos in
// field names do not silently produce empty cells.
func Load(r io.Reader) ([]Finding, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode findings: %w", err)
	}
	return doc.Findings, nil
}

func LoadFile(path string) ([]Finding, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	findings, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return findings, nil
}
