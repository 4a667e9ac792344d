// Package render writes calculator results as text, JSON, YAML or
// terminal tables.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrNilReport is returned when nil is passed to render functions.
var ErrNilReport = errors.New("report is nil")

// Report is implemented by calculator results to provide serializable
// output for the JSON and YAML renderers.
type Report interface {
	// ReportName identifies the calculator ("fisher", "senspec").
	ReportName() string

	// ToJSON returns a value suitable for json.Marshal.
	ToJSON() any

	// ToYAML returns a value suitable for yaml.Marshal.
	ToYAML() any
}

// JSON writes r as indented JSON followed by a newline.
func JSON(w io.Writer, r Report) error {
	if r == nil {
		return ErrNilReport
	}

	data, err := json.MarshalIndent(r.ToJSON(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s report to JSON: %w", r.ReportName(), err)
	}

	_, err = fmt.Fprintf(w, "%s\n", data)
	if err != nil {
		return fmt.Errorf("write %s report: %w", r.ReportName(), err)
	}

	return nil
}

// YAML writes r as a YAML document.
func YAML(w io.Writer, r Report) error {
	if r == nil {
		return ErrNilReport
	}

	data, err := yaml.Marshal(r.ToYAML())
	if err != nil {
		return fmt.Errorf("marshal %s report to YAML: %w", r.ReportName(), err)
	}

	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("write %s report: %w", r.ReportName(), err)
	}

	return nil
}
