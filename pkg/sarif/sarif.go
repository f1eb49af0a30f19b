// Package sarif decodes the subset of SARIF 2.1.0 that ghannotate turns into
// findings.
// https://docs.oasis-open.org/sarif/sarif/v2.1.0/sarif-v2.1.0.html
package sarif

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Log represents the top-level SARIF log object.
type Log struct {
	Schema  string `json:"$schema,omitempty"`
	Version string `json:"version"`
	Runs    []Run  `json:"runs"`
}

// Run represents a single run of an analysis tool.
type Run struct {
	Tool    Tool     `json:"tool"`
	Results []Result `json:"results"`
}

// Tool describes the analysis tool that produced the results.
type Tool struct {
	Driver Driver `json:"driver"`
}

// Driver describes the tool component that produced the results.
type Driver struct {
	Name           string `json:"name"`
	InformationURI string `json:"informationUri,omitempty"`
	Version        string `json:"version,omitempty"`
}

// Result represents a single result from the analysis.
type Result struct {
	RuleID    string     `json:"ruleId,omitempty"`
	Level     string     `json:"level,omitempty"`
	Message   Message    `json:"message"`
	Locations []Location `json:"locations,omitempty"`
}

// Message contains text describing a result.
type Message struct {
	Text string `json:"text"`
}

// Location describes a location relevant to a result.
type Location struct {
	PhysicalLocation PhysicalLocation `json:"physicalLocation"`
}

// PhysicalLocation describes a physical location in a file.
type PhysicalLocation struct {
	ArtifactLocation ArtifactLocation `json:"artifactLocation"`
	Region           Region           `json:"region"`
}

// ArtifactLocation describes the location of an artifact.
type ArtifactLocation struct {
	URI string `json:"uri"`
}

// Region describes a region within an artifact.
type Region struct {
	StartLine int `json:"startLine,omitempty"`
	EndLine   int `json:"endLine,omitempty"`
}

// Levels defined by SARIF.
const (
	LevelError   = "error"
	LevelWarning = "warning"
	LevelNote    = "note"
	LevelNone    = "none"
)

// Read decodes a SARIF log.
func Read(r io.Reader) (*Log, error) {
	log := &Log{}
	if err := json.NewDecoder(r).Decode(log); err != nil {
		return nil, fmt.Errorf("decode SARIF: %w", err)
	}
	if log.Version == "" {
		return nil, errors.New("SARIF version is missing")
	}
	return log, nil
}

// File returns the URI and start line of the first location of the result.
// The line is 0 if the result has no region.
func (r *Result) File() (string, int) {
	if len(r.Locations) == 0 {
		return "", 0
	}
	loc := r.Locations[0].PhysicalLocation
	return loc.ArtifactLocation.URI, loc.Region.StartLine
}
