package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk shape of a roadmap, used for seed files and for
// `show --format json|yaml`.
type Document struct {
	Title  string     `json:"title,omitempty" yaml:"title,omitempty"`
	Phases []PhaseDoc `json:"phases" yaml:"phases"`
}

// PhaseDoc describes one phase and its tasks.
type PhaseDoc struct {
	ID       ID        `json:"id" yaml:"id"`
	Title    string    `json:"title" yaml:"title"`
	Duration int       `json:"duration" yaml:"duration"`
	DueDate  *string   `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	Tasks    []TaskDoc `json:"tasks" yaml:"tasks"`
}

// TaskDoc describes one task. Blank status and priority fall back to
// pending and medium on conversion.
type TaskDoc struct {
	ID       ID      `json:"id" yaml:"id"`
	Text     string  `json:"text" yaml:"text"`
	Status   string  `json:"status,omitempty" yaml:"status,omitempty"`
	Priority string  `json:"priority,omitempty" yaml:"priority,omitempty"`
	Assignee string  `json:"assignee,omitempty" yaml:"assignee,omitempty"`
	DueDate  *string `json:"due_date,omitempty" yaml:"due_date,omitempty"`
}

// ID is a phase or task identifier. In JSON it may be written as a string
// or a bare integer.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	if _, err := strconv.ParseInt(string(data), 10, 64); err != nil {
		return fmt.Errorf("id must be a string or integer, got %s", data)
	}
	*id = ID(data)
	return nil
}

// Format names a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml or yml in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want json or yaml)", s)
	}
}

// FormatForPath picks the encoding from a file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer format of %s: no file extension", path)
	}
	return ParseFormat(ext)
}

// Load reads and parses a roadmap document, choosing JSON or YAML by
// extension.
func Load(path string) (*Document, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Decode parses a document from r.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && err != io.EOF {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	return &doc, nil
}

// Encode writes doc to w in the given format.
func Encode(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
