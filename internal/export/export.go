// Package export renders study material for printing or sharing.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/interviewsprint/internal/prep"
)

// Format is an output encoding.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{FormatMarkdown, FormatJSON, FormatYAML}

// ParseFormat accepts a format name or a common file extension
// ("md", "yml").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown export format %q (want markdown, json or yaml)", s)
}

// Document is everything that gets exported.
type Document struct {
	GeneratedAt time.Time          `json:"generatedAt" yaml:"generatedAt"`
	Roadmap     []prep.RoadmapItem `json:"roadmap" yaml:"roadmap"`
	SQL         []prep.Question    `json:"sql" yaml:"sql"`
	DSA         []prep.Question    `json:"dsa" yaml:"dsa"`
}

// Write renders doc to w in the given format.
func Write(w io.Writer, format Format, doc Document) error {
	switch format {
	case FormatMarkdown:
		return writeMarkdown(w, doc)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown export format %q", format)
}

// FormatForPath picks the format from a file extension, falling back to
// markdown.
func FormatForPath(path string) Format {
	f, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return FormatMarkdown
	}
	return f
}

// WriteFile renders doc into path, creating or truncating it.
func WriteFile(path string, format Format, doc Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, format, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
