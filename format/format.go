// Package format provides output format selection for the mllwriter library.
package format

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/michaeleberhardt310/mllwriter"
	"github.com/michaeleberhardt310/mllwriter/htmlwriter"
	"github.com/michaeleberhardt310/mllwriter/jsonwriter"
	"github.com/michaeleberhardt310/mllwriter/xmlwriter"
)

// Format represents a supported output format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// HTML indicates HTML output.
	HTML
	// XML indicates XML output.
	XML
	// JSON indicates JSON output.
	JSON
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case HTML:
		return "HTML"
	case XML:
		return "XML"
	case JSON:
		return "JSON"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case HTML:
		return ".html"
	case XML:
		return ".xml"
	case JSON:
		return ".json"
	default:
		return ""
	}
}

// Detect determines the output format from a filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".html", ".htm":
		return HTML
	case ".xml":
		return XML
	case ".json":
		return JSON
	default:
		return Unknown
	}
}

// Parse converts a format name such as "html", "xml", or "json" into a
// Format. Matching is case-insensitive.
func Parse(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "html", "htm":
		return HTML, nil
	case "xml":
		return XML, nil
	case "json":
		return JSON, nil
	default:
		return Unknown, fmt.Errorf("format: unknown format %q", name)
	}
}

// NewWriter constructs the writer for the given format.
func NewWriter(f Format, opts ...mllwriter.Option) (mllwriter.Writer, error) {
	switch f {
	case HTML:
		return htmlwriter.New(opts...), nil
	case XML:
		return xmlwriter.New(opts...), nil
	case JSON:
		return jsonwriter.New(opts...), nil
	default:
		return nil, fmt.Errorf("format: no writer for %s", f)
	}
}
