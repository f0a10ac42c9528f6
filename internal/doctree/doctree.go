// Package doctree loads declarative document trees from YAML or JSON files
// and renders them through the mllwriter writers.
package doctree

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/michaeleberhardt310/mllwriter"
	"github.com/michaeleberhardt310/mllwriter/format"
)

// Attr is a single attribute on a node. Attributes are a list rather than a
// map so their order survives the round trip into the document.
type Attr struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Node is one element of a declarative document tree.
type Node struct {
	Tag      string  `json:"tag" yaml:"tag"`
	Attrs    []Attr  `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Text     string  `json:"text,omitempty" yaml:"text,omitempty"`
	Comment  string  `json:"comment,omitempty" yaml:"comment,omitempty"`
	Single   bool    `json:"single,omitempty" yaml:"single,omitempty"`
	Children []*Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Load reads a document tree from a YAML or JSON file, selected by
// extension.
func Load(filename string) (*Node, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading tree: %w", err)
	}

	var root Node
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("parsing YAML tree: %w", err)
		}
	case ".json":
		if err := gojson.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("parsing JSON tree: %w", err)
		}
	default:
		return nil, fmt.Errorf("doctree: unsupported input extension %q", ext)
	}
	return &root, nil
}

// Render writes the tree through w in the notation of the given format.
// HTML and XML render nodes as nested tags with one element per line; JSON
// renders nodes as nested objects.
func Render(w mllwriter.Writer, f format.Format, root *Node) error {
	if root == nil {
		return fmt.Errorf("doctree: nil root node")
	}
	if f == format.JSON {
		if err := w.OpenTag(""); err != nil {
			return err
		}
		if err := renderJSONBody(w, root); err != nil {
			return err
		}
		return w.CloseTag()
	}
	return renderMarkup(w, root)
}

// textWriter is satisfied by the HTML and XML writers, which escape
// character data.
type textWriter interface {
	Text(s string)
}

func renderMarkup(w mllwriter.Writer, n *Node) error {
	if n.Tag == "" && n.Comment != "" {
		w.AddComment(n.Comment)
		return nil
	}
	if n.Single {
		if err := w.SingleTag(n.Tag); err != nil {
			return err
		}
		return addAttrs(w, n.Attrs)
	}

	if err := w.OpenTag(n.Tag); err != nil {
		return err
	}
	if err := addAttrs(w, n.Attrs); err != nil {
		return err
	}
	if n.Comment != "" {
		w.AddComment(n.Comment)
	}
	if n.Text != "" {
		writeText(w, n.Text)
	}
	for i, child := range n.Children {
		if i == 0 {
			w.LineFeedInc()
		} else {
			w.LineFeed(1)
		}
		if err := renderMarkup(w, child); err != nil {
			return err
		}
	}
	if len(n.Children) > 0 {
		w.LineFeedDec()
	}
	return w.CloseTag()
}

func renderJSONBody(w mllwriter.Writer, n *Node) error {
	for _, a := range n.Attrs {
		if err := addValue(w, a.Name, a.Value); err != nil {
			return err
		}
	}
	if n.Comment != "" {
		w.AddComment(n.Comment)
	}
	if n.Text != "" {
		if err := addValue(w, "_text", n.Text); err != nil {
			return err
		}
	}
	for _, child := range n.Children {
		if isLeaf(child) {
			if err := addValue(w, child.Tag, child.Text); err != nil {
				return err
			}
			continue
		}
		if err := w.OpenTag(child.Tag); err != nil {
			return err
		}
		if err := renderJSONBody(w, child); err != nil {
			return err
		}
		if err := w.CloseTag(); err != nil {
			return err
		}
	}
	return nil
}

func isLeaf(n *Node) bool {
	return len(n.Children) == 0 && len(n.Attrs) == 0 && n.Comment == ""
}

// valueWriter is satisfied by the JSON writer, which encodes Go values.
type valueWriter interface {
	AddValue(name string, v any) error
}

func addValue(w mllwriter.Writer, name string, v any) error {
	if vw, ok := w.(valueWriter); ok {
		return vw.AddValue(name, v)
	}
	raw, err := gojson.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding value: %w", err)
	}
	return w.AddAttr(name, string(raw))
}

func addAttrs(w mllwriter.Writer, attrs []Attr) error {
	for _, a := range attrs {
		if err := w.AddAttr(a.Name, a.Value); err != nil {
			return err
		}
	}
	return nil
}

func writeText(w mllwriter.Writer, s string) {
	if tw, ok := w.(textWriter); ok {
		tw.Text(s)
		return
	}
	w.WriteString(s)
}
