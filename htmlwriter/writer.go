// Package htmlwriter generates HTML text output.
package htmlwriter

import (
	"golang.org/x/net/html"

	"github.com/michaeleberhardt310/mllwriter"
)

// defaultIndentSize is the number of whitespaces per indent step.
const defaultIndentSize = 4

// Writer builds HTML content block by block. It never emits line feeds on
// its own; the caller styles the document with LineFeed, LineFeedInc, and
// LineFeedDec. Property values are escaped unless the writer was constructed
// with mllwriter.WithRawValues.
type Writer struct {
	mllwriter.Core
	raw bool
}

var _ mllwriter.Writer = (*Writer)(nil)

// New returns a Writer with a default indent step size of 4 whitespaces.
func New(opts ...mllwriter.Option) *Writer {
	o := mllwriter.NewOptions(opts...)
	size := o.IndentSize
	if size == 0 {
		size = defaultIndentSize
	}
	w := &Writer{Core: mllwriter.NewCore(size), raw: o.RawValues}
	if o.IndentSteps > 0 {
		w.SetIndent(o.IndentSteps)
	}
	return w
}

// OpenTag opens a block tag, e.g. "<div>", and records it on the block
// stack. Tag names must be ASCII alphanumeric with all letters lowercase.
func (w *Writer) OpenTag(tag string) error {
	if err := mllwriter.CheckName(tag); err != nil {
		return err
	}
	w.WriteString("<" + tag + ">")
	w.PushBlock(tag)
	return nil
}

// OpenTagAttr combines OpenTag and AddAttr.
func (w *Writer) OpenTagAttr(tag, name, value string) error {
	if err := w.OpenTag(tag); err != nil {
		return err
	}
	return w.AddAttr(name, value)
}

// CloseTag closes the most recently opened block, e.g. "</div>".
func (w *Writer) CloseTag() error {
	tag, err := w.PopBlock()
	if err != nil {
		return err
	}
	w.WriteString("</" + tag + ">")
	return nil
}

// SingleTag writes a single-tag element, e.g. "<img>".
func (w *Writer) SingleTag(tag string) error {
	if err := mllwriter.CheckName(tag); err != nil {
		return err
	}
	w.WriteString("<" + tag + ">")
	return nil
}

// SingleTagAttr combines SingleTag and AddAttr.
func (w *Writer) SingleTagAttr(tag, name, value string) error {
	if err := w.SingleTag(tag); err != nil {
		return err
	}
	return w.AddAttr(name, value)
}

// AddAttr attaches a property-value pair to the most recently written tag.
// The trailing ">" is reopened, the pair inserted, and the tag closed again.
// It must be called directly after a tag-writing operation.
func (w *Writer) AddAttr(name, value string) error {
	if err := mllwriter.CheckName(name); err != nil {
		return err
	}
	if !w.TrimSuffix(">") {
		return mllwriter.ErrNoTag
	}
	w.WriteString(" " + name + `="` + w.escape(value) + `">`)
	return nil
}

// AddAttrs attaches an ordered property list to the most recently written
// tag.
func (w *Writer) AddAttrs(props *mllwriter.Property) error {
	pairs := props.Pairs()
	for _, p := range pairs {
		if err := mllwriter.CheckName(p.Name); err != nil {
			return err
		}
	}
	if !w.TrimSuffix(">") {
		return mllwriter.ErrNoTag
	}
	for _, p := range pairs {
		w.WriteString(" " + p.Name + `="` + w.escape(p.Value) + `"`)
	}
	w.WriteString(">")
	return nil
}

// AddComment writes an HTML comment at the current position.
func (w *Writer) AddComment(comment string) {
	w.WriteString("<!-- " + comment + " -->")
}

// Doctype writes the HTML5 doctype declaration.
func (w *Writer) Doctype() {
	w.WriteString("<!DOCTYPE html>")
}

// Text writes character data, escaped unless the writer is in raw mode.
func (w *Writer) Text(s string) {
	w.WriteString(w.escape(s))
}

// RawText writes character data verbatim.
func (w *Writer) RawText(s string) {
	w.WriteString(s)
}

func (w *Writer) escape(s string) string {
	if w.raw {
		return s
	}
	return html.EscapeString(s)
}
