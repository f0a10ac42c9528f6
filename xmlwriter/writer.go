// Package xmlwriter generates XML text output.
package xmlwriter

import (
	"golang.org/x/net/html"

	"github.com/michaeleberhardt310/mllwriter"
)

// defaultIndentSize is the number of whitespaces per indent step.
const defaultIndentSize = 2

// Writer builds XML content block by block. It never emits line feeds on its
// own; the caller styles the document with LineFeed, LineFeedInc, and
// LineFeedDec. Property values are escaped unless the writer was constructed
// with mllwriter.WithRawValues.
//
// SingleTag writes "<tag>" by default, matching the HTML writer. Strict XML
// consumers require the self-closing "<tag/>" form, available via
// mllwriter.WithSelfClosing.
type Writer struct {
	mllwriter.Core
	raw         bool
	selfClosing bool
}

var _ mllwriter.Writer = (*Writer)(nil)

// New returns a Writer with a default indent step size of 2 whitespaces.
func New(opts ...mllwriter.Option) *Writer {
	o := mllwriter.NewOptions(opts...)
	size := o.IndentSize
	if size == 0 {
		size = defaultIndentSize
	}
	w := &Writer{
		Core:        mllwriter.NewCore(size),
		raw:         o.RawValues,
		selfClosing: o.SelfClosing,
	}
	if o.IndentSteps > 0 {
		w.SetIndent(o.IndentSteps)
	}
	return w
}

// Declaration writes an XML declaration, e.g.
// <?xml version="1.0" encoding="UTF-8"?>. Empty arguments select version
// 1.0 and UTF-8.
func (w *Writer) Declaration(version, encoding string) {
	if version == "" {
		version = "1.0"
	}
	if encoding == "" {
		encoding = "UTF-8"
	}
	w.WriteString(`<?xml version="` + version + `" encoding="` + encoding + `"?>`)
}

// OpenTag opens a block tag, e.g. "<node>", and records it on the block
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

// CloseTag closes the most recently opened block, e.g. "</node>".
func (w *Writer) CloseTag() error {
	tag, err := w.PopBlock()
	if err != nil {
		return err
	}
	w.WriteString("</" + tag + ">")
	return nil
}

// SingleTag writes a childless element, "<tag/>" in self-closing mode and
// "<tag>" otherwise.
func (w *Writer) SingleTag(tag string) error {
	if err := mllwriter.CheckName(tag); err != nil {
		return err
	}
	if w.selfClosing {
		w.WriteString("<" + tag + "/>")
	} else {
		w.WriteString("<" + tag + ">")
	}
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
// It must be called directly after a tag-writing operation.
func (w *Writer) AddAttr(name, value string) error {
	if err := mllwriter.CheckName(name); err != nil {
		return err
	}
	closer, err := w.reopen()
	if err != nil {
		return err
	}
	w.WriteString(" " + name + `="` + w.escape(value) + `"` + closer)
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
	closer, err := w.reopen()
	if err != nil {
		return err
	}
	for _, p := range pairs {
		w.WriteString(" " + p.Name + `="` + w.escape(p.Value) + `"`)
	}
	w.WriteString(closer)
	return nil
}

// AddComment writes an XML comment at the current position.
func (w *Writer) AddComment(comment string) {
	w.WriteString("<!-- " + comment + " -->")
}

// Text writes character data, escaped unless the writer is in raw mode.
func (w *Writer) Text(s string) {
	w.WriteString(w.escape(s))
}

// RawText writes character data verbatim.
func (w *Writer) RawText(s string) {
	w.WriteString(s)
}

// reopen removes the closer of the last written tag, returning the string
// that reinstates it after the properties are inserted.
func (w *Writer) reopen() (string, error) {
	if w.TrimSuffix("/>") {
		return "/>", nil
	}
	if w.TrimSuffix(">") {
		return ">", nil
	}
	return "", mllwriter.ErrNoTag
}

func (w *Writer) escape(s string) string {
	if w.raw {
		return s
	}
	return html.EscapeString(s)
}
