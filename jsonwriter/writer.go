// Package jsonwriter generates JSON text output.
//
// The philosophy is to write only the task at hand, nothing more: OpenTag
// writes the "{" and nothing else, AddAttr writes only the member. When a
// line feed, indent, or comma separator is needed, the writer inspects the
// current ending and inserts it before the real task.
package jsonwriter

import (
	"fmt"
	"strconv"

	gojson "github.com/goccy/go-json"

	"github.com/michaeleberhardt310/mllwriter"
)

// defaultIndentSize is the number of whitespaces per indent step.
const defaultIndentSize = 2

// Block kinds recorded on the block stack.
const (
	kindObject = "{"
	kindArray  = "["
)

// Writer builds JSON content from objects, arrays, and members. Unlike the
// markup writers it manages line feeds, indentation, and comma separation
// automatically. Member values passed to AddAttr are written verbatim, so
// callers supply quoted strings or bare literals; the typed helpers
// (AddValue, AddString, ...) encode Go values instead.
type Writer struct {
	mllwriter.Core
	commentN int
}

var _ mllwriter.Writer = (*Writer)(nil)

// New returns a Writer with a default indent step size of 2 whitespaces.
func New(opts ...mllwriter.Option) *Writer {
	o := mllwriter.NewOptions(opts...)
	size := o.IndentSize
	if size == 0 {
		size = defaultIndentSize
	}
	w := &Writer{Core: mllwriter.NewCore(size)}
	if o.IndentSteps > 0 {
		w.SetIndent(o.IndentSteps)
	}
	return w
}

// prepare inspects the current ending and writes the correct separator:
// a line feed with indent increment directly after an opening brace or
// bracket, a comma and line feed between members.
func (w *Writer) prepare() {
	switch {
	case w.Len() == 0:
	case w.HasSuffix(kindObject), w.HasSuffix(kindArray):
		w.LineFeedInc()
	default:
		w.WriteString(",\n" + w.CurrentIndent())
	}
}

// OpenTag opens an object. An empty tag opens an anonymous object, as at the
// document root or inside an array; a non-empty tag writes the member name
// first, e.g.
//
//	"Data":
//	{
func (w *Writer) OpenTag(tag string) error {
	return w.openBlock(tag, kindObject)
}

// OpenTagAttr combines OpenTag and AddAttr.
func (w *Writer) OpenTagAttr(tag, name, value string) error {
	if err := w.OpenTag(tag); err != nil {
		return err
	}
	return w.AddAttr(name, value)
}

// CloseTag closes the innermost open object with a line feed, an indent
// decrement, and the closing brace.
func (w *Writer) CloseTag() error {
	return w.closeBlock(kindObject, "}")
}

// OpenArray opens an array. An empty name opens an anonymous array.
func (w *Writer) OpenArray(name string) error {
	return w.openBlock(name, kindArray)
}

func (w *Writer) openBlock(name, kind string) error {
	var key string
	if name != "" {
		var err error
		if key, err = encode(name); err != nil {
			return err
		}
	}
	w.prepare()
	if key != "" {
		w.WriteString(key + ":\n" + w.CurrentIndent())
	}
	w.WriteString(kind)
	w.PushBlock(kind)
	return nil
}

// CloseArray closes the innermost open array.
func (w *Writer) CloseArray() error {
	return w.closeBlock(kindArray, "]")
}

func (w *Writer) closeBlock(kind, closer string) error {
	top, ok := w.PeekBlock()
	if !ok {
		return mllwriter.ErrNoOpenBlock
	}
	if top != kind {
		return mllwriter.ErrBlockMismatch
	}
	w.PopBlock()
	w.LineFeedDec()
	w.WriteString(closer)
	return nil
}

// SingleTag returns ErrUnsupported: there is no single-tag element in JSON.
func (w *Writer) SingleTag(tag string) error {
	return fmt.Errorf("%w: single tag %q in JSON", mllwriter.ErrUnsupported, tag)
}

// SingleTagAttr returns ErrUnsupported, like SingleTag.
func (w *Writer) SingleTagAttr(tag, name, value string) error {
	return w.SingleTag(tag)
}

// AddAttr writes a member with the raw value, e.g. AddAttr("Age", "35") or
// AddAttr("Name", `"Max"`). The name is encoded as a JSON string; the value
// is written verbatim.
func (w *Writer) AddAttr(name, value string) error {
	key, err := encode(name)
	if err != nil {
		return err
	}
	w.prepare()
	w.WriteString(key + ": " + value)
	return nil
}

// AddAttrs writes each pair of the property list as a member, in order.
func (w *Writer) AddAttrs(props *mllwriter.Property) error {
	for _, p := range props.Pairs() {
		if err := w.AddAttr(p.Name, p.Value); err != nil {
			return err
		}
	}
	return nil
}

// AddValue writes a member with a Go value encoded as JSON. Inside an
// array, an empty name writes a bare element.
func (w *Writer) AddValue(name string, v any) error {
	val, err := encode(v)
	if err != nil {
		return err
	}
	if name == "" && w.inArray() {
		w.prepare()
		w.WriteString(val)
		return nil
	}
	return w.AddAttr(name, val)
}

// AddString writes a string member.
func (w *Writer) AddString(name, v string) error {
	return w.AddValue(name, v)
}

// AddInt writes an integer member.
func (w *Writer) AddInt(name string, v int64) error {
	return w.AddValue(name, v)
}

// AddFloat writes a floating-point member.
func (w *Writer) AddFloat(name string, v float64) error {
	return w.AddValue(name, v)
}

// AddBool writes a boolean member.
func (w *Writer) AddBool(name string, v bool) error {
	return w.AddValue(name, v)
}

// AddNull writes a null member.
func (w *Writer) AddNull(name string) error {
	return w.AddValue(name, nil)
}

// Element writes a bare array element with the raw value.
func (w *Writer) Element(value string) error {
	w.prepare()
	w.WriteString(value)
	return nil
}

// AddComment writes a comment as a "_commentN" member with an incrementing
// counter, since JSON has no comment syntax.
func (w *Writer) AddComment(comment string) {
	w.commentN++
	_ = w.AddValue("_comment"+strconv.Itoa(w.commentN), comment)
}

// Reset restores the writer to its defaults, including the comment counter.
func (w *Writer) Reset() {
	w.Core.Reset()
	w.commentN = 0
}

func (w *Writer) inArray() bool {
	top, ok := w.PeekBlock()
	return ok && top == kindArray
}

func encode(v any) (string, error) {
	b, err := gojson.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding JSON value: %w", err)
	}
	return string(b), nil
}
