package mllwriter

import (
	"fmt"
	"io"
)

// Writer is the shared contract implemented by the HTML, XML, and JSON
// writers. All document formats handled here share a structural pattern:
// blocks that open and close, properties attached to the last written tag,
// and an indentation level that tracks nesting. Even though JSON is not a
// markup language, it fits the same pattern, which is why the writers are
// "markup-language-like".
//
// Writers also implement io.StringWriter so arbitrary content can be pushed
// between the structural operations.
type Writer interface {
	// OpenTag opens a new block, e.g. the "div" tag in HTML or a "{" block
	// in JSON.
	OpenTag(tag string) error

	// OpenTagAttr combines OpenTag and AddAttr.
	OpenTagAttr(tag, name, value string) error

	// CloseTag closes the most recently opened block, recalling its tag name
	// from the block stack.
	CloseTag() error

	// SingleTag writes a single-tag element, e.g. "img" in HTML. Writers
	// without single-tag elements return ErrUnsupported.
	SingleTag(tag string) error

	// SingleTagAttr combines SingleTag and AddAttr.
	SingleTagAttr(tag, name, value string) error

	// AddAttr attaches a single property-value pair to the most recently
	// written tag, retroactively.
	AddAttr(name, value string) error

	// AddAttrs attaches an ordered property list to the most recently
	// written tag.
	AddAttrs(props *Property) error

	// AddComment writes a comment at the current position.
	AddComment(comment string)

	// LineFeed writes n line feeds followed by the current indent.
	LineFeed(n int)

	// LineFeedInc increments the indent by one step, then writes a line feed.
	LineFeedInc()

	// LineFeedDec decrements the indent by one step, then writes a line feed.
	LineFeedDec()

	// IncIndent increases the current indent by one step.
	IncIndent()

	// DecIndent decreases the current indent by one step, clamping at zero.
	DecIndent()

	// SetIndent sets the indent to an absolute number of steps.
	SetIndent(steps int)

	// SetIndentSize sets the number of whitespaces per indent step. It
	// returns ErrEditingStarted once content has been written.
	SetIndentSize(n int) error

	// Reset restores the writer to its defaults and empties the content.
	Reset()

	// Depth reports the number of currently open blocks.
	Depth() int

	// Len reports the length of the accumulated content in bytes.
	Len() int

	// Bytes returns a copy of the accumulated content.
	Bytes() []byte

	io.StringWriter
	io.WriterTo
	fmt.Stringer
}

// Pair is a single name/value entry in a Property list.
type Pair struct {
	Name  string
	Value string
}

// Property is an ordered list of name/value pairs, e.g. class="superhero"
// and style="width: auto". It can be handed to a writer, which pushes the
// pairs onto the content in the format's own notation.
type Property struct {
	pairs []Pair
}

// NewProperty returns a Property holding one initial pair.
func NewProperty(name, value string) *Property {
	p := &Property{}
	return p.Add(name, value)
}

// Add appends another pair and returns the Property for chaining.
func (p *Property) Add(name, value string) *Property {
	p.pairs = append(p.pairs, Pair{Name: name, Value: value})
	return p
}

// Len reports the number of pairs.
func (p *Property) Len() int {
	return len(p.pairs)
}

// Pairs returns the pairs in insertion order.
func (p *Property) Pairs() []Pair {
	out := make([]Pair, len(p.pairs))
	copy(out, p.pairs)
	return out
}

// Must panics if err is non-nil. It is intended for use in scripts or tests
// where error handling would be cumbersome.
//
// Example:
//
//	mllwriter.Must(wr.OpenTag("div"))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// MustWriter wraps a call to a constructor returning (Writer, error) and
// panics if the error is non-nil.
//
// Example:
//
//	wr := mllwriter.MustWriter(format.NewWriter(format.HTML))
func MustWriter[T any](w T, err error) T {
	if err != nil {
		panic(err)
	}
	return w
}
