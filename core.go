package mllwriter

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Core holds the state every concrete writer has in common:
//   - the content buffer under edit
//   - the indent step size, as a number of whitespaces per step
//   - the current indent, materialized for quick insertion
//   - a stack of opened, unclosed blocks
//
// The concrete writers embed Core and add the format-specific tag and
// property notation on top.
type Core struct {
	buf         bytes.Buffer
	indentSize  int
	defaultSize int
	indent      string
	blocks      []string
}

// NewCore returns a Core with the given indent step size, which also becomes
// the size restored by Reset.
func NewCore(indentSize int) Core {
	return Core{indentSize: indentSize, defaultSize: indentSize}
}

// WriteString appends s to the content. It implements io.StringWriter and
// never returns an error.
func (c *Core) WriteString(s string) (int, error) {
	return c.buf.WriteString(s)
}

// HasSuffix reports whether the content currently ends with s.
func (c *Core) HasSuffix(s string) bool {
	return bytes.HasSuffix(c.buf.Bytes(), []byte(s))
}

// TrimSuffix removes s from the end of the content if present, reporting
// whether it was removed. The markup writers use it to reopen the trailing
// ">" of the last tag when properties are attached retroactively.
func (c *Core) TrimSuffix(s string) bool {
	if !c.HasSuffix(s) {
		return false
	}
	c.buf.Truncate(c.buf.Len() - len(s))
	return true
}

// PushBlock records an opened block.
func (c *Core) PushBlock(tag string) {
	c.blocks = append(c.blocks, tag)
}

// PopBlock removes and returns the most recently opened block. It returns
// ErrNoOpenBlock when the stack is empty.
func (c *Core) PopBlock() (string, error) {
	if len(c.blocks) == 0 {
		return "", ErrNoOpenBlock
	}
	tag := c.blocks[len(c.blocks)-1]
	c.blocks = c.blocks[:len(c.blocks)-1]
	return tag, nil
}

// PeekBlock returns the most recently opened block without removing it.
func (c *Core) PeekBlock() (string, bool) {
	if len(c.blocks) == 0 {
		return "", false
	}
	return c.blocks[len(c.blocks)-1], true
}

// Depth reports the number of open blocks.
func (c *Core) Depth() int {
	return len(c.blocks)
}

// LineFeed writes n line feeds followed by the current indent.
func (c *Core) LineFeed(n int) {
	for i := 0; i < n; i++ {
		c.buf.WriteByte('\n')
	}
	c.buf.WriteString(c.indent)
}

// LineFeedInc increments the indent by one step, then writes a line feed.
func (c *Core) LineFeedInc() {
	c.IncIndent()
	c.LineFeed(1)
}

// LineFeedDec decrements the indent by one step, then writes a line feed.
func (c *Core) LineFeedDec() {
	c.DecIndent()
	c.LineFeed(1)
}

// IncIndent increases the current indent by one step.
func (c *Core) IncIndent() {
	c.indent += strings.Repeat(" ", c.indentSize)
}

// DecIndent decreases the current indent by one step, clamping at zero.
func (c *Core) DecIndent() {
	if len(c.indent) < c.indentSize {
		c.indent = ""
		return
	}
	c.indent = c.indent[:len(c.indent)-c.indentSize]
}

// SetIndent sets the indent to an absolute number of steps. Negative values
// are treated as zero.
func (c *Core) SetIndent(steps int) {
	if steps < 0 {
		steps = 0
	}
	c.indent = strings.Repeat(" ", steps*c.indentSize)
}

// SetIndentSize sets the number of whitespaces per indent step. It returns
// ErrEditingStarted once content has been written, because a size change
// mid-document would desynchronize already-written indents.
func (c *Core) SetIndentSize(n int) error {
	if n < 0 {
		return fmt.Errorf("mllwriter: negative indent size %d", n)
	}
	if c.buf.Len() > 0 {
		return ErrEditingStarted
	}
	c.indentSize = n
	return nil
}

// IndentSize reports the current indent step size.
func (c *Core) IndentSize() int {
	return c.indentSize
}

// CurrentIndent returns the materialized indent string.
func (c *Core) CurrentIndent() string {
	return c.indent
}

// Reset restores the Core to its construction-time defaults and empties the
// content.
func (c *Core) Reset() {
	c.buf.Reset()
	c.indentSize = c.defaultSize
	c.indent = ""
	c.blocks = c.blocks[:0]
}

// String returns the accumulated content.
func (c *Core) String() string {
	return c.buf.String()
}

// Len reports the length of the accumulated content in bytes.
func (c *Core) Len() int {
	return c.buf.Len()
}

// Bytes returns a copy of the accumulated content.
func (c *Core) Bytes() []byte {
	out := make([]byte, c.buf.Len())
	copy(out, c.buf.Bytes())
	return out
}

// WriteTo writes the accumulated content to w without draining the buffer,
// so a writer can be rendered to several destinations.
func (c *Core) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.buf.Bytes())
	return int64(n), err
}
