// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package textual

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// DefaultCapacity is the initial capacity, in runes, of a Builder created
// without WithCapacity.
const DefaultCapacity = 10

// Builder is a mutable rune sequence that tracks an indentation level.
//
// Every line started through the Append family is prefixed with the current
// indentation, so code-like text can be produced without bookkeeping:
//
//	b := textual.New()
//	b.Append("func main() {").NewLine().IncrementIndent()
//	b.Append("println(\"hi\")").NewLine().DecrementIndent()
//	b.Append("}")
//	// "func main() {\n\tprintln(\"hi\")\n}"
//
// Insert and Delete operate on raw positions and never inject indentation.
//
// The zero value is an empty Builder ready to use.
//
// A Builder has a single owner: it must not be mutated concurrently, and a
// slice obtained from Runes must not be retained across mutations.
type Builder struct {
	buf    []rune
	n      int
	indent indentStack
	// pending holds the bytes of a rune split across Write calls.
	pending []byte
}

// New returns an empty Builder with indentation depth 0.
func New(opts ...Option) *Builder {
	b := &Builder{
		buf:    make([]rune, DefaultCapacity),
		indent: newIndentStack(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// NewString returns a Builder holding s, with indentation depth 0.
func NewString(s UTF8String, opts ...Option) *Builder {
	b := New(opts...)
	rs := []rune(s)
	b.grow(len(rs))
	b.n = copy(b.buf, rs)
	return b
}

// Append appends s, indenting every line it starts.
func (b *Builder) Append(s UTF8String) *Builder {
	b.flushPending()
	b.appendRunes([]rune(s))
	return b
}

// AppendRunes appends rs, indenting every line it starts.
func (b *Builder) AppendRunes(rs []rune) *Builder {
	b.flushPending()
	b.appendRunes(rs)
	return b
}

// AppendRune appends a single rune.
//
// The current indentation is inserted first when r starts a new line, unless r
// is itself a line feed. Prefer NewLine to end a line.
func (b *Builder) AppendRune(r rune) *Builder {
	b.flushPending()
	if b.indent.len() > 0 && b.IsNewLine() && r != '\n' {
		b.insert(b.n, b.indent.runes)
	}
	return b.append0(r)
}

// AppendSequence appends the content of seq. A nil sequence is ignored.
//
// Sequences that also implement RuneSource are copied directly.
func (b *Builder) AppendSequence(seq Sequence) *Builder {
	if seq == nil {
		return b
	}
	b.flushPending()
	if rs, ok := runesOf(seq); ok {
		b.appendRunes(rs)
	}
	return b
}

// AppendValue appends the textual form of v. A nil value is ignored.
//
// RuneSource, Sequence, string and []rune values are appended as is,
// fmt.Stringer values through String, anything else through fmt.Sprint.
func (b *Builder) AppendValue(v any) *Builder {
	b.flushPending()
	if rs, ok := runesOf(v); ok {
		b.appendRunes(rs)
	}
	return b
}

// Write implements io.Writer. It never fails.
//
// A rune split across consecutive writes is decoded once complete: its
// leading bytes are held back until the next write. Any other append writes
// held bytes as they are.
func (b *Builder) Write(p []byte) (int, error) {
	data := p
	if len(b.pending) > 0 {
		data = append(b.pending, p...)
		b.pending = nil
	}
	cut := incompleteTail(data)
	b.appendRunes([]rune(string(data[:cut])))
	if cut < len(data) {
		b.pending = append([]byte(nil), data[cut:]...)
	}
	return len(p), nil
}

// incompleteTail returns the offset of a truncated UTF-8 sequence ending
// data, or len(data) when data ends on a rune boundary.
func incompleteTail(data []byte) int {
	for i := len(data) - 1; i >= 0 && i > len(data)-utf8.UTFMax; i-- {
		if utf8.RuneStart(data[i]) {
			if utf8.FullRune(data[i:]) {
				return len(data)
			}
			return i
		}
	}
	return len(data)
}

func (b *Builder) flushPending() {
	if len(b.pending) == 0 {
		return
	}
	rs := []rune(string(b.pending))
	b.pending = nil
	b.appendRunes(rs)
}

// WriteString implements io.StringWriter. It never fails.
func (b *Builder) WriteString(s string) (int, error) {
	b.flushPending()
	b.appendRunes([]rune(s))
	return len(s), nil
}

// WriteRune appends r like AppendRune and reports its UTF-8 size.
func (b *Builder) WriteRune(r rune) (int, error) {
	b.AppendRune(r)
	return len(string(r)), nil
}

func (b *Builder) append0(r rune) *Builder {
	b.grow(1)
	b.buf[b.n] = r
	b.n++
	return b
}

func (b *Builder) appendRunes(rs []rune) {
	count := len(rs)
	if count == 0 {
		return
	}
	indent := b.indent.runes
	if len(indent) > 0 && b.IsNewLine() && !startsWithLineBreak(rs) {
		b.insert(b.n, indent)
	}
	b.grow(count)
	offset := b.n
	copy(b.buf[b.n:], rs)
	b.n += count
	if len(indent) == 0 {
		return
	}
	// A trailing line feed opens a line that has no content yet.
	for i := 0; i < count-1; i++ {
		if rs[i] == '\n' {
			b.insert(i+1+offset, indent)
			offset += len(indent)
		}
	}
}

func startsWithLineBreak(rs []rune) bool {
	switch {
	case rs[0] == '\n':
		return true
	case rs[0] == '\r' && len(rs) > 1 && rs[1] == '\n':
		return true
	default:
		return false
	}
}

// IsNewLine reports whether the builder is empty or ends with a line feed.
func (b *Builder) IsNewLine() bool {
	return b.n == 0 || b.buf[b.n-1] == '\n'
}

// Insert inserts r at index. No indentation is injected.
func (b *Builder) Insert(index int, r rune) error {
	if index < 0 || index > b.n {
		return outOfRange(index)
	}
	b.insert(index, []rune{r})
	return nil
}

// InsertRunes inserts rs at index. No indentation is injected.
func (b *Builder) InsertRunes(index int, rs []rune) error {
	if index < 0 || index > b.n {
		return outOfRange(index)
	}
	// rs may be a view on b's own storage.
	b.insert(index, slices.Clone(rs))
	return nil
}

// InsertString inserts s at index. No indentation is injected.
func (b *Builder) InsertString(index int, s UTF8String) error {
	if index < 0 || index > b.n {
		return outOfRange(index)
	}
	b.insert(index, []rune(s))
	return nil
}

// insert expects 0 <= index <= b.n and rs not aliasing b.buf[index:].
func (b *Builder) insert(index int, rs []rune) {
	count := len(rs)
	if count == 0 {
		return
	}
	b.grow(count)
	copy(b.buf[index+count:], b.buf[index:b.n])
	copy(b.buf[index:], rs)
	b.n += count
}

// Delete removes count runes starting at start. When the run reaches the end
// of the builder, the builder is truncated at start.
func (b *Builder) Delete(start, count int) error {
	if start < 0 || start >= b.n {
		return outOfRange(start)
	}
	if count < 0 {
		return fmt.Errorf("%w: negative count %d", ErrOutOfRange, count)
	}
	if count >= b.n-start {
		b.n = start
		return nil
	}
	copy(b.buf[start:], b.buf[start+count:b.n])
	b.n -= count
	return nil
}

// DeleteAt removes the rune at index.
func (b *Builder) DeleteAt(index int) error {
	if index < 0 || index >= b.n {
		return outOfRange(index)
	}
	copy(b.buf[index:], b.buf[index+1:b.n])
	b.n--
	return nil
}

// DeleteFirst removes the first rune, whatever it is. It does nothing on an
// empty builder.
func (b *Builder) DeleteFirst() *Builder {
	if b.n > 0 {
		copy(b.buf, b.buf[1:b.n])
		b.n--
	}
	return b
}

// DeleteLast removes the last rune, whatever it is. It does nothing on an
// empty builder.
func (b *Builder) DeleteLast() *Builder {
	if b.n > 0 {
		b.n--
	}
	return b
}

// IncrementIndent adds one indent unit to the indentation of the lines
// started from now on.
func (b *Builder) IncrementIndent() *Builder {
	b.indent.push()
	return b
}

// DecrementIndent removes one indent unit. It does nothing at depth 0.
func (b *Builder) DecrementIndent() *Builder {
	b.indent.pop()
	return b
}

// IndentSize returns the length, in runes, of the current indentation.
func (b *Builder) IndentSize() int {
	return b.indent.len()
}

// IndentDepth returns the number of indent units currently pushed.
func (b *Builder) IndentDepth() int {
	return b.indent.depth()
}

// NewLine appends a line feed. The line feed itself is never indented.
func (b *Builder) NewLine() *Builder {
	b.flushPending()
	return b.append0('\n')
}

// WhiteLine makes the builder end with a blank line, appending at most two
// line feeds. A builder already ending with "\n\n" or "\n\r\n" is left
// unchanged, and so is an empty builder.
func (b *Builder) WhiteLine() *Builder {
	b.flushPending()
	n := b.n
	switch {
	case n == 0:
	case b.buf[n-1] != '\n':
		b.append0('\n').append0('\n')
	case n >= 2 && b.buf[n-2] == '\n':
	case n >= 3 && b.buf[n-2] == '\r' && b.buf[n-3] == '\n':
	default:
		b.append0('\n')
	}
	return b
}

// Len returns the number of runes in the builder.
func (b *Builder) Len() int {
	return b.n
}

// Cap returns the number of runes the builder can hold before growing.
func (b *Builder) Cap() int {
	return len(b.buf)
}

// RuneAt returns the rune at index.
func (b *Builder) RuneAt(index int) (rune, error) {
	if index < 0 || index >= b.n {
		return 0, outOfRange(index)
	}
	return b.buf[index], nil
}

// SubSequence returns a copy of the runes in [start, end) as a new Builder.
//
// The copy keeps the indent unit of b but starts at indentation depth 0.
func (b *Builder) SubSequence(start, end int) (*Builder, error) {
	if start < 0 || end > b.n || start > end {
		return nil, fmt.Errorf("%w: start %d, end %d, length %d", ErrOutOfRange, start, end, b.n)
	}
	sub := &Builder{
		buf:    make([]rune, end-start),
		indent: newIndentStack(b.indent.unit),
	}
	sub.n = copy(sub.buf, b.buf[start:end])
	return sub, nil
}

// Runes returns the logical content. The slice shares b's storage: it is
// only valid until the next mutation and must not be modified.
func (b *Builder) Runes() []rune {
	return b.buf[:b.n:b.n]
}

// String returns the content as a UTF‑8 string.
func (b *Builder) String() UTF8String {
	return string(b.buf[:b.n])
}

// grow ensures room for count more runes, growing by 75% at least.
func (b *Builder) grow(count int) {
	need := b.n + count
	c := len(b.buf)
	if need <= c {
		return
	}
	next := c + c*3/4 + 1
	if next < need {
		next = need
	}
	buf := make([]rune, next)
	copy(buf, b.buf[:b.n])
	b.buf = buf
}
