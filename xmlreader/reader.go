// Package xmlreader is a namespace-agnostic pull parser over XML byte
// streams. It wraps encoding/xml's token stream and strips namespace
// prefixes from element and attribute names, so callers never have to
// special-case the TransXChange namespace declaration (or its absence).
package xmlreader

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/transitkit/txc-gtfs/memory"
)

// EventKind identifies the kind of Event yielded by the Reader.
type EventKind int

const (
	StartElement EventKind = iota
	Text
	EndElement
)

// Attr is a namespace-stripped attribute.
type Attr struct {
	Name  string
	Value string
}

// Event is one step of the pull-parser's event stream.
type Event struct {
	Kind      EventKind
	LocalName string   // set for StartElement/EndElement
	Attrs     []Attr   // set for StartElement
	Text      string   // set for Text
}

// ParseError surfaces a malformed-XML failure with a byte offset, matching
// the TxcParseError contract described in the spec's error taxonomy.
type ParseError struct {
	ByteOffset int64
	Reason     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("xml parse error at byte %d: %s", e.ByteOffset, e.Reason)
}

// Reader is a pull parser yielding a flat, ordered event stream plus a
// live path stack for error reporting.
type Reader struct {
	dec  *xml.Decoder
	buf  *bufio.Reader
	path []string
	err  error
	done bool
}

// New wraps r in a namespace-agnostic pull parser. Malformed XML is not
// reported until the first failing call to Next; an empty source produces
// an empty event stream with no error, per the spec's defined behavior for
// empty/unrecognizable input. The input is read through a pooled buffered
// reader, since TXC documents can run to tens of megabytes.
func New(r io.Reader) *Reader {
	buf := memory.GetReader(r)
	dec := xml.NewDecoder(buf)
	dec.Strict = false
	return &Reader{dec: dec, buf: buf}
}

// Close returns the Reader's pooled buffer. It is safe to call Close
// multiple times or to omit it; skipping it only forgoes reuse.
func (r *Reader) Close() {
	if r.buf != nil {
		memory.PutReader(r.buf)
		r.buf = nil
	}
}

// Next returns the next event in the stream, or (Event{}, false) once the
// stream is exhausted. Call Err after Next returns false to distinguish a
// clean EOF from a parse failure.
func (r *Reader) Next() (Event, bool) {
	if r.done {
		return Event{}, false
	}
	for {
		tok, err := r.dec.Token()
		if err == io.EOF {
			r.done = true
			return Event{}, false
		}
		if err != nil {
			r.done = true
			r.err = &ParseError{ByteOffset: r.dec.InputOffset(), Reason: err.Error()}
			return Event{}, false
		}

		switch t := tok.(type) {
		case xml.StartElement:
			name := t.Name.Local
			r.path = append(r.path, name)
			attrs := make([]Attr, 0, len(t.Attr))
			for _, a := range t.Attr {
				attrs = append(attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			return Event{Kind: StartElement, LocalName: name, Attrs: attrs}, true
		case xml.EndElement:
			name := t.Name.Local
			if len(r.path) > 0 {
				r.path = r.path[:len(r.path)-1]
			}
			return Event{Kind: EndElement, LocalName: name}, true
		case xml.CharData:
			text := string(t)
			if isAllWhitespace(text) {
				continue
			}
			return Event{Kind: Text, Text: text}, true
		default:
			// Comments, processing instructions, directives: ignored.
			continue
		}
	}
}

// Err returns the parse error that terminated the stream, if any.
func (r *Reader) Err() error {
	return r.err
}

// Path returns the current element path as a slice from document root to
// the innermost open element, for error reporting.
func (r *Reader) Path() []string {
	out := make([]string, len(r.path))
	copy(out, r.path)
	return out
}

func isAllWhitespace(s string) bool {
	for _, c := range s {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return false
		}
	}
	return true
}
