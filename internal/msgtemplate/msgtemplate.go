// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package msgtemplate parses and renders message templates of the form
//
//	"Completed operation {Id}: {Description} in {Elapsed}"
//
// A hole is a name in braces, optionally prefixed by '@' or '$' and
// optionally followed by ",alignment" and/or ":format". Doubled braces
// ("{{" and "}}") are literal braces. Text that looks like a hole but is not
// well formed is kept as literal text. A positive alignment pads the
// rendered value on the left to that width, a negative one pads it on the
// right.
//
// Holes bind to values by position: the first distinct hole name takes the
// first value, the second the next, and so on. A name that appears again
// reuses the value it was first bound to.
package msgtemplate

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// A Hole is a named placeholder in a template.
type Hole struct {
	Name   string
	Format string
	// Align is the minimum width of the rendered value. Negative values
	// left-align it.
	Align int
	// Capture is '@', '$' or 0.
	Capture byte
}

// A Property is a hole name paired with the value bound to it.
type Property struct {
	Name  string
	Value any
}

type token struct {
	text string
	hole int // index into Template.holes, or -1 for text
}

// A Template is a parsed message template. It is immutable and safe for
// concurrent use.
type Template struct {
	text   string
	tokens []token
	holes  []Hole
	names  []string // distinct names, in binding order
	slot   []int    // slot[i] is the value index bound to holes[i]
}

// Parse parses text. Parsing never fails; malformed holes are literal text.
func Parse(text string) *Template {
	t := &Template{text: text}
	index := map[string]int{}
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			t.tokens = append(t.tokens, token{text: lit.String(), hole: -1})
			lit.Reset()
		}
	}
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == '{' && i+1 < len(text) && text[i+1] == '{':
			lit.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(text) && text[i+1] == '}':
			lit.WriteByte('}')
			i += 2
		case c == '{':
			end := strings.IndexByte(text[i+1:], '}')
			if end < 0 {
				lit.WriteString(text[i:])
				i = len(text)
				continue
			}
			raw := text[i+1 : i+1+end]
			h, ok := parseHole(raw)
			if !ok {
				lit.WriteString(text[i : i+2+end])
				i += 2 + end
				continue
			}
			flush()
			n, seen := index[h.Name]
			if !seen {
				n = len(t.names)
				index[h.Name] = n
				t.names = append(t.names, h.Name)
			}
			t.tokens = append(t.tokens, token{hole: len(t.holes)})
			t.holes = append(t.holes, h)
			t.slot = append(t.slot, n)
			i += 2 + end
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()
	return t
}

func parseHole(raw string) (Hole, bool) {
	var h Hole
	if raw == "" {
		return h, false
	}
	if raw[0] == '@' || raw[0] == '$' {
		h.Capture = raw[0]
		raw = raw[1:]
	}
	if i := strings.IndexByte(raw, ':'); i >= 0 {
		h.Format = raw[i+1:]
		raw = raw[:i]
	}
	if i := strings.IndexByte(raw, ','); i >= 0 {
		n, err := strconv.Atoi(raw[i+1:])
		if err != nil {
			return h, false
		}
		h.Align = n
		raw = raw[:i]
	}
	if raw == "" {
		return h, false
	}
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '_' && !('a' <= c && c <= 'z') && !('A' <= c && c <= 'Z') && !('0' <= c && c <= '9') {
			return h, false
		}
	}
	h.Name = raw
	return h, true
}

// Text returns the template source.
func (t *Template) Text() string { return t.text }

// Holes returns the holes in order of appearance.
func (t *Template) Holes() []Hole { return t.holes }

// Names returns the distinct hole names in binding order.
func (t *Template) Names() []string { return t.names }

// Properties pairs values with hole names. Values beyond the bound names are
// returned as Extra0, Extra1, and so on. Names without a value are omitted.
func (t *Template) Properties(values []any) []Property {
	props := make([]Property, 0, len(values))
	for i, v := range values {
		name := "Extra" + strconv.Itoa(i-len(t.names))
		if i < len(t.names) {
			name = t.names[i]
		}
		props = append(props, Property{Name: name, Value: v})
	}
	return props
}

// Render renders the message with values substituted for holes. A hole
// without a value is rendered as its source text.
func (t *Template) Render(values []any) string {
	var b strings.Builder
	for _, tok := range t.tokens {
		if tok.hole < 0 {
			b.WriteString(tok.text)
			continue
		}
		h := t.holes[tok.hole]
		n := t.slot[tok.hole]
		if n >= len(values) {
			b.WriteByte('{')
			if h.Capture != 0 {
				b.WriteByte(h.Capture)
			}
			b.WriteString(h.Name)
			b.WriteByte('}')
			continue
		}
		writeValue(&b, h, values[n])
	}
	return b.String()
}

func writeValue(b *strings.Builder, h Hole, v any) {
	if h.Align == 0 {
		formatValue(b, h, v)
		return
	}
	var s strings.Builder
	formatValue(&s, h, v)
	fmt.Fprintf(b, "%*s", h.Align, s.String())
}

func formatValue(b *strings.Builder, h Hole, v any) {
	if h.Format != "" && strings.ContainsRune(h.Format, '%') {
		fmt.Fprintf(b, h.Format, v)
		return
	}
	switch v := v.(type) {
	case string:
		if h.Format == "l" {
			b.WriteString(v)
		} else {
			b.WriteString(strconv.Quote(v))
		}
	case fmt.Stringer:
		b.WriteString(v.String())
	default:
		fmt.Fprint(b, v)
	}
}

var cache sync.Map // string -> *Template

// Lookup returns the parsed form of text, parsing it at most once.
func Lookup(text string) *Template {
	if t, ok := cache.Load(text); ok {
		return t.(*Template)
	}
	t, _ := cache.LoadOrStore(text, Parse(text))
	return t.(*Template)
}
