// Package assembler substitutes form values into a prompt template.
//
// A template is plain text containing paired markers such as
// <PROMPT>...</PROMPT>. Parse splits the text into an ordered list of
// segments, each either literal text or a marker slot; Render rebuilds the
// text in one pass, replacing the inner content of every slot it has a value
// for. Values are written verbatim and never scanned for markers, so user
// text that happens to contain marker syntax is inert.
package assembler

import (
	"strings"
)

// Segment is one piece of a parsed template. Exactly one of Literal or
// Marker is meaningful: when Marker is empty the segment is literal text.
type Segment struct {
	Literal string
	Marker  string
	// Raw is the marker's original text, open tag through close tag.
	Raw string
}

// Template is a parsed template. It is immutable and safe for concurrent use.
type Template struct {
	source   string
	segments []Segment
}

// Parse splits src into segments using the standard marker set.
func Parse(src string) *Template {
	return ParseMarkers(src, Markers())
}

// ParseMarkers splits src into segments recognising only the given marker
// names.
//
// Scanning runs left to right. At each step the earliest opening tag of any
// known name starts a slot, which ends at the first matching closing tag
// after it; everything in between is the slot's original content. An opening
// tag with no closing tag after it is kept as literal text.
func ParseMarkers(src string, names []string) *Template {
	t := &Template{source: src}
	var lit strings.Builder
	rest := src
	for rest != "" {
		name, start, end := nextMarker(rest, names)
		if name == "" {
			lit.WriteString(rest)
			break
		}
		lit.WriteString(rest[:start])
		if lit.Len() > 0 {
			t.segments = append(t.segments, Segment{Literal: lit.String()})
			lit.Reset()
		}
		t.segments = append(t.segments, Segment{Marker: name, Raw: rest[start:end]})
		rest = rest[end:]
	}
	if lit.Len() > 0 {
		t.segments = append(t.segments, Segment{Literal: lit.String()})
	}
	return t
}

// nextMarker finds the leftmost complete marker pair in s. It returns the
// marker name and the byte span of the whole pair, or "" if none is found.
func nextMarker(s string, names []string) (name string, start, end int) {
	start = -1
	for _, n := range names {
		open, cls := openTag(n), closeTag(n)
		i := strings.Index(s, open)
		if i < 0 || (start >= 0 && i >= start) {
			continue
		}
		// No close after the first open means none after any later open either.
		j := strings.Index(s[i+len(open):], cls)
		if j < 0 {
			continue
		}
		name, start, end = n, i, i+len(open)+j+len(cls)
	}
	if start < 0 {
		return "", 0, 0
	}
	return name, start, end
}

func openTag(name string) string  { return "<" + name + ">" }
func closeTag(name string) string { return "</" + name + ">" }

// Source returns the unparsed template text.
func (t *Template) Source() string { return t.source }

// Segments returns a copy of the parsed segments.
func (t *Template) Segments() []Segment {
	out := make([]Segment, len(t.segments))
	copy(out, t.segments)
	return out
}

// Markers returns the marker names found in the template, in template order.
// A name that occurs more than once is listed once per occurrence.
func (t *Template) Markers() []string {
	var out []string
	for _, seg := range t.segments {
		if seg.Marker != "" {
			out = append(out, seg.Marker)
		}
	}
	return out
}

// Has reports whether the template contains at least one complete marker
// with the given name.
func (t *Template) Has(name string) bool {
	for _, seg := range t.segments {
		if seg.Marker == name {
			return true
		}
	}
	return false
}

// Render rebuilds the template, replacing the inner content of each marker
// that has an entry in slots. The result for a slot is
// "<NAME>\n" + content + "\n</NAME>". Markers without an entry are copied
// through unchanged.
func (t *Template) Render(slots map[string]string) string {
	var b strings.Builder
	b.Grow(len(t.source))
	for _, seg := range t.segments {
		if seg.Marker == "" {
			b.WriteString(seg.Literal)
			continue
		}
		content, ok := slots[seg.Marker]
		if !ok {
			b.WriteString(seg.Raw)
			continue
		}
		b.WriteString(openTag(seg.Marker))
		b.WriteByte('\n')
		b.WriteString(content)
		b.WriteByte('\n')
		b.WriteString(closeTag(seg.Marker))
	}
	return b.String()
}
