// Package writer implements the byte-level PDF object model: the typed
// PdfValue sum type, indirect-object framing, and the xref/trailer epilogue.
package writer

import (
	"bytes"
	"strconv"
	"strings"
)

// Value is a PDF 1.7 object value. Exactly one of the typed fields is
// meaningful for a given Kind; callers build values with the constructor
// helpers (Null, Int, Name, Dict, Stream, ...) rather than populating the
// struct directly.
type Value struct {
	Kind Kind

	Bool      bool
	Int       int64
	Real      float64
	Name      string
	Str       string
	Array     []Value
	Dict      []DictEntry
	StreamVal []byte
	Ref       int
}

// Kind discriminates the PdfValue sum type.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindReal
	KindName
	KindString
	KindArray
	KindDict
	KindStream
	KindReference
)

// DictEntry is one key/value pair of a Dict or Stream dictionary. A slice of
// entries (not a map) preserves insertion order, which PDF readers don't
// require but byte-exact output does.
type DictEntry struct {
	Key string
	Val Value
}

func Null() Value             { return Value{Kind: KindNull} }
func Bool(b bool) Value       { return Value{Kind: KindBool, Bool: b} }
func Int(i int64) Value       { return Value{Kind: KindInt, Int: i} }
func Real(r float64) Value    { return Value{Kind: KindReal, Real: r} }
func Name(n string) Value     { return Value{Kind: KindName, Name: n} }
func String(s string) Value   { return Value{Kind: KindString, Str: s} }
func Array(v ...Value) Value  { return Value{Kind: KindArray, Array: v} }
func Reference(id int) Value  { return Value{Kind: KindReference, Ref: id} }

// Dict builds a dictionary value from an ordered entry list.
func Dict(entries ...DictEntry) Value {
	return Value{Kind: KindDict, Dict: entries}
}

// Entry is a convenience constructor for a DictEntry.
func Entry(key string, val Value) DictEntry {
	return DictEntry{Key: key, Val: val}
}

// Stream builds a stream object. length is not passed explicitly — Serialize
// computes /Length from len(body) so callers can't desync it from the body.
func Stream(dict []DictEntry, body []byte) Value {
	return Value{Kind: KindStream, Dict: dict, StreamVal: body}
}

// Serialize writes the object's PDF text representation (no surrounding
// "id 0 obj"/"endobj" framing — that's added by Writer.WriteObject).
func (v Value) Serialize(buf *bytes.Buffer) {
	switch v.Kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.Bool {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.Int, 10))
	case KindReal:
		buf.WriteString(formatReal(v.Real))
	case KindName:
		buf.WriteByte('/')
		buf.WriteString(v.Name)
	case KindString:
		buf.WriteByte('(')
		buf.WriteString(EscapeString(v.Str))
		buf.WriteByte(')')
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.Array {
			if i > 0 {
				buf.WriteByte(' ')
			}
			item.Serialize(buf)
		}
		buf.WriteByte(']')
	case KindDict:
		writeDict(buf, v.Dict)
	case KindStream:
		writeDict(buf, append(append([]DictEntry{}, v.Dict...), Entry("Length", Int(int64(len(v.StreamVal))))))
		buf.WriteString("\nstream\n")
		buf.Write(v.StreamVal)
		buf.WriteString("\nendstream")
	case KindReference:
		buf.WriteString(strconv.Itoa(v.Ref))
		buf.WriteString(" 0 R")
	}
}

func writeDict(buf *bytes.Buffer, entries []DictEntry) {
	buf.WriteString("<<")
	for _, e := range entries {
		buf.WriteString(" /")
		buf.WriteString(e.Key)
		buf.WriteByte(' ')
		e.Val.Serialize(buf)
	}
	buf.WriteString(" >>")
}

// formatReal renders a float in plain decimal, the shortest form that
// round-trips. The 'f' format never produces an exponent, which PDF real
// syntax does not allow.
func formatReal(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// EscapeString escapes the three literal-string metacharacters: backslash
// and both parentheses, every occurrence, balanced or not.
func EscapeString(s string) string {
	if !strings.ContainsAny(s, "\\()") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		switch r {
		case '\\', '(', ')':
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
