package writer

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// header is the fixed PDF 1.7 prologue: the version comment followed by a
// binary marker comment whose bytes are all ≥0x80, so readers that sniff
// for binary content recognize this isn't a plain-text file.
var header = []byte("%PDF-1.7\n%\x93\x8c\x8b\x9e\n")

// Writer emits PDF objects to an underlying io.Writer, tracking the byte
// offset of every object it writes so WriteXrefAndTrailer can produce an
// accurate xref table. It works the same way whether the underlying writer
// is an in-memory bytes.Buffer or an *os.File (both document modes write to
// a file) — offsets are tracked by counting bytes written, not by seeking,
// so no sink needs random access.
type Writer struct {
	w      io.Writer
	offset int64
	xref   []xrefEntry
}

type xrefEntry struct {
	id     int
	offset int64
}

// New wraps w and immediately writes the PDF header.
func New(w io.Writer) (*Writer, error) {
	n, err := w.Write(header)
	if err != nil {
		return nil, fmt.Errorf("write pdf header: %w", err)
	}
	return &Writer{w: w, offset: int64(n)}, nil
}

func (wr *Writer) write(p []byte) error {
	n, err := wr.w.Write(p)
	wr.offset += int64(n)
	if err != nil {
		return fmt.Errorf("write pdf body: %w", err)
	}
	return nil
}

func (wr *Writer) writeString(s string) error {
	return wr.write([]byte(s))
}

// WriteObject appends "{id} 0 obj\n{value}\nendobj\n" and records the byte
// offset of the leading "{id}" for the xref table.
func (wr *Writer) WriteObject(id int, value Value) error {
	wr.xref = append(wr.xref, xrefEntry{id: id, offset: wr.offset})

	if err := wr.writeString(fmt.Sprintf("%d 0 obj\n", id)); err != nil {
		return err
	}

	var buf bytes.Buffer
	value.Serialize(&buf)
	if err := wr.write(buf.Bytes()); err != nil {
		return err
	}

	return wr.writeString("\nendobj\n")
}

// WriteXrefAndTrailer sorts recorded entries by object id, emits the xref
// table and trailer, and terminates the file. rootID is the Catalog's
// object id.
func (wr *Writer) WriteXrefAndTrailer(rootID int) error {
	xrefOffset := wr.offset

	sort.Slice(wr.xref, func(i, j int) bool { return wr.xref[i].id < wr.xref[j].id })

	var buf bytes.Buffer
	buf.WriteString("xref\n")
	fmt.Fprintf(&buf, "0 %d\n", len(wr.xref)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, e := range wr.xref {
		fmt.Fprintf(&buf, "%010d 00000 n \n", e.offset)
	}

	buf.WriteString("trailer\n")
	fmt.Fprintf(&buf, "<< /Size %d /Root %d 0 R >>\n", len(wr.xref)+1, rootID)
	buf.WriteString("startxref\n")
	fmt.Fprintf(&buf, "%d\n", xrefOffset)
	buf.WriteString("%%EOF\n")

	return wr.write(buf.Bytes())
}

// Offset returns the number of bytes written so far, used by tests asserting
// object-offset invariants.
func (wr *Writer) Offset() int64 { return wr.offset }
