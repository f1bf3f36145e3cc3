package writer

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderPrologue(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(&buf)
	require.NoError(t, err)

	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-1.7\n")))

	// second line: a binary marker comment with four bytes >= 0x80
	rest := out[len("%PDF-1.7\n"):]
	require.Equal(t, byte('%'), rest[0])
	for i := 1; i <= 4; i++ {
		assert.GreaterOrEqual(t, rest[i], byte(0x80), "marker byte %d", i)
	}
}

func TestWriteObjectFraming(t *testing.T) {
	var buf bytes.Buffer
	w, err := New(&buf)
	require.NoError(t, err)

	require.NoError(t, w.WriteObject(1, Dict(Entry("Type", Name("Catalog")))))
	assert.Contains(t, buf.String(), "1 0 obj\n<< /Type /Catalog >>\nendobj\n")
}

func TestXrefOffsetsPointAtObjects(t *testing.T) {
	var buf bytes.Buffer
	w, err := New(&buf)
	require.NoError(t, err)

	// write out of id order to exercise the sort
	require.NoError(t, w.WriteObject(2, Int(20)))
	require.NoError(t, w.WriteObject(1, Int(10)))
	require.NoError(t, w.WriteObject(3, Int(30)))
	require.NoError(t, w.WriteXrefAndTrailer(1))

	out := buf.Bytes()
	offsets := parseXref(t, out)
	require.Len(t, offsets, 3)
	for id := 1; id <= 3; id++ {
		prefix := fmt.Sprintf("%d 0 obj", id)
		at := out[offsets[id-1]:]
		assert.True(t, bytes.HasPrefix(at, []byte(prefix)),
			"offset for object %d points at %q", id, string(at[:12]))
	}
}

func TestXrefEntryZeroAndTrailer(t *testing.T) {
	var buf bytes.Buffer
	w, err := New(&buf)
	require.NoError(t, err)
	require.NoError(t, w.WriteObject(1, Null()))
	require.NoError(t, w.WriteXrefAndTrailer(1))

	out := buf.String()
	assert.Contains(t, out, "xref\n0 2\n0000000000 65535 f \n")
	assert.Contains(t, out, "trailer\n<< /Size 2 /Root 1 0 R >>\n")
	assert.True(t, strings.HasSuffix(out, "%%EOF\n"))

	// the byte preceding "startxref" is a newline
	i := strings.Index(out, "startxref")
	require.Greater(t, i, 0)
	assert.Equal(t, byte('\n'), out[i-1])

	// startxref holds the xref section's byte position
	xrefAt := strings.Index(out, "xref\n")
	var recorded int
	_, err = fmt.Sscanf(out[i:], "startxref\n%d\n", &recorded)
	require.NoError(t, err)
	assert.Equal(t, xrefAt, recorded)
}

func TestOffsetTracksBytesWritten(t *testing.T) {
	var buf bytes.Buffer
	w, err := New(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), w.Offset())

	require.NoError(t, w.WriteObject(1, Int(7)))
	assert.Equal(t, int64(buf.Len()), w.Offset())
}

var xrefEntryRe = regexp.MustCompile(`(?m)^(\d{10}) 00000 n $`)

// parseXref extracts the n-entry offsets from the xref section, in order.
func parseXref(t *testing.T, out []byte) []int {
	t.Helper()
	matches := xrefEntryRe.FindAllStringSubmatch(string(out), -1)
	offsets := make([]int, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		offsets = append(offsets, v)
	}
	return offsets
}
