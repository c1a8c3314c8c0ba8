package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBytes_PlainText(t *testing.T) {
	text, err := ParseBytes("contract.txt", []byte("Clause one. Clause two."))
	require.NoError(t, err)
	assert.Equal(t, "Clause one. Clause two.", text)
}

func TestParseBytes_UnknownExtensionTreatedAsText(t *testing.T) {
	text, err := ParseBytes("notes.contract", []byte("some text"))
	require.NoError(t, err)
	assert.Equal(t, "some text", text)
}

func TestParseBytes_InvalidUTF8Dropped(t *testing.T) {
	text, err := ParseBytes("contract.txt", []byte{'o', 'k', 0xff, 0xfe, '!'})
	require.NoError(t, err)
	assert.Equal(t, "ok!", text)
}

func TestParseBytes_BinaryFormatsRejected(t *testing.T) {
	for _, name := range []string{"a.pdf", "a.doc", "a.DOCX", "a.xls", "a.xlsx", "a.ppt", "a.pptx"} {
		_, err := ParseBytes(name, []byte("irrelevant"))
		require.Error(t, err, name)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, name)
	}
}

func TestParseBytes_JSONNormalized(t *testing.T) {
	// Differently formatted but equivalent JSON must parse to identical text.
	a, err := ParseBytes("a.json", []byte(`{"fee":1500,"due":"2024-01-15"}`))
	require.NoError(t, err)
	b, err := ParseBytes("b.json", []byte("{\n  \"due\": \"2024-01-15\",\n  \"fee\": 1500\n}"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestParseBytes_JSONInvalid(t *testing.T) {
	_, err := ParseBytes("a.json", []byte("{not json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}

func TestParseBytes_HTMLVisibleText(t *testing.T) {
	page := `<html><head><style>body{color:red}</style><script>alert(1)</script></head>
<body><h1>Terms</h1><p>The fee is EUR 1500.</p><noscript>enable js</noscript></body></html>`

	text, err := ParseBytes("terms.html", []byte(page))
	require.NoError(t, err)

	assert.Contains(t, text, "Terms")
	assert.Contains(t, text, "The fee is EUR 1500.")
	assert.NotContains(t, text, "alert(1)")
	assert.NotContains(t, text, "color:red")
	assert.NotContains(t, text, "enable js")
}

func TestParseDocument_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contract.txt")
	require.NoError(t, os.WriteFile(path, []byte("Clause one."), 0o644))

	text, err := ParseDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "Clause one.", text)
}

func TestParseDocument_MissingFile(t *testing.T) {
	_, err := ParseDocument(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
}
