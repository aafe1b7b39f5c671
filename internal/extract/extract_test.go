package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestTextPages(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{name: "single page", in: "one\ntwo", want: []string{"one\ntwo"}},
		{name: "form feeds", in: "a\fb\fc", want: []string{"a", "b", "c"}},
		{name: "trailing form feed", in: "a\fb\f\n", want: []string{"a", "b"}},
		{name: "empty middle page", in: "a\f\fc", want: []string{"a", "", "c"}},
		{name: "byte order mark", in: "\ufeffhello", want: []string{"hello"}},
		{name: "empty", in: "", want: nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, textPages(tc.in))
		})
	}
}

func TestPagesReadsTextFile(t *testing.T) {
	path := writeTemp(t, "notes.txt", []byte("first page\fsecond page\n"))

	pages, err := Pages(context.Background(), path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"first page", "second page\n"}, pages)
}

func TestPagesReadsPDF(t *testing.T) {
	data := buildPDF(
		textAt(20, 250, "Hello")+textAt(20, 200, "World"),
		textAt(20, 250, "Second page"),
	)
	path := writeTemp(t, "doc.pdf", data)

	pages, err := Pages(context.Background(), path, Options{})
	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "Hello\nWorld", pages[0])
	assert.Equal(t, "Second page", pages[1])
}

func TestPagesDetectsPDFByMagic(t *testing.T) {
	path := writeTemp(t, "document", buildPDF(textAt(20, 250, "magic")))

	pages, err := Pages(context.Background(), path, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"magic"}, pages)
}

func TestPagesErrors(t *testing.T) {
	ctx := context.Background()

	_, err := Pages(ctx, filepath.Join(t.TempDir(), "missing.txt"), Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	binary := writeTemp(t, "blob.bin", []byte{0xff, 0xfe, 0x00, 0x81})
	_, err = Pages(ctx, binary, Options{})
	assert.ErrorIs(t, err, ErrUnsupported)

	corrupt := writeTemp(t, "broken.pdf", []byte("%PDF-1.4\nnot really a pdf"))
	_, err = Pages(ctx, corrupt, Options{})
	assert.Error(t, err)
}

func TestPagesFetchesRemoteDocument(t *testing.T) {
	t.Setenv(cacheEnvVar, t.TempDir())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("remote one\fremote two"))
	}))
	t.Cleanup(server.Close)

	pages, err := Pages(context.Background(), server.URL+"/files/report.txt", Options{Client: server.Client()})
	require.NoError(t, err)
	assert.Equal(t, []string{"remote one", "remote two"}, pages)
}

func TestPagesRemoteFailure(t *testing.T) {
	t.Setenv(cacheEnvVar, t.TempDir())

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	_, err := Pages(context.Background(), server.URL+"/missing.pdf", Options{Client: server.Client()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestIsRemoteAndTitle(t *testing.T) {
	assert.True(t, IsRemote("https://example.com/paper.pdf"))
	assert.True(t, IsRemote("http://example.com"))
	assert.False(t, IsRemote("/tmp/paper.pdf"))
	assert.False(t, IsRemote("ftp://example.com/paper.pdf"))
	assert.False(t, IsRemote("paper.pdf"))

	assert.Equal(t, "paper.pdf", Title("https://example.com/files/paper.pdf"))
	assert.Equal(t, "example.com", Title("https://example.com/"))
	assert.Equal(t, "paper.pdf", Title("/tmp/docs/paper.pdf"))
}
