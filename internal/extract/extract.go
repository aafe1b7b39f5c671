// Package extract turns a document on disk or on the web into per-page text.
package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// ErrUnsupported is returned for content that is neither PDF nor UTF-8 text.
var ErrUnsupported = errors.New("unsupported document format")

var pdfMagic = []byte("%PDF-")

// Options configures extraction.
type Options struct {
	// Client downloads remote documents. Nil uses a client with a generous
	// timeout.
	Client *http.Client
}

// Pages returns the text of each page of source, which is a file path or an
// http(s) URL. PDFs are read page by page; other files are treated as UTF-8
// text with form feeds separating pages.
func Pages(ctx context.Context, source string, opts Options) ([]string, error) {
	filePath := source
	if IsRemote(source) {
		cache, err := newDocumentCache(opts.Client)
		if err != nil {
			return nil, fmt.Errorf("open document cache: %w", err)
		}
		filePath, err = cache.Fetch(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("download %s: %w", source, err)
		}
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	var pages []string
	switch {
	case bytes.HasPrefix(data, pdfMagic) || strings.EqualFold(filepath.Ext(filePath), ".pdf"):
		pages, err = pdfPages(filePath)
	case utf8.Valid(data):
		pages = textPages(string(data))
	default:
		err = ErrUnsupported
	}
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", source, err)
	}

	log.Info().Str("source", source).Int("pages", len(pages)).Msg("document extracted")
	return pages, nil
}

// IsRemote reports whether source is an http or https URL.
func IsRemote(source string) bool {
	u, err := url.Parse(source)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Title returns a short display name for source.
func Title(source string) string {
	if IsRemote(source) {
		u, _ := url.Parse(source)
		if base := path.Base(u.Path); base != "/" && base != "." {
			return base
		}
		return u.Host
	}
	return filepath.Base(source)
}
