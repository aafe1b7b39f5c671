package extract

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheEnvVar        = "PAGESCOUT_CACHE_DIR"
	cacheSubdir        = "pagescout/documents"
	cacheTTL           = 24 * time.Hour
	documentSuffix     = ".doc"
	partialSuffix      = ".part"
	metaSuffix         = ".meta"
	defaultHTTPTimeout = 90 * time.Second
	maxKeyPrefix       = 48
)

// documentCache keeps downloaded documents on disk, revalidating them with
// conditional requests once they are older than cacheTTL and resuming
// interrupted downloads from their .part file.
type documentCache struct {
	dir    string
	client *http.Client
}

type cacheMeta struct {
	URL          string    `json:"url"`
	ETag         string    `json:"etag"`
	LastModified string    `json:"lastModified"`
	CachedAt     time.Time `json:"cachedAt"`
	Size         int64     `json:"size"`
}

type cachePaths struct {
	document string
	meta     string
	partial  string
}

func newDocumentCache(client *http.Client) (*documentCache, error) {
	dir := os.Getenv(cacheEnvVar)
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			base = filepath.Join(os.TempDir(), "pagescout-cache")
		}
		dir = filepath.Join(base, cacheSubdir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &documentCache{dir: dir, client: client}, nil
}

// Fetch returns the path of a local copy of rawURL. A stale copy is still
// returned when the server cannot be reached.
func (c *documentCache) Fetch(ctx context.Context, rawURL string) (string, error) {
	paths := c.pathsFor(cacheKey(rawURL))
	logger := log.With().Str("url", rawURL).Str("path", paths.document).Logger()

	info, statErr := os.Stat(paths.document)
	if statErr == nil && info.Size() > 0 && time.Since(info.ModTime()) < cacheTTL {
		logger.Debug().Msg("document cache hit")
		return paths.document, nil
	}
	if statErr != nil {
		info = nil
	}

	meta, _ := readMeta(paths.meta)
	err := c.download(ctx, rawURL, paths, meta, info)
	if err == nil {
		return paths.document, nil
	}
	if info != nil && info.Size() > 0 {
		logger.Warn().Err(err).Msg("refresh failed, using stale copy")
		return paths.document, nil
	}
	return "", err
}

func (c *documentCache) download(ctx context.Context, rawURL string, paths cachePaths, meta cacheMeta, current os.FileInfo) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	haveCopy := current != nil && current.Size() > 0
	if haveCopy {
		if meta.ETag != "" {
			req.Header.Set("If-None-Match", meta.ETag)
		}
		if meta.LastModified != "" {
			req.Header.Set("If-Modified-Since", meta.LastModified)
		}
	}

	var resumeFrom int64
	if info, err := os.Stat(paths.partial); err == nil && info.Size() > 0 {
		resumeFrom = info.Size()
		req.Header.Set("Range", fmt.Sprintf("bytes=%d-", resumeFrom))
		switch {
		case meta.ETag != "":
			req.Header.Set("If-Range", meta.ETag)
		case meta.LastModified != "":
			req.Header.Set("If-Range", meta.LastModified)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	log.Debug().Str("url", rawURL).Int("status", resp.StatusCode).Int64("resume_from", resumeFrom).Msg("document download")

	switch resp.StatusCode {
	case http.StatusNotModified:
		if !haveCopy {
			return c.download(ctx, rawURL, paths, cacheMeta{}, nil)
		}
		meta.CachedAt = time.Now().UTC()
		now := time.Now()
		_ = os.Chtimes(paths.document, now, now)
		return writeMeta(paths.meta, meta)
	case http.StatusOK:
		return c.store(resp, paths, false)
	case http.StatusPartialContent:
		return c.store(resp, paths, resumeFrom > 0)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("download failed: %s (%s)", resp.Status, strings.TrimSpace(string(body)))
	}
}

// store streams the response into the partial file and moves it into place
// once complete.
func (c *documentCache) store(resp *http.Response, paths cachePaths, appendExisting bool) error {
	flags := os.O_CREATE | os.O_WRONLY
	if appendExisting {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	file, err := os.OpenFile(paths.partial, flags, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(file, resp.Body); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	if err := os.Rename(paths.partial, paths.document); err != nil {
		return err
	}

	meta := cacheMeta{
		URL:          resp.Request.URL.String(),
		ETag:         resp.Header.Get("Etag"),
		LastModified: resp.Header.Get("Last-Modified"),
		CachedAt:     time.Now().UTC(),
	}
	if info, err := os.Stat(paths.document); err == nil {
		meta.Size = info.Size()
	}
	return writeMeta(paths.meta, meta)
}

func (c *documentCache) pathsFor(key string) cachePaths {
	base := filepath.Join(c.dir, key)
	return cachePaths{
		document: base + documentSuffix,
		meta:     base + metaSuffix,
		partial:  base + partialSuffix,
	}
}

// cacheKey derives a file name from the last path element of rawURL plus a
// hash of the whole URL, so distinct URLs never share an entry.
func cacheKey(rawURL string) string {
	sum := sha1.Sum([]byte(rawURL))
	hash := hex.EncodeToString(sum[:])[:16]

	name := ""
	if u, err := url.Parse(rawURL); err == nil {
		name = sanitizeKey(strings.TrimSuffix(path.Base(u.Path), path.Ext(u.Path)))
	}
	if name == "" || name == "." || name == "-" {
		return hash
	}
	if len(name) > maxKeyPrefix {
		name = name[:maxKeyPrefix]
	}
	return name + "-" + hash
}

func sanitizeKey(value string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, strings.TrimSpace(value))
}

func readMeta(path string) (cacheMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return cacheMeta{}, err
	}
	var meta cacheMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return cacheMeta{}, err
	}
	return meta, nil
}

func writeMeta(path string, meta cacheMeta) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
