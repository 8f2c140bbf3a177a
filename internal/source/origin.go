// Package source fetches lesson documents, library collections and asset
// existence from a lesson location, either a local directory or an HTTP
// base URL.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned by Fetch when the path does not exist.
var ErrNotFound = errors.New("not found")

// Origin is where a lesson and its shared assets live. Paths are relative
// to the lesson location; ".." segments reach the course and library
// directories above it.
type Origin interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
	Exists(ctx context.Context, path string) (bool, error)
	String() string
}

// Open returns an HTTP origin for http(s) locations and a directory
// origin for everything else.
func Open(location string) (Origin, error) {
	if isRemote(location) {
		return NewHTTP(location, nil)
	}
	abs, err := filepath.Abs(location)
	if err != nil {
		return nil, fmt.Errorf("resolve lesson dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("open lesson dir: %w", err)
	}
	if !info.IsDir() {
		abs = filepath.Dir(abs)
	}
	return &Dir{Root: abs}, nil
}

func isRemote(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}

// Dir reads from the local filesystem. Absolute http(s) paths are
// delegated to a plain HTTP client. Root-relative paths ("/img/x.png")
// are rooted at Root, the way a web server would serve the lesson.
type Dir struct {
	Root string

	once   sync.Once
	remote *HTTP
}

func (d *Dir) String() string { return d.Root }

func (d *Dir) path(p string) string {
	return filepath.Join(d.Root, filepath.FromSlash(strings.TrimPrefix(p, "/")))
}

// Rel turns a filesystem path into an origin path. Relative paths are
// returned unchanged.
func (d *Dir) Rel(fsPath string) (string, error) {
	if !filepath.IsAbs(fsPath) {
		return fsPath, nil
	}
	rel, err := filepath.Rel(d.Root, fsPath)
	if err != nil {
		return "", fmt.Errorf("relative path for %s: %w", fsPath, err)
	}
	return filepath.ToSlash(rel), nil
}

// http is called from concurrent probes.
func (d *Dir) http() *HTTP {
	d.once.Do(func() {
		d.remote = &HTTP{client: &http.Client{Timeout: 10 * time.Second}}
	})
	return d.remote
}

func (d *Dir) Fetch(ctx context.Context, p string) ([]byte, error) {
	if isRemote(p) {
		return d.http().Fetch(ctx, p)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(d.path(p))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", p, ErrNotFound)
	}
	return data, err
}

func (d *Dir) Exists(ctx context.Context, p string) (bool, error) {
	if isRemote(p) {
		return d.http().Exists(ctx, p)
	}
	if strings.HasPrefix(p, "data:") {
		return true, nil
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}
	info, err := os.Stat(d.path(p))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return !info.IsDir(), nil
}

// HTTP reads from a web server: GET for documents, HEAD for existence.
type HTTP struct {
	base   *url.URL
	client *http.Client
}

// NewHTTP returns an origin rooted at base. A nil client gets a default
// with a 10s timeout.
func NewHTTP(base string, client *http.Client) (*HTTP, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parse lesson url: %w", err)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTP{base: u, client: client}, nil
}

func (h *HTTP) String() string {
	if h.base == nil {
		return "http"
	}
	return h.base.String()
}

func (h *HTTP) resolve(p string) (string, error) {
	ref, err := url.Parse(p)
	if err != nil {
		return "", fmt.Errorf("parse path %q: %w", p, err)
	}
	if h.base == nil || ref.IsAbs() {
		return ref.String(), nil
	}
	return h.base.ResolveReference(ref).String(), nil
}

func (h *HTTP) Fetch(ctx context.Context, p string) ([]byte, error) {
	target, err := h.resolve(p)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", target, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}
	return io.ReadAll(resp.Body)
}

// Exists issues a HEAD request. Any 2xx status means the resource exists.
func (h *HTTP) Exists(ctx context.Context, p string) (bool, error) {
	if strings.HasPrefix(p, "data:") {
		return true, nil
	}
	target, err := h.resolve(p)
	if err != nil {
		return false, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return false, err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return false, err
	}
	_ = resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode <= 299, nil
}
