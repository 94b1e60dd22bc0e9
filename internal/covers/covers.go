package covers

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultBaseURL is the Open Library cover service.
const DefaultBaseURL = "https://covers.openlibrary.org/b/isbn"

// SanitizeISBN strips everything except digits and the check character X.
// The result may be empty, meaning no cover lookup is possible.
func SanitizeISBN(isbn string) string {
	var b strings.Builder
	for _, r := range isbn {
		if (r >= '0' && r <= '9') || r == 'X' || r == 'x' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// URL builds the medium-size cover image URL for an ISBN, or "" when the
// sanitized ISBN is empty.
func URL(base, isbn string) string {
	clean := SanitizeISBN(isbn)
	if clean == "" {
		return ""
	}
	if base == "" {
		base = DefaultBaseURL
	}
	return fmt.Sprintf("%s/%s-M.jpg", strings.TrimRight(base, "/"), url.PathEscape(clean))
}

// Cache fetches cover images once and keeps them on disk. A cover that
// cannot be fetched is a normal outcome, not an error worth surfacing.
type Cache struct {
	baseDir string
	baseURL string
	client  *http.Client
}

// NewCache returns a Cache rooted at baseDir, fetching from baseURL.
func NewCache(baseDir, baseURL string) *Cache {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Cache{
		baseDir: baseDir,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Path returns where the cover for an ISBN would be stored.
func (c *Cache) Path(isbn string) string {
	clean := SanitizeISBN(isbn)
	if clean == "" {
		return ""
	}
	return filepath.Join(c.baseDir, clean+".jpg")
}

// Has reports whether a cover for the ISBN is already cached.
func (c *Cache) Has(isbn string) bool {
	path := c.Path(isbn)
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// Fetch downloads the cover if it is not cached yet and returns its path.
// An empty sanitized ISBN or any download failure returns an error; callers
// fall back to a placeholder.
func (c *Cache) Fetch(isbn string) (string, error) {
	path := c.Path(isbn)
	if path == "" {
		return "", fmt.Errorf("no usable ISBN")
	}
	if c.Has(isbn) {
		return path, nil
	}

	coverURL := URL(c.baseURL, isbn)
	resp, err := c.client.Get(coverURL)
	if err != nil {
		return "", fmt.Errorf("fetching cover: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching cover: status %d", resp.StatusCode)
	}

	if err := os.MkdirAll(c.baseDir, 0750); err != nil {
		return "", fmt.Errorf("creating covers dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("storing cover: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("storing cover: %w", err)
	}
	return path, nil
}

// Remove deletes a cached cover if present.
func (c *Cache) Remove(isbn string) error {
	path := c.Path(isbn)
	if path == "" {
		return nil
	}
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
