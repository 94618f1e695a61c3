package content

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultContent []byte

// DefaultYAML returns the built-in club content.
func DefaultYAML() []byte {
	return bytes.Clone(defaultContent)
}

// Parse decodes a content document. Unknown keys are rejected so typos in
// hand-edited files surface early.
func Parse(data []byte) (*Site, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var site Site
	if err := dec.Decode(&site); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	return &site, nil
}

// Loader reads the content file, expands album globs and validates the
// result.
type Loader struct {
	// Path is the content file. Empty means the built-in content.
	Path string
	// AssetsDir is the directory image locators starting with "/" resolve
	// against. Album globs are matched inside it.
	AssetsDir string
}

// Source describes where content is read from.
func (l Loader) Source() string {
	if l.Path == "" {
		return "built-in"
	}
	return l.Path
}

// Load reads, expands and validates the content.
func (l Loader) Load() (*Site, error) {
	data := defaultContent
	if l.Path != "" {
		b, err := os.ReadFile(l.Path)
		if err != nil {
			return nil, fmt.Errorf("read content: %w", err)
		}
		data = b
	}

	site, err := Parse(data)
	if err != nil {
		return nil, err
	}

	if err := ExpandGlobs(site, l.AssetsDir); err != nil {
		return nil, err
	}

	if err := site.Validate(); err != nil {
		return nil, err
	}
	return site, nil
}

// ExpandGlobs appends the files matching each album's Glob to its Images.
// Matches are locators rooted at "/" relative to assetsDir, in natural
// order, skipping images already listed. Albums without a glob, or an empty
// assetsDir, are left untouched.
func ExpandGlobs(site *Site, assetsDir string) error {
	if assetsDir == "" {
		return nil
	}
	fsys := os.DirFS(assetsDir)

	for i := range site.Albums {
		album := &site.Albums[i]
		if album.Glob == "" {
			continue
		}

		pattern := strings.TrimPrefix(album.Glob, "/")
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("album %q: invalid glob %q", album.ID, album.Glob)
		}

		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return fmt.Errorf("album %q: glob %q: %w", album.ID, album.Glob, err)
		}
		slices.SortFunc(matches, naturalCompare)

		seen := make(map[string]bool, len(album.Images))
		for _, img := range album.Images {
			seen[img.URL] = true
		}
		for _, m := range matches {
			loc := path.Join("/", m)
			if seen[loc] {
				continue
			}
			seen[loc] = true
			album.Images = append(album.Images, Image{URL: loc})
		}
	}
	return nil
}

// naturalCompare orders strings so that embedded numbers compare by value:
// "29-2.jpg" sorts before "29-10.jpg".
func naturalCompare(a, b string) int {
	for a != "" && b != "" {
		ad, bd := leadingDigits(a), leadingDigits(b)
		if ad != "" && bd != "" {
			an, _ := strconv.ParseUint(ad, 10, 64)
			bn, _ := strconv.ParseUint(bd, 10, 64)
			if an != bn {
				if an < bn {
					return -1
				}
				return 1
			}
			a, b = a[len(ad):], b[len(bd):]
			continue
		}
		if a[0] != b[0] {
			if a[0] < b[0] {
				return -1
			}
			return 1
		}
		a, b = a[1:], b[1:]
	}
	return len(a) - len(b)
}

func leadingDigits(s string) string {
	i := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if i < 0 {
		return s
	}
	return s[:i]
}

// Marshal encodes site as a content document.
func Marshal(site *Site) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(site); err != nil {
		return nil, fmt.Errorf("encode content: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode content: %w", err)
	}
	return buf.Bytes(), nil
}
