package lang

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Supported language codes.
const (
	German  = "de"
	English = "en"
)

// fallbackLanguage is consulted when a key is missing from the active table.
const fallbackLanguage = English

// ErrUnsupportedLanguage is returned by SetLanguage for codes without a table.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Catalog resolves symbolic text keys for the active language.
// It is safe for concurrent use, although the shell only reads it from the
// event loop.
type Catalog struct {
	mu      sync.RWMutex
	tables  map[string]map[string]string
	current string
}

// New creates a catalog with the built-in tables and activates initial.
func New(initial string) (*Catalog, error) {
	c := &Catalog{
		tables: map[string]map[string]string{
			German:  germanStrings,
			English: englishStrings,
		},
		current: German,
	}
	if initial == "" {
		return c, nil
	}
	if err := c.SetLanguage(initial); err != nil {
		return nil, err
	}
	return c, nil
}

// Default returns a catalog with German active.
func Default() *Catalog {
	c, _ := New(German)
	return c
}

// Text returns the string for key in the active language, falling back to
// English and finally to the key itself.
func (c *Catalog) Text(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if s, ok := c.tables[c.current][key]; ok {
		return s
	}
	if c.current != fallbackLanguage {
		if s, ok := c.tables[fallbackLanguage][key]; ok {
			return s
		}
	}
	return key
}

// SetLanguage switches the active language. Region and script subtags are
// ignored, so "en_US" and "en-GB" both select English.
func (c *Catalog) SetLanguage(code string) error {
	base, err := Normalize(code)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.tables[base]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedLanguage, code)
	}
	c.current = base
	return nil
}

// Language returns the active language code.
func (c *Catalog) Language() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// Supported returns the available language codes in sorted order.
func (c *Catalog) Supported() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	codes := make([]string, 0, len(c.tables))
	for code := range c.tables {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Normalize reduces a locale identifier to its base language subtag.
func Normalize(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", fmt.Errorf("%w: empty language code", ErrUnsupportedLanguage)
	}
	// Strip encodings such as "de_DE.UTF-8".
	if i := strings.IndexAny(code, ".@"); i > 0 {
		code = code[:i]
	}

	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedLanguage, code)
	}
	base, _ := tag.Base()
	return base.String(), nil
}
