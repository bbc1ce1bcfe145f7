// Package vocab loads named word lists used as replacement sources.
//
// A vocabulary file is UTF-8 text with one or more whitespace-separated words
// per line. Blank lines and lines starting with '#' are ignored. The file's
// base name, case-folded, is the vocabulary key.
package vocab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/lipsum/internal/text"
)

// ErrUnknownVocabulary is returned when a key has no vocabulary.
var ErrUnknownVocabulary = errors.New("unknown vocabulary")

// Key length bounds for eligible files.
const (
	minKeyLen = 2
	maxKeyLen = 40
)

// Vocabulary is a named, ordered, deduplicated word list.
type Vocabulary struct {
	Key    string
	Name   string
	Words  []string
	Source string // file path, or "builtin"
}

// New builds a vocabulary from raw words. Words are NFC-normalized and
// deduplicated case-insensitively; the first-seen form and position win.
func New(key, name string, words []string) *Vocabulary {
	return &Vocabulary{
		Key:    key,
		Name:   name,
		Words:  dedupe(words),
		Source: "builtin",
	}
}

// Len returns the number of words.
func (v *Vocabulary) Len() int {
	return len(v.Words)
}

// Sample returns up to n leading words.
func (v *Vocabulary) Sample(n int) []string {
	if n > len(v.Words) {
		n = len(v.Words)
	}
	return v.Words[:n]
}

// DisplayName is the default display name for a key: "Lipsum" for the
// built-in key, the title-cased key otherwise.
func DisplayName(key string) string {
	if key == BuiltinKey {
		return BuiltinName
	}
	return cases.Title(language.Und).String(key)
}

// Registry holds the discovered vocabularies by key.
type Registry struct {
	vocabs map[string]*Vocabulary
}

// NewRegistry builds a registry from explicit vocabularies. The built-in
// vocabulary is installed unless one of them already uses its key.
func NewRegistry(vocabs ...*Vocabulary) *Registry {
	r := &Registry{vocabs: make(map[string]*Vocabulary, len(vocabs)+1)}
	for _, v := range vocabs {
		r.vocabs[v.Key] = v
	}
	if _, ok := r.vocabs[BuiltinKey]; !ok {
		r.vocabs[BuiltinKey] = Builtin()
	}
	return r
}

// Get returns the vocabulary for key.
func (r *Registry) Get(key string) (*Vocabulary, error) {
	v, ok := r.vocabs[foldKey(key)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVocabulary, key)
	}
	return v, nil
}

// Has reports whether key is registered.
func (r *Registry) Has(key string) bool {
	_, ok := r.vocabs[foldKey(key)]
	return ok
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.vocabs))
	for k := range r.vocabs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Discover loads every eligible vocabulary file at the root of fsys.
//
// Files are read in sorted name order. A file that cannot be read, or that
// yields no words, is skipped with a warning. Discover never fails: if
// nothing usable is found, the registry still holds the built-in vocabulary.
// A nil fsys yields the built-in vocabulary only.
func Discover(fsys fs.FS, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	if fsys == nil {
		return NewRegistry()
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		logger.Warn("vocabulary directory unreadable, using built-in only", "error", err)
		return NewRegistry()
	}

	var found []*Vocabulary
	for _, entry := range entries {
		key, ok := eligible(entry)
		if !ok {
			continue
		}

		words, err := readFile(fsys, entry.Name())
		if err != nil {
			logger.Warn("failed to read vocabulary", "path", entry.Name(), "error", err)
			continue
		}
		if len(words) == 0 {
			logger.Warn("vocabulary has no words, skipping", "path", entry.Name())
			continue
		}

		v := New(key, DisplayName(key), words)
		v.Source = entry.Name()
		found = append(found, v)
		logger.Debug("vocabulary loaded", "key", key, "words", v.Len(), "path", entry.Name())
	}

	return NewRegistry(found...)
}

// DiscoverKeys reports which vocabulary keys exist at the root of fsys
// without reading file content. The result is sorted.
func DiscoverKeys(fsys fs.FS) ([]string, error) {
	if fsys == nil {
		return nil, nil
	}
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("list vocabularies: %w", err)
	}

	seen := make(map[string]bool)
	var keys []string
	for _, entry := range entries {
		key, ok := eligible(entry)
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys, nil
}

// ParseWords reads whitespace-separated words, skipping blank and comment
// lines. Duplicates are kept; New removes them.
func ParseWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, strings.Fields(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan words: %w", err)
	}
	return words, nil
}

func readFile(fsys fs.FS, name string) ([]string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseWords(f)
}

// eligible returns the key for a vocabulary file entry.
func eligible(entry fs.DirEntry) (string, bool) {
	name := entry.Name()
	if entry.IsDir() || strings.HasPrefix(name, ".") {
		return "", false
	}
	ext := path.Ext(name)
	if ext != ".txt" && ext != ".lex" {
		return "", false
	}
	key := foldKey(strings.TrimSuffix(name, ext))
	if n := utf8.RuneCountInString(key); n < minKeyLen || n > maxKeyLen {
		return "", false
	}
	return key, true
}

func foldKey(key string) string {
	return cases.Fold().String(key)
}

func dedupe(words []string) []string {
	seen := make(map[string]bool, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = norm.NFC.String(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		lw := text.Lower(w)
		if seen[lw] {
			continue
		}
		seen[lw] = true
		out = append(out, w)
	}
	return out
}
