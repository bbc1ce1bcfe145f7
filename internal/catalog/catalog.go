// Package catalog names language tags and themes for display.
//
// Names come from a built-in table, then from optional overrides loaded
// from a CUE file, then from the CLDR data in golang.org/x/text for tags
// neither knows.
package catalog

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/roach88/lipsum/internal/ir"
)

var builtinLanguages = map[string]string{
	"sq": "Shqip (Albanian)", "ar": "العربية (Arabic)", "bg": "Български (Bulgarian)",
	"ca": "Català (Catalan)", "zh": "中文简体 (Chinese, Simplified)", "hr": "Hrvatski (Croatian)",
	"cs": "Česky (Czech)", "da": "Dansk (Danish)", "nl": "Nederlands (Dutch)",
	"en": "English", "et": "Eesti (Estonian)", "fil": "Filipino", "fi": "Suomi (Finnish)",
	"fr": "Français (French)", "ka": "ქართული (Georgian)", "de": "Deutsch (German)",
	"el": "Ελληνικά (Greek)", "he": "עברית (Hebrew)", "hi": "हिन्दी (Hindi)",
	"hu": "Magyar (Hungarian)", "id": "Indonesia (Indonesian)", "it": "Italiano (Italian)",
	"lv": "Latviski (Latvian)", "lt": "Lietuviškai (Lithuanian)", "mk": "македонски (Macedonian)",
	"ms": "Melayu (Malay)", "no": "Norsk (Norwegian)", "pl": "Polski (Polish)",
	"pt": "Português (Portuguese)", "ro": "Română (Romanian)", "ru": "Русский (Russian)",
	"sr": "Српски (Serbian)", "sl": "Slovenščina (Slovenian)", "es": "Español (Spanish)",
	"sv": "Svenska (Swedish)", "th": "ไทย (Thai)", "tr": "Türkçe (Turkish)",
	"uk": "Українська (Ukrainian)", "vi": "Tiếng Việt (Vietnamese)",
}

// Catalog maps language tags and theme keys to display names.
type Catalog struct {
	languages map[string]string
	themes    map[string]string
}

// Builtin returns a catalog holding only the built-in language table.
func Builtin() *Catalog {
	c := &Catalog{
		languages: make(map[string]string, len(builtinLanguages)),
		themes:    make(map[string]string),
	}
	for tag, name := range builtinLanguages {
		c.languages[tag] = name
	}
	return c
}

// Normalize lowercases and trims a tag. Empty becomes ir.DefaultLang.
func Normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return ir.DefaultLang
	}
	return tag
}

// Known reports whether tag is in the catalog's own table.
func (c *Catalog) Known(tag string) bool {
	_, ok := c.languages[Normalize(tag)]
	return ok
}

// Tags returns the catalog's own tags, sorted.
func (c *Catalog) Tags() []string {
	tags := make([]string, 0, len(c.languages))
	for tag := range c.languages {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Name returns a display name for tag: "Unknown" for ir.DefaultLang, the
// catalog entry if there is one, otherwise "<own name> (<English name>)"
// from CLDR, otherwise the tag itself.
func (c *Catalog) Name(tag string) string {
	tag = Normalize(tag)
	if tag == ir.DefaultLang {
		return "Unknown"
	}
	if name, ok := c.languages[tag]; ok {
		return name
	}

	t, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	english := display.English.Tags().Name(t)
	if english == "" {
		return tag
	}
	self := display.Self.Name(t)
	if self == "" || self == english {
		return english
	}
	return fmt.Sprintf("%s (%s)", self, english)
}

// ThemeName returns the override for a theme key, or fallback.
func (c *Catalog) ThemeName(key, fallback string) string {
	if name, ok := c.themes[key]; ok {
		return name
	}
	return fallback
}

// LoadCUE reads overrides from a CUE file on top of the built-in table:
//
//	languages: eo: "Esperanto"
//	themes: pirate: "Pirate Ipsum"
//
// Both structs are optional; every value must be a string.
func LoadCUE(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(path))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}

	c := Builtin()
	if err := readStrings(value, "languages", func(k, v string) { c.languages[Normalize(k)] = v }); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	if err := readStrings(value, "themes", func(k, v string) { c.themes[k] = v }); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return c, nil
}

func readStrings(value cue.Value, field string, set func(k, v string)) error {
	v := value.LookupPath(cue.ParsePath(field))
	if !v.Exists() {
		return nil
	}
	iter, err := v.Fields()
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	for iter.Next() {
		s, err := iter.Value().String()
		if err != nil {
			return fmt.Errorf("%s.%s: %w", field, iter.Label(), err)
		}
		set(iter.Label(), s)
	}
	return nil
}
