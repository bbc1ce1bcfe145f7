package ir

import (
	"fmt"
	"sort"
	"time"
)

// ForwardMap maps a lowercase source word to its lowercase replacement.
type ForwardMap map[string]string

// ReverseMap maps a lowercase replacement back to its lowercase source word.
type ReverseMap map[string]string

// Collision records two source words that share one replacement.
type Collision struct {
	Replacement string `json:"replacement"`
	Kept        string `json:"kept"`
	Dropped     string `json:"dropped"`
}

// Invert builds the reverse table.
//
// Source words are visited in sorted order so the outcome is deterministic:
// when two sources share a replacement, the later one wins and the earlier
// one is reported as dropped. Decoding through a map with collisions loses
// information, so callers must treat a non-empty result as corruption.
func (f ForwardMap) Invert() (ReverseMap, []Collision) {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rev := make(ReverseMap, len(f))
	var collisions []Collision
	for _, src := range keys {
		dst := f[src]
		if prev, ok := rev[dst]; ok {
			collisions = append(collisions, Collision{Replacement: dst, Kept: src, Dropped: prev})
		}
		rev[dst] = src
	}
	return rev, collisions
}

// Injective returns an error naming the first shared replacement, if any.
func (f ForwardMap) Injective() error {
	if _, collisions := f.Invert(); len(collisions) > 0 {
		c := collisions[0]
		return fmt.Errorf("replacement %q assigned to both %q and %q", c.Replacement, c.Dropped, c.Kept)
	}
	return nil
}

// Record is one persisted encode session. Records are immutable once saved.
type Record struct {
	ID         string     `json:"id"`
	Created    int64      `json:"created"` // seconds since epoch
	SourceLang string     `json:"source_lang"`
	ThemeKey   string     `json:"theme_key"`
	ThemeName  string     `json:"theme_name"`
	Note       string     `json:"note,omitempty"`
	ForwardMap ForwardMap `json:"forward_map"`
}

// RecordNote is written into every record so the file explains itself.
const RecordNote = "forward_map is src_lower -> themed_lower; reverse is derivable."

// NewRecord fills defaults for an encode session created at t.
func NewRecord(id string, t time.Time, lang, themeKey, themeName string, fwd ForwardMap) Record {
	if lang == "" {
		lang = DefaultLang
	}
	if fwd == nil {
		fwd = ForwardMap{}
	}
	return Record{
		ID:         id,
		Created:    t.Unix(),
		SourceLang: lang,
		ThemeKey:   themeKey,
		ThemeName:  themeName,
		Note:       RecordNote,
		ForwardMap: fwd,
	}
}

// CreatedAt returns the creation time in UTC.
func (r Record) CreatedAt() time.Time {
	return time.Unix(r.Created, 0).UTC()
}

// Validate checks the fields every stored record must carry.
func (r Record) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("record id is required")
	}
	if r.ForwardMap == nil {
		return fmt.Errorf("record %s: forward map is required", r.ID)
	}
	return nil
}
