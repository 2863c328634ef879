package locale

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Class selects which pattern of a locale entry a widget needs.
type Class int

const (
	ClassTime Class = iota
	ClassDate
	ClassDateTime
)

func (c Class) String() string {
	switch c {
	case ClassTime:
		return "time"
	case ClassDate:
		return "date"
	case ClassDateTime:
		return "datetime"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Patterns holds the short patterns of a single locale.
type Patterns struct {
	Time     string `yaml:"time"`
	Date     string `yaml:"date"`
	DateTime string `yaml:"datetime"`
}

// For returns the pattern for the class, or "" when the entry leaves it unset.
func (p Patterns) For(class Class) string {
	switch class {
	case ClassTime:
		return strings.TrimSpace(p.Time)
	case ClassDate:
		return strings.TrimSpace(p.Date)
	case ClassDateTime:
		return strings.TrimSpace(p.DateTime)
	default:
		return ""
	}
}

type document struct {
	Locales map[string]Patterns `yaml:"locales"`
}

// Table maps locales to patterns. Lookups go through a language.Matcher so a
// request for "fr-BE" resolves to the "fr" entry when no closer one exists.
type Table struct {
	tags     []language.Tag
	patterns []Patterns
	matcher  language.Matcher
}

//go:embed data/patterns.yaml
var defaultTable []byte

var (
	defaultOnce sync.Once
	defaultTbl  *Table
)

// Default returns the table built from the embedded pattern data.
func Default() *Table {
	defaultOnce.Do(func() {
		tbl, err := ParseTable(defaultTable)
		if err != nil {
			panic(fmt.Sprintf("locale: embedded table: %v", err))
		}
		defaultTbl = tbl
	})
	return defaultTbl
}

// LoadTable reads a YAML pattern table from fsys.
func LoadTable(fsys fs.FS, path string) (*Table, error) {
	if fsys == nil {
		return nil, errors.New("locale: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("locale: read %s: %w", path, err)
	}
	tbl, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("locale: %s: %w", path, err)
	}
	return tbl, nil
}

// ParseTable decodes a YAML pattern table of the form
//
//	locales:
//	  en-GB: {time: "HH:mm", date: "dd/MM/yyyy", datetime: "dd/MM/yyyy HH:mm"}
func ParseTable(data []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("locale: decode table: %w", err)
	}
	if len(doc.Locales) == 0 {
		return nil, errors.New("locale: table defines no locales")
	}

	keys := make([]string, 0, len(doc.Locales))
	for key := range doc.Locales {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tbl := &Table{
		tags:     make([]language.Tag, 0, len(keys)),
		patterns: make([]Patterns, 0, len(keys)),
	}
	seen := make(map[language.Tag]string, len(keys))
	for _, key := range keys {
		tag, err := language.Parse(strings.TrimSpace(key))
		if err != nil {
			return nil, fmt.Errorf("locale: invalid tag %q: %w", key, err)
		}
		if prev, dup := seen[tag]; dup {
			return nil, fmt.Errorf("locale: %q duplicates %q", key, prev)
		}
		seen[tag] = key
		tbl.tags = append(tbl.tags, tag)
		tbl.patterns = append(tbl.patterns, doc.Locales[key])
	}
	tbl.matcher = language.NewMatcher(tbl.tags)
	return tbl, nil
}

// Lookup returns the patterns of the entry closest to tag.
func (t *Table) Lookup(tag language.Tag) (Patterns, bool) {
	if t == nil || t.matcher == nil || tag == language.Und {
		return Patterns{}, false
	}
	_, idx, confidence := t.matcher.Match(tag)
	if confidence == language.No || idx < 0 || idx >= len(t.patterns) {
		return Patterns{}, false
	}
	return t.patterns[idx], true
}

// Pattern returns the class pattern for tag, or fallback when the table has no
// entry for it.
func (t *Table) Pattern(tag language.Tag, class Class, fallback string) string {
	patterns, ok := t.Lookup(tag)
	if !ok {
		return fallback
	}
	if value := patterns.For(class); value != "" {
		return value
	}
	return fallback
}

// Tags lists the table's locales in sorted order.
func (t *Table) Tags() []language.Tag {
	if t == nil {
		return nil
	}
	return append([]language.Tag(nil), t.tags...)
}

// Culture returns the Kendo culture identifier for tag: the language alone, or
// language-REGION when the tag names a region explicitly.
func Culture(tag language.Tag) string {
	if tag == language.Und {
		return ""
	}
	base, _ := tag.Base()
	region, confidence := tag.Region()
	if confidence == language.Exact {
		return base.String() + "-" + region.String()
	}
	return base.String()
}
