// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Default is the locale used when nothing else matches.
const Default = "en"

var ErrNoLocales = errors.New("no locale tables found")

// Bundle holds the string tables of every locale.
type Bundle struct {
	def     string
	langs   []string
	tables  map[string]map[string]string
	matcher language.Matcher
}

// Load reads the embedded locale tables.
func Load() (*Bundle, error) {
	return LoadFS(localeFS, "locales", Default)
}

// MustLoad is Load for package initialisation and tests.
func MustLoad() *Bundle {
	b, err := Load()
	if err != nil {
		panic(err)
	}
	return b
}

// LoadFS reads every <lang>.yaml file in dir. def must be one of them.
func LoadFS(fsys fs.FS, dir, def string) (*Bundle, error) {
	files, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list locales: %w", err)
	}
	if len(files) == 0 {
		return nil, ErrNoLocales
	}

	b := &Bundle{def: def, tables: make(map[string]map[string]string, len(files))}
	for _, f := range files {
		data, err := fs.ReadFile(fsys, f)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f, err)
		}
		table := map[string]string{}
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", f, err)
		}
		lang := strings.TrimSuffix(path.Base(f), ".yaml")
		b.tables[lang] = table
		b.langs = append(b.langs, lang)
	}
	if _, ok := b.tables[def]; !ok {
		return nil, fmt.Errorf("default locale %q has no table", def)
	}

	// default first, the rest alphabetical
	slices.SortFunc(b.langs, func(a, c string) int {
		switch {
		case a == def:
			return -1
		case c == def:
			return 1
		}
		return strings.Compare(a, c)
	})

	tags := make([]language.Tag, len(b.langs))
	for i, l := range b.langs {
		tags[i] = language.Make(l)
	}
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

// Languages lists the available locales, default first.
func (b *Bundle) Languages() []string {
	return slices.Clone(b.langs)
}

// Has reports whether lang has a table.
func (b *Bundle) Has(lang string) bool {
	_, ok := b.tables[lang]
	return ok
}

// T translates key. Missing strings fall back to the default locale and
// then to the key itself.
func (b *Bundle) T(lang, key string) string {
	if s, ok := b.tables[lang][key]; ok {
		return s
	}
	if s, ok := b.tables[b.def][key]; ok {
		return s
	}
	return key
}

// Match picks the best locale for an Accept-Language header.
func (b *Bundle) Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return b.def
	}
	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return b.def
	}
	_, idx, conf := b.matcher.Match(prefs...)
	if conf == language.No {
		return b.def
	}
	return b.langs[idx]
}

// Locale returns the locale value for lang, or the default one when lang is
// unknown.
func (b *Bundle) Locale(lang string) Locale {
	if !b.Has(lang) {
		lang = b.def
	}
	return Locale{bundle: b, lang: lang}
}

// Locale is one request's language. It is a value; switching returns a new
// Locale.
type Locale struct {
	bundle *Bundle
	lang   string
}

func (l Locale) Lang() string { return l.lang }

func (l Locale) T(key string) string {
	return l.bundle.T(l.lang, key)
}

// Toggle returns the next locale, wrapping around.
func (l Locale) Toggle() Locale {
	langs := l.bundle.langs
	i := slices.Index(langs, l.lang)
	return Locale{bundle: l.bundle, lang: langs[(i+1)%len(langs)]}
}
