// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	b, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "es"}, b.Languages())
	assert.Equal(t, "Services", b.T("en", "services"))
	assert.Equal(t, "Servicios", b.T("es", "services"))
}

func TestLocaleTablesHaveSameKeys(t *testing.T) {
	b := MustLoad()
	for key := range b.tables["en"] {
		_, ok := b.tables["es"][key]
		assert.True(t, ok, "es is missing %q", key)
	}
	for key := range b.tables["es"] {
		_, ok := b.tables["en"][key]
		assert.True(t, ok, "en is missing %q", key)
	}
}

func TestT_Fallback(t *testing.T) {
	fsys := fstest.MapFS{
		"loc/en.yaml": {Data: []byte("hello: Hello\nonly_en: English only\n")},
		"loc/es.yaml": {Data: []byte("hello: Hola\n")},
	}
	b, err := LoadFS(fsys, "loc", "en")
	require.NoError(t, err)

	assert.Equal(t, "Hola", b.T("es", "hello"))
	assert.Equal(t, "English only", b.T("es", "only_en"))
	assert.Equal(t, "missing_key", b.T("es", "missing_key"))
	assert.Equal(t, "Hello", b.T("fr", "hello"))
}

func TestLoadFS_Errors(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{}, "loc", "en")
	assert.ErrorIs(t, err, ErrNoLocales)

	_, err = LoadFS(fstest.MapFS{"loc/es.yaml": {Data: []byte("a: b\n")}}, "loc", "en")
	assert.Error(t, err)

	_, err = LoadFS(fstest.MapFS{"loc/en.yaml": {Data: []byte("a: [\n")}}, "loc", "en")
	assert.Error(t, err)
}

func TestLocale_Toggle(t *testing.T) {
	b := MustLoad()

	en := b.Locale("en")
	es := en.Toggle()
	assert.Equal(t, "es", es.Lang())
	assert.Equal(t, "en", es.Toggle().Lang())
	assert.Equal(t, "en", en.Lang(), "toggle must not change the original")

	assert.Equal(t, "en", b.Locale("de").Lang())
	assert.Equal(t, "Enviar", b.Locale("es").T("send"))
}

func TestMatch(t *testing.T) {
	b := MustLoad()

	tests := []struct {
		header string
		want   string
	}{
		{"", "en"},
		{"es-CO,es;q=0.9,en;q=0.8", "es"},
		{"en-US,en;q=0.9", "en"},
		{"fr-FR", "en"},
		{"de;q=0.9,es;q=0.5", "es"},
		{";;;garbage", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Match(tt.header))
		})
	}
}
