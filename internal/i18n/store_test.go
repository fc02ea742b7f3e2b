package i18n

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyayasetu/nyayasetu/internal/core/domain"
)

func TestStore_DefaultsToEnglish(t *testing.T) {
	s, err := NewStore("")
	require.NoError(t, err)

	assert.Equal(t, English, s.Locale())
	assert.Equal(t, "Dashboard", s.T("dashboard"))
	assert.Equal(t, "Welcome to NyayaSetu", s.T("welcomeTitle"))
}

func TestStore_SetLocaleSwitchesImmediately(t *testing.T) {
	s, err := NewStore(English)
	require.NoError(t, err)

	require.NoError(t, s.SetLocale(Hindi))
	assert.Equal(t, "डैशबोर्ड", s.T("dashboard"))

	require.NoError(t, s.SetLocale(English))
	assert.Equal(t, "Dashboard", s.T("dashboard"))
}

func TestStore_UnknownKeyTranslatesToItself(t *testing.T) {
	s, err := NewStore(English)
	require.NoError(t, err)

	for _, l := range Supported {
		require.NoError(t, s.SetLocale(l))
		assert.Equal(t, "unknown_key_xyz", s.T("unknown_key_xyz"), "locale %s", l)
		assert.Equal(t, "", s.T(""), "locale %s", l)
	}
}

func TestStore_RejectsUnsupportedLocale(t *testing.T) {
	s, err := NewStore(Hindi)
	require.NoError(t, err)

	err = s.SetLocale("fr")
	assert.True(t, errors.Is(err, domain.ErrUnsupportedLocale))
	assert.Equal(t, Hindi, s.Locale())

	_, err = NewStore("fr")
	assert.ErrorIs(t, err, domain.ErrUnsupportedLocale)
}

func TestStore_TablesShareKeys(t *testing.T) {
	s, err := NewStore(English)
	require.NoError(t, err)

	for key := range s.tables[English] {
		_, ok := s.tables[Hindi][key]
		assert.True(t, ok, "hindi table is missing %q", key)
	}
	assert.Len(t, s.tables[Hindi], len(s.tables[English]))
}

func TestStore_Pinned(t *testing.T) {
	s, err := NewStore(English)
	require.NoError(t, err)

	hi, err := s.Translator(Hindi)
	require.NoError(t, err)
	assert.Equal(t, "मेनू", hi.T("menu"))
	assert.Equal(t, "Menu", s.T("menu"))
}

func TestNegotiate(t *testing.T) {
	cases := map[string]Locale{
		"":                        English,
		"hi-IN,hi;q=0.9,en;q=0.8": Hindi,
		"en-GB,en;q=0.9":          English,
		"fr-FR,fr;q=0.9":          English,
		"de;q=0.5, hi;q=0.7":      Hindi,
	}
	for header, want := range cases {
		assert.Equal(t, want, Negotiate(header), "header %q", header)
	}
}
