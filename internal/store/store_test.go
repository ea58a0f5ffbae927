package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendorhub/internal/domain"
	"vendorhub/internal/store"
)

func TestPrefStore_SetGetRemove(t *testing.T) {
	s := store.NewPrefStore(t.TempDir())

	_, ok, err := s.Get(store.RememberMeKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(store.RememberMeKey, "true"))

	v, ok, err := s.Get(store.RememberMeKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	require.NoError(t, s.Remove(store.RememberMeKey))
	_, ok, err = s.Get(store.RememberMeKey)
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing a missing key is not an error.
	require.NoError(t, s.Remove(store.RememberMeKey))
}

func TestPrefStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s := store.NewPrefStore(dir)
	require.NoError(t, s.Set(store.RememberMeKey, "true"))
	require.NoError(t, s.Set("theme", "dark"))

	reopened := store.NewPrefStore(dir)
	v, ok, err := reopened.Get(store.RememberMeKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "true", v)

	v, ok, err = reopened.Get("theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", v)
}

func TestDraftStore_Lifecycle(t *testing.T) {
	dir := t.TempDir()
	s := store.NewDraftStore(dir)

	_, ok, err := s.Load()
	require.NoError(t, err)
	assert.False(t, ok, "no draft saved yet")

	form := domain.NewForm()
	form.Set("company_name", domain.Text("Acme Components Pvt Ltd"))
	form.Set("year_established", domain.Number(2010))
	form.Set("nda", domain.Bool(true))
	require.NoError(t, s.Save(form))

	loaded, ok, err := store.NewDraftStore(dir).Load()
	require.NoError(t, err)
	require.True(t, ok)

	v, present := loaded.Get("company_name")
	require.True(t, present)
	assert.Equal(t, "Acme Components Pvt Ltd", v.Text)

	v, present = loaded.Get("year_established")
	require.True(t, present)
	assert.Equal(t, domain.NumberValue, v.Kind)
	assert.Equal(t, 2010.0, v.Num)

	v, present = loaded.Get("nda")
	require.True(t, present)
	assert.Equal(t, domain.BoolValue, v.Kind)
	assert.True(t, v.Bool)

	require.NoError(t, s.Clear())
	_, ok, err = s.Load()
	require.NoError(t, err)
	assert.False(t, ok, "draft discarded on confirmed success")

	// Clearing twice is fine.
	require.NoError(t, s.Clear())
}
