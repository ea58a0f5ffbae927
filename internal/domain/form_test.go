package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendorhub/internal/domain"
)

func TestForm_CloneIsIndependent(t *testing.T) {
	f := domain.NewForm()
	f.Set("company_name", domain.Text("Acme"))

	c := f.Clone()
	c.Set("company_name", domain.Text("Other"))
	c.Set("nda", domain.Bool(true))

	v, _ := f.Get("company_name")
	assert.Equal(t, "Acme", v.Text)
	_, ok := f.Get("nda")
	assert.False(t, ok)
	assert.Equal(t, 1, f.Len())
}

func TestForm_JSONRoundTripPreservesKinds(t *testing.T) {
	f := domain.NewForm()
	f.Set("company_name", domain.Text("Acme"))
	f.Set("year_established", domain.Number(2010))
	f.Set("nda", domain.Bool(true))

	b, err := json.Marshal(f)
	require.NoError(t, err)

	got := domain.NewForm()
	require.NoError(t, json.Unmarshal(b, got))

	v, _ := got.Get("year_established")
	assert.Equal(t, domain.NumberValue, v.Kind)
	assert.Equal(t, 2010.0, v.Num)

	v, _ = got.Get("nda")
	assert.Equal(t, domain.BoolValue, v.Kind)
	assert.True(t, v.Bool)

	v, _ = got.Get("company_name")
	assert.Equal(t, domain.TextValue, v.Kind)
}

func TestForm_UnmarshalDropsNulls(t *testing.T) {
	f := domain.NewForm()
	require.NoError(t, json.Unmarshal([]byte(`{"website": null, "company_name": "Acme"}`), f))

	_, ok := f.Get("website")
	assert.False(t, ok)
	assert.Equal(t, 1, f.Len())
}

func TestValue_Empty(t *testing.T) {
	assert.True(t, domain.Text("").Empty())
	assert.True(t, domain.Text("   ").Empty())
	assert.False(t, domain.Text("x").Empty())
	assert.False(t, domain.Bool(false).Empty(), "an unchecked flag is present, not missing")
	assert.False(t, domain.Number(0).Empty())
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "2010", domain.Number(2010).String())
	assert.Equal(t, "2010.5", domain.Number(2010.5).String())
	assert.Equal(t, "true", domain.Bool(true).String())
	assert.Equal(t, "hi", domain.Text("hi").String())
}
