package store

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/readykit/pkg/types"
)

func roundTrip[T any](t *testing.T, a *Adapter, key string, want T) {
	t.Helper()
	require.NoError(t, Write(a, key, want))
	var zero T
	got := Read(a, key, zero)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%s round trip mismatch (-want +got):\n%s", key, diff)
	}
}

func TestAdapterRoundTrip(t *testing.T) {
	a := NewAdapter(NewMemory(0), nil)

	roundTrip(t, a, types.KeyChecklistItems, []types.ChecklistCategory{
		{ID: 1, Name: "Water & Hydration", Items: []types.ChecklistItem{
			{ID: "water-1", Text: "Water", Quantity: 3},
			{ID: "water-2", Text: "Water filter", Completed: true, Quantity: 1},
		}},
	})
	roundTrip(t, a, types.KeyPantryItems, []types.PantryItem{
		{ID: "p1", Name: "Rice", Category: types.PantryGrainsPasta, Quantity: 10, Unit: "pounds", ExpiryDate: "2026-03-20", MinQuantity: 5, Notes: "Long grain"},
	})
	roundTrip(t, a, types.KeyContacts, []types.EmergencyContact{
		{ID: "c1", Name: "Nearest Hospital", Relationship: types.RelMedical, Phone: "(555) 123-4567", IsEmergencyContact: true},
	})
	roundTrip(t, a, types.KeyBooks, []types.Book{
		{ID: "b1", Title: "Where There Is No Doctor", Author: "David Werner", Category: types.BookMedical, IsEssential: true},
	})
	roundTrip(t, a, types.KeyFrequencies, []types.HamFrequency{
		{ID: "h1", Frequency: "146.52 MHz", Description: "National Calling Frequency", Location: types.HamEmergencyComms, IsEmergency: true},
	})
	roundTrip(t, a, types.KeyDocuments, []types.Document{
		{ID: "d1", Name: "Passport", Category: types.DocPersonalID, Location: "Safe", IsDigital: false},
	})
	roundTrip(t, a, types.KeyFamilyInfo, types.FamilyInfo{Adults: 2, Children: 1, Pets: 1, EmergencyPlan: "Meet at the school"})
	roundTrip(t, a, types.KeyMetricsSettings, types.MetricsSettings{Volume: "liters", Weight: "kilograms", Temperature: "celsius", Distance: "kilometers"})
	roundTrip(t, a, types.KeyTheme, types.ThemeDark)
}

func TestAdapterReadFallback(t *testing.T) {
	t.Run("untouched key returns fallback", func(t *testing.T) {
		a := NewAdapter(NewMemory(0), nil)
		fallback := []types.Book{{ID: "1", Title: "SAS Survival Handbook"}}
		got := Read(a, types.KeyBooks, fallback)
		assert.Equal(t, fallback, got)

		var serr *types.StorageError
		require.True(t, errors.As(a.LastError(), &serr))
		assert.Equal(t, types.OpRead, serr.Op)
		assert.ErrorIs(t, serr, types.ErrKeyNotFound)
	})

	t.Run("unparsable value returns fallback", func(t *testing.T) {
		mem := NewMemory(0)
		require.NoError(t, mem.Set(context.Background(), types.KeyFamilyInfo, "{not json"))
		a := NewAdapter(mem, nil)

		got := Read(a, types.KeyFamilyInfo, types.DefaultFamilyInfo)
		assert.Equal(t, types.DefaultFamilyInfo, got)
		assert.Error(t, a.LastError())
	})

	t.Run("wrong shape returns fallback", func(t *testing.T) {
		mem := NewMemory(0)
		require.NoError(t, mem.Set(context.Background(), types.KeyBooks, `{"title":"not a list"}`))
		a := NewAdapter(mem, nil)

		got := Read(a, types.KeyBooks, []types.Book{})
		assert.Empty(t, got)
	})
}

func TestAdapterWriteFailureKeepsPriorValue(t *testing.T) {
	a := NewAdapter(NewMemory(64), nil)
	require.NoError(t, Write(a, types.KeyTheme, types.ThemeDark))

	err := Write(a, types.KeyTheme, types.Theme(strings.Repeat("x", 100)))
	var serr *types.StorageError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, types.OpWrite, serr.Op)
	assert.ErrorIs(t, err, types.ErrQuotaExceeded)
	assert.Equal(t, err, a.LastError())

	assert.Equal(t, types.ThemeDark, Read(a, types.KeyTheme, types.ThemeLight))

	// A later successful write clears the transient error.
	require.NoError(t, Write(a, types.KeyTheme, types.ThemeSystem))
	assert.NoError(t, a.LastError())
}

func TestAdapterWriteAll(t *testing.T) {
	a := NewAdapter(NewMemory(0), nil)
	require.NoError(t, a.WriteAll(map[string]any{
		types.KeyTheme:      types.ThemeDark,
		types.KeyFamilyInfo: types.FamilyInfo{Adults: 1},
	}))
	assert.Equal(t, types.ThemeDark, Read(a, types.KeyTheme, types.ThemeLight))
	assert.Equal(t, 1, Read(a, types.KeyFamilyInfo, types.DefaultFamilyInfo).Adults)
	assert.True(t, a.Has(types.KeyTheme))

	require.NoError(t, a.Delete(types.KeyTheme))
	assert.False(t, a.Has(types.KeyTheme))
}
