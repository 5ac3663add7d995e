package app

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/readykit/internal/store"
	"github.com/mesh-intelligence/readykit/pkg/types"
)

func TestNewUsesDefaults(t *testing.T) {
	a := New(store.NewMemory(0), nil)

	assert.Equal(t, types.ThemeLight, a.Theme())
	assert.Equal(t, types.DefaultFamilyInfo, a.FamilyInfo())
	assert.Equal(t, types.DefaultMetricsSettings, a.Metrics())
	assert.Equal(t, 8, a.Pantry.Len())
	assert.Len(t, a.Checklist.Categories(), 10)
	assert.NoError(t, a.LastError())
}

func TestPreferencesPersist(t *testing.T) {
	mem := store.NewMemory(0)
	a := New(mem, nil)

	require.NoError(t, a.SetTheme(types.ThemeDark))
	require.NoError(t, a.UpdateFamilyInfo(types.FamilyInfoPatch{Children: types.Ptr(2), Pets: types.Ptr(1)}))
	require.NoError(t, a.UpdateMetrics(types.MetricsSettingsPatch{Volume: types.Ptr("liters")}))

	b := New(mem, nil)
	assert.Equal(t, types.ThemeDark, b.Theme())
	assert.Equal(t, 5, b.FamilyInfo().Total())
	assert.Equal(t, "liters", b.Metrics().Volume)
	assert.Equal(t, "pounds", b.Metrics().Weight)
}

func TestPreferenceValidation(t *testing.T) {
	a := New(store.NewMemory(0), nil)

	err := a.SetTheme("sepia")
	assert.ErrorIs(t, err, types.ErrInvalidTheme)
	assert.Equal(t, types.ThemeLight, a.Theme())

	err = a.UpdateMetrics(types.MetricsSettingsPatch{Volume: types.Ptr("liters"), Distance: types.Ptr("leagues")})
	assert.ErrorIs(t, err, types.ErrInvalidUnit)
	assert.Equal(t, types.DefaultMetricsSettings, a.Metrics())
}

func TestReloadPicksUpExternalWrites(t *testing.T) {
	mem := store.NewMemory(0)
	a := New(mem, nil)

	other := store.NewAdapter(mem, nil)
	require.NoError(t, store.Write(other, types.KeyTheme, types.ThemeSystem))
	require.NoError(t, store.Write(other, types.KeyBooks, []types.Book{}))

	assert.Equal(t, types.ThemeLight, a.Theme())
	a.Reload()
	assert.Equal(t, types.ThemeSystem, a.Theme())
	assert.Equal(t, 0, a.Books.Len())
}

func TestStorageUsage(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory(0)
	a := New(mem, nil, WithQuota(100))

	u, err := a.StorageUsage(ctx)
	require.NoError(t, err)
	assert.Equal(t, Usage{Used: 0, Quota: 100}, u)

	require.NoError(t, mem.Set(ctx, "theme", `"`+strings.Repeat("x", 88)+`"`))
	u, err = a.StorageUsage(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(95), u.Used)
	assert.Equal(t, 95, u.Percent)
	assert.True(t, u.Warning)
}
