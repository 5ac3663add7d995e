package views

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/readykit/pkg/types"
)

func TestProgress(t *testing.T) {
	tests := []struct {
		completed, total, want int
	}{
		{0, 0, 0},
		{3, 10, 30},
		{10, 10, 100},
		{1, 3, 33},
		{2, 3, 67},
		{3, 8, 38},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Progress(tt.completed, tt.total), "Progress(%d, %d)", tt.completed, tt.total)
	}
}

func TestExpiry(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry string
		want   ExpiryStatus
	}{
		{"today is expiring", "2026-10-19", ExpiryStatus{LevelExpiring, 0}},
		{"tomorrow", "2026-10-20", ExpiryStatus{LevelExpiring, 1}},
		{"seven days", "2026-10-26", ExpiryStatus{LevelExpiring, 7}},
		{"eight days is warning", "2026-10-27", ExpiryStatus{LevelWarning, 8}},
		{"thirty days", "2026-11-18", ExpiryStatus{LevelWarning, 30}},
		{"thirty one days is good", "2026-11-19", ExpiryStatus{LevelGood, 31}},
		{"yesterday is expired one day", "2026-10-18", ExpiryStatus{LevelExpired, 1}},
		{"rfc3339 accepted", "2026-10-29T10:30:00Z", ExpiryStatus{LevelWarning, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expiry(tt.expiry, now)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid date", func(t *testing.T) {
		_, err := Expiry("next tuesday", now)
		assert.Error(t, err)
	})
}

func TestExpiryUsesNowLocation(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	// 01:00 local on the 19th is still the 18th in UTC.
	now := time.Date(2026, 10, 19, 1, 0, 0, 0, loc)
	got, err := Expiry("2026-10-19", now)
	require.NoError(t, err)
	assert.Equal(t, ExpiryStatus{LevelExpiring, 0}, got)
}

func pantry() []types.PantryItem {
	return []types.PantryItem{
		{ID: "1", Name: "Canned Beans", Category: types.PantryCannedGoods, Quantity: 6, MinQuantity: 2, ExpiryDate: "2026-10-20"},
		{ID: "2", Name: "Rice", Category: types.PantryGrainsPasta, Quantity: 3, MinQuantity: 5, ExpiryDate: "2027-03-20", Notes: "Long grain white rice"},
		{ID: "3", Name: "Canned Tuna", Category: types.PantryCannedGoods, Quantity: 2, MinQuantity: 2, ExpiryDate: "2026-09-01"},
		{ID: "4", Name: "Crackers", Category: types.PantrySnacks, Quantity: 0, MinQuantity: 1, ExpiryDate: "bad"},
	}
}

func ids(items []types.PantryItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestFilterBySearch(t *testing.T) {
	name := func(p types.PantryItem) string { return p.Name }
	notes := func(p types.PantryItem) string { return p.Notes }

	assert.Equal(t, []string{"1", "3"}, ids(FilterBySearch(pantry(), "CANNED", name)))
	assert.Equal(t, []string{"2"}, ids(FilterBySearch(pantry(), "white", name, notes)))
	assert.Empty(t, FilterBySearch(pantry(), "white", name))
	assert.Len(t, FilterBySearch(pantry(), "   ", name), 4)
}

func TestGroupBy(t *testing.T) {
	groups := GroupBy(pantry(), func(p types.PantryItem) string { return string(p.Category) })
	require.Len(t, groups, 3)
	assert.Equal(t, "Canned Goods", groups[0].Key)
	assert.Equal(t, []string{"1", "3"}, ids(groups[0].Items))
	assert.Equal(t, "Grains & Pasta", groups[1].Key)
	assert.Equal(t, "Snacks", groups[2].Key)
}

func TestSortBy(t *testing.T) {
	in := pantry()
	before := pantry()

	byCategory := SortBy(in, func(p types.PantryItem) string { return string(p.Category) }, Asc)
	// Stable: the two canned goods keep their relative order.
	assert.Equal(t, []string{"1", "3", "2", "4"}, ids(byCategory))

	byQty := SortBy(in, func(p types.PantryItem) float64 { return p.Quantity }, Desc)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(byQty))

	if diff := cmp.Diff(before, in); diff != "" {
		t.Errorf("SortBy mutated its input (-want +got):\n%s", diff)
	}
}

func TestParseDirection(t *testing.T) {
	d, ok := ParseDirection("DESC")
	assert.True(t, ok)
	assert.Equal(t, Desc, d)
	_, ok = ParseDirection("sideways")
	assert.False(t, ok)
}

func TestLowStockAndExpiringSoon(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, []string{"2", "4"}, ids(LowStock(pantry())))
	assert.Equal(t, []string{"1", "3"}, ids(ExpiringSoon(pantry(), now, ExpiringWithin)))
}

func TestConvertUnitText(t *testing.T) {
	assert.Equal(t, "1 liter per person per day", ConvertUnitText("1 gallon per person per day", "liters"))
	assert.Equal(t, "5 quarts", ConvertUnitText("5 gallons", "quarts"))
	assert.Equal(t, "5 gallons", ConvertUnitText("5 gallons", "gallons"))
	assert.Equal(t, "Water filter", ConvertUnitText("Water filter", "liters"))
}

func TestTextHelpers(t *testing.T) {
	assert.True(t, ValidEmail("doctor@medicalclinic.com"))
	assert.False(t, ValidEmail("doctor@clinic"))
	assert.False(t, ValidEmail("a b@c.com"))

	assert.True(t, ValidPhone("(555) 123-4567"))
	assert.True(t, ValidPhone("911"))
	assert.True(t, ValidPhone("+44 20 7946 0958"))
	assert.False(t, ValidPhone("91"))
	assert.False(t, ValidPhone("call me"))

	assert.Equal(t, "Where...", Truncate("Where There Is No Doctor", 5))
	assert.Equal(t, "Rice", Truncate("Rice", 5))
	assert.Equal(t, "...", Truncate("Rice", -3))
	assert.Equal(t, "", Truncate("", -1))

	assert.Equal(t, "item", Pluralize("item", 1))
	assert.Equal(t, "items", Pluralize("item", 0))

	assert.Equal(t, "0 B", FormatBytes(0))
	assert.Equal(t, "5.0 MiB", FormatBytes(types.DefaultQuotaBytes))
}
