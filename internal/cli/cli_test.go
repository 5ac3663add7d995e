package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/readykit/internal/repo"
	"github.com/mesh-intelligence/readykit/internal/transfer"
	"github.com/mesh-intelligence/readykit/internal/views"
	"github.com/mesh-intelligence/readykit/pkg/types"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type fakeClipboard struct{ text string }

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

type fakePrinter struct{ html []byte }

func (p *fakePrinter) PrintPDF(_ context.Context, html []byte) ([]byte, error) {
	p.html = html
	return []byte("%PDF-1.4 fake"), nil
}

// harness runs commands against one config and data directory, so state
// persists between invocations like it does between real runs.
type harness struct {
	t         *testing.T
	configDir string
	dataDir   string
	now       time.Time
	clip      *fakeClipboard
	printer   *fakePrinter
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	for _, env := range []string{"READYKIT_BACKEND", "READYKIT_QUOTA_BYTES", "READYKIT_LOG_LEVEL", "READYKIT_REDIS_ADDR"} {
		t.Setenv(env, "")
	}
	return &harness{
		t:         t,
		configDir: t.TempDir(),
		dataDir:   t.TempDir(),
		now:       time.Date(2026, 10, 19, 10, 30, 0, 0, time.UTC),
		clip:      &fakeClipboard{},
		printer:   &fakePrinter{},
	}
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	r := &runner{
		log:       zap.NewNop(),
		now:       func() time.Time { return h.now },
		clipboard: h.clip,
		printer:   h.printer,
	}
	cmd := newRootCmd(r)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(bytes.NewReader(nil))
	cmd.SetArgs(append([]string{"--config-dir", h.configDir, "--data-dir", h.dataDir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	out, err := h.run(args...)
	require.NoError(h.t, err, "output: %s", out)
	return out
}

func (h *harness) runJSON(v any, args ...string) {
	h.t.Helper()
	out := h.mustRun(append([]string{"--json"}, args...)...)
	require.NoError(h.t, json.Unmarshal([]byte(out), v), "output: %s", out)
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun("version")
	assert.Equal(t, "readykit "+types.AppVersion+"\n", out)
}

func TestInitWritesDefaultConfig(t *testing.T) {
	h := newHarness(t)
	out := h.mustRun("init")
	assert.Contains(t, out, "readykit initialized")

	data, err := os.ReadFile(filepath.Join(h.configDir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend: file")
	assert.Contains(t, string(data), "quota_bytes: 5242880")

	// A second init keeps the user's file.
	require.NoError(t, os.WriteFile(filepath.Join(h.configDir, "config.yaml"), []byte("backend: memory\n"), 0o644))
	out = h.mustRun("init")
	assert.Contains(t, out, "Backend: memory")
}

func TestInvalidConfigIsUserError(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(filepath.Join(h.configDir, "config.yaml"), []byte("backend: redis\n"), 0o644))

	_, err := h.run("stats")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrRedisAddrEmpty)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestChecklistCommands(t *testing.T) {
	h := newHarness(t)

	h.mustRun("checklist", "check", "1", "water-1")
	h.mustRun("checklist", "check", "1", "water-2")
	h.mustRun("checklist", "uncheck", "1", "water-2")
	h.mustRun("checklist", "qty", "1", "water-1", "6")

	var rep progressReport
	h.runJSON(&rep, "checklist", "progress")
	assert.Equal(t, 166, rep.Overall.Total)
	assert.Equal(t, 1, rep.Overall.Completed)
	require.Len(t, rep.Categories, 10)
	assert.Equal(t, repo.Stats{Total: 8, Completed: 1, Percent: 13}, rep.Categories[0].Stats)

	var cats []types.ChecklistCategory
	h.runJSON(&cats, "checklist", "list", "--category", "1")
	require.Len(t, cats, 1)
	assert.True(t, cats[0].Items[0].Completed)
	assert.Equal(t, 6, cats[0].Items[0].Quantity)

	var toggled types.ChecklistItem
	h.runJSON(&toggled, "checklist", "toggle", "1", "water-3")
	assert.True(t, toggled.Completed)
	h.runJSON(&toggled, "checklist", "toggle", "1", "water-3")
	assert.False(t, toggled.Completed)
	_, err := h.run("checklist", "toggle", "1", "nope")
	assert.ErrorIs(t, err, types.ErrNotFound)

	h.mustRun("checklist", "reset")
	h.runJSON(&cats, "checklist", "list", "--category", "1")
	assert.False(t, cats[0].Items[0].Completed)
	assert.Equal(t, 6, cats[0].Items[0].Quantity)

	out := h.mustRun("checklist", "list", "--category", "1")
	assert.Contains(t, out, "Water & Hydration (0/8, 0%)")
	assert.Contains(t, out, "Water purification tablet")
}

func TestChecklistErrors(t *testing.T) {
	h := newHarness(t)
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown item", []string{"checklist", "check", "1", "nope"}, types.ErrNotFound},
		{"unknown category", []string{"checklist", "list", "--category", "99"}, types.ErrNotFound},
		{"bad category id", []string{"checklist", "check", "one", "water-1"}, nil},
		{"negative quantity", []string{"checklist", "qty", "1", "water-1", "-2"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.run(tt.args...)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
			assert.Equal(t, exitUserError, exitCode(err))
		})
	}
}

func TestPantryLifecycle(t *testing.T) {
	h := newHarness(t)

	var seeded []pantryView
	h.runJSON(&seeded, "pantry", "list")
	require.Len(t, seeded, 8)

	var added types.PantryItem
	h.runJSON(&added, "pantry", "add",
		"--name", "Lentils", "--category", "grains & pasta",
		"--quantity", "2", "--unit", "lbs", "--expiry", "2026-10-22", "--min", "4")
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, types.PantryGrainsPasta, added.Category)

	var found []pantryView
	h.runJSON(&found, "pantry", "list", "--search", "lentil")
	require.Len(t, found, 1)
	assert.True(t, found[0].Low)
	require.NotNil(t, found[0].Expiry)
	assert.Equal(t, 3, found[0].Expiry.Days)

	var expiring []pantryView
	h.runJSON(&expiring, "pantry", "expiring", "--within", "7")
	ids := make([]string, len(expiring))
	for i, v := range expiring {
		ids[i] = v.ID
	}
	assert.Contains(t, ids, added.ID)

	var low []pantryView
	h.runJSON(&low, "pantry", "low")
	assert.NotEmpty(t, low)

	var updated types.PantryItem
	h.runJSON(&updated, "pantry", "update", added.ID, "--quantity", "10")
	assert.Equal(t, 10.0, updated.Quantity)
	assert.Equal(t, "Lentils", updated.Name)
	assert.Equal(t, "2026-10-22", updated.ExpiryDate)

	out := h.mustRun("pantry", "delete", added.ID)
	assert.Contains(t, out, "Deleted 1 pantry item")

	_, err := h.run("pantry", "delete", added.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestPantryListSortAndGroup(t *testing.T) {
	h := newHarness(t)

	var sorted []pantryView
	h.runJSON(&sorted, "pantry", "list", "--sort", "quantity", "--desc")
	require.NotEmpty(t, sorted)
	for i := 1; i < len(sorted); i++ {
		assert.GreaterOrEqual(t, sorted[i-1].Quantity, sorted[i].Quantity)
	}

	out := h.mustRun("pantry", "list", "--group")
	assert.Contains(t, out, "Canned Goods (")

	_, err := h.run("pantry", "list", "--sort", "color")
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestPantryAddValidation(t *testing.T) {
	h := newHarness(t)
	tests := []struct {
		name string
		args []string
	}{
		{"missing name", []string{"--expiry", "2027-01-01"}},
		{"missing expiry", []string{"--name", "Beans"}},
		{"bad date", []string{"--name", "Beans", "--expiry", "next week"}},
		{"bad category", []string{"--name", "Beans", "--expiry", "2027-01-01", "--category", "Candy"}},
		{"negative quantity", []string{"--name", "Beans", "--expiry", "2027-01-01", "--quantity", "-1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.run(append([]string{"pantry", "add"}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, exitUserError, exitCode(err))
		})
	}
}

func TestCollectionCommands(t *testing.T) {
	h := newHarness(t)

	var c types.EmergencyContact
	h.runJSON(&c, "contacts", "add", "--name", "Dr. Smith", "--relationship", "doctor",
		"--phone", "555-0101", "--email", "smith@example.com", "--emergency")
	assert.Equal(t, types.RelDoctor, c.Relationship)

	var contacts []types.EmergencyContact
	h.runJSON(&contacts, "contacts", "list", "--search", "smith")
	require.Len(t, contacts, 1)
	assert.Equal(t, c.ID, contacts[0].ID)

	var b types.Book
	h.runJSON(&b, "books", "add", "--title", "Where There Is No Doctor", "--category", "Medical", "--essential")
	var f types.HamFrequency
	h.runJSON(&f, "frequencies", "add", "--frequency", "146.520 MHz", "--type", "Emergency Communications")
	var d types.Document
	h.runJSON(&d, "documents", "add", "--name", "Passports", "--category", "Personal ID", "--location", "Safe")

	var docs []types.Document
	h.runJSON(&docs, "documents", "list")
	require.Len(t, docs, 1)

	out := h.mustRun("books", "delete", b.ID, "missing")
	assert.Contains(t, out, "Deleted 1 book")
	out = h.mustRun("frequencies", "list", "--search", "146.520")
	assert.Contains(t, out, "146.520 MHz")

	long := "Top drawer of the grey filing cabinet in the garage, behind the tax folders"
	h.mustRun("documents", "add", "--name", "Deed", "--notes", long)
	out = h.mustRun("documents", "list", "--search", "deed")
	assert.Contains(t, out, views.Truncate(long, noteWidth))
	assert.NotContains(t, out, "tax folders")

	var none []types.Document
	h.runJSON(&none, "documents", "list", "--search", "lease")
	assert.Empty(t, none)
}

func TestContactAddValidation(t *testing.T) {
	h := newHarness(t)
	tests := []struct {
		name string
		args []string
	}{
		{"missing phone", []string{"--name", "Ann"}},
		{"bad phone", []string{"--name", "Ann", "--phone", "call me"}},
		{"bad email", []string{"--name", "Ann", "--phone", "555-0101", "--email", "ann@"}},
		{"bad relationship", []string{"--name", "Ann", "--phone", "555-0101", "--relationship", "Nemesis"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.run(append([]string{"contacts", "add"}, tt.args...)...)
			require.Error(t, err)
			assert.Equal(t, exitUserError, exitCode(err))
		})
	}
}

func TestFamilyAndSettings(t *testing.T) {
	h := newHarness(t)

	var fam types.FamilyInfo
	h.runJSON(&fam, "family", "show")
	assert.Equal(t, types.DefaultFamilyInfo, fam)

	h.runJSON(&fam, "family", "set", "--children", "3", "--plan", "Meet at the library")
	assert.Equal(t, types.FamilyInfo{Adults: 2, Children: 3, EmergencyPlan: "Meet at the library"}, fam)

	_, err := h.run("family", "set", "--pets", "-1")
	assert.Equal(t, exitUserError, exitCode(err))

	h.mustRun("settings", "theme", "dark")
	var prefs preferences
	h.runJSON(&prefs, "settings", "units", "--volume", "liters")
	assert.Equal(t, types.ThemeDark, prefs.Theme)
	assert.Equal(t, "liters", prefs.Metrics.Volume)
	assert.Equal(t, "pounds", prefs.Metrics.Weight)

	_, err = h.run("settings", "theme", "neon")
	assert.ErrorIs(t, err, types.ErrInvalidTheme)
	assert.Equal(t, exitUserError, exitCode(err))

	_, err = h.run("settings", "units", "--distance", "leagues")
	assert.ErrorIs(t, err, types.ErrInvalidUnit)

	h.runJSON(&prefs, "settings", "show")
	assert.Equal(t, "miles", prefs.Metrics.Distance)
}

func TestExportFormats(t *testing.T) {
	h := newHarness(t)
	outDir := t.TempDir()

	for _, f := range transfer.Formats {
		t.Run(string(f), func(t *testing.T) {
			out := h.mustRun("export", "--format", string(f), "--out", outDir)
			path := filepath.Join(outDir, transfer.FileName(f, h.now))
			assert.Contains(t, out, path)
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
	assert.Contains(t, string(h.printer.html), "<html")

	_, err := h.run("export", "--format", "docx")
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestExportToStdoutAndClipboard(t *testing.T) {
	h := newHarness(t)

	out := h.mustRun("export", "--format", "json", "--out", "-")
	snap, err := transfer.Parse([]byte(out))
	require.NoError(t, err)
	assert.Len(t, snap.PantryItems, 8)
	assert.Equal(t, "2026-10-19T10:30:00.000Z", snap.ExportDate)

	h.mustRun("export", "--clipboard")
	clipped, err := transfer.Parse([]byte(h.clip.text))
	require.NoError(t, err)
	assert.Equal(t, snap, clipped)
}

func TestImportRestoresBackup(t *testing.T) {
	h := newHarness(t)
	outDir := t.TempDir()

	h.mustRun("checklist", "check", "2", "food-1")
	h.mustRun("export", "--out", outDir)
	backup := filepath.Join(outDir, transfer.FileName(transfer.FormatJSON, h.now))

	h.mustRun("checklist", "reset")
	h.mustRun("pantry", "delete", "1", "2", "3")

	var counts transfer.Counts
	h.runJSON(&counts, "import", backup)
	assert.Equal(t, 8, counts.PantryItems)
	assert.Equal(t, 166, counts.ChecklistItems)

	var pantry []pantryView
	h.runJSON(&pantry, "pantry", "list")
	assert.Len(t, pantry, 8)
	var rep progressReport
	h.runJSON(&rep, "checklist", "progress")
	assert.Equal(t, 1, rep.Overall.Completed)
}

func TestImportConvertsUnitsOnList(t *testing.T) {
	h := newHarness(t)
	backup := filepath.Join(t.TempDir(), "backup.json")
	doc := map[string]any{
		"familyInfo": types.DefaultFamilyInfo,
		"checklistItems": []types.ChecklistCategory{{ID: 1, Name: "Water", Items: []types.ChecklistItem{
			{ID: "w1", Text: "1 gallon of water per person per day", Quantity: 1},
		}}},
		"metricsSettings": types.MetricsSettings{Volume: "liters", Weight: "kilograms", Temperature: "celsius", Distance: "kilometers"},
	}
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(backup, data, 0o644))

	out := h.mustRun("import", "--atomic", backup)
	assert.Contains(t, out, "Imported 3 of 3 collections")

	var cats []types.ChecklistCategory
	h.runJSON(&cats, "checklist", "list")
	require.Len(t, cats, 1)
	assert.Equal(t, "1 liter of water per person per day", cats[0].Items[0].Text)
}

func TestImportRejectsInvalidBackup(t *testing.T) {
	h := newHarness(t)
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"familyInfo":{"adults":1}}`), 0o644))

	_, err := h.run("import", bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidFormat)
	assert.Equal(t, exitUserError, exitCode(err))

	_, err = h.run("import", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestStats(t *testing.T) {
	h := newHarness(t)
	h.mustRun("checklist", "check", "1", "water-1")

	var rep statsReport
	h.runJSON(&rep, "stats")
	assert.Equal(t, 166, rep.Counts.ChecklistItems)
	assert.Equal(t, 8, rep.Counts.PantryItems)
	assert.Equal(t, 1, rep.Checklist.Completed)
	assert.Positive(t, rep.Storage.Used)
	assert.Equal(t, types.DefaultQuotaBytes, rep.Storage.Quota)
	assert.False(t, rep.Storage.Warning)
	assert.Equal(t, []string{types.KeyChecklistItems}, rep.Stored)

	out := h.mustRun("stats")
	assert.Contains(t, out, "of 5.0 MiB")
	assert.Contains(t, out, "Saved: 1 of 9")
}

func TestQuotaExceededIsSystemError(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, os.WriteFile(filepath.Join(h.configDir, "config.yaml"), []byte("backend: file\nquota_bytes: 64\n"), 0o644))

	_, err := h.run("checklist", "check", "1", "water-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrQuotaExceeded)
	assert.Equal(t, exitSysError, exitCode(err))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, exitSuccess},
		{"plain", errors.New("boom"), exitUserError},
		{"user", userErr(errors.New("bad flag")), exitUserError},
		{"system", sysErr(errors.New("disk")), exitSysError},
		{"storage", fmt.Errorf("wrapped: %w", &types.StorageError{Op: types.OpWrite, Key: "k", Err: types.ErrQuotaExceeded}), exitSysError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestImportHelpNamesRequiredFields(t *testing.T) {
	cmd := newImportCmd(&runner{})
	assert.Contains(t, cmd.Long, "familyInfo and checklistItems")
}
