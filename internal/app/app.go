// Package app wires the store adapter, every repository and the user
// preferences into one explicitly constructed App.
package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/readykit/internal/repo"
	"github.com/mesh-intelligence/readykit/internal/store"
	"github.com/mesh-intelligence/readykit/pkg/types"
)

// App is the application state: repositories plus theme, family and unit
// preferences. It is not safe for concurrent use.
type App struct {
	adapter *store.Adapter
	log     *zap.Logger
	quota   int64

	Checklist   *repo.Checklist
	Pantry      *repo.Pantry
	Contacts    *repo.Contacts
	Books       *repo.Books
	Frequencies *repo.Frequencies
	Documents   *repo.Documents

	theme   types.Theme
	family  types.FamilyInfo
	metrics types.MetricsSettings
}

// Option configures an App.
type Option func(*App)

// WithQuota sets the byte limit StorageUsage reports against.
func WithQuota(n int64) Option {
	return func(a *App) { a.quota = n }
}

// New loads every repository and preference from s. A nil logger discards
// log output.
func New(s types.Store, log *zap.Logger, opts ...Option) *App {
	if log == nil {
		log = zap.NewNop()
	}
	ad := store.NewAdapter(s, log)
	a := &App{
		adapter:     ad,
		log:         log,
		quota:       types.DefaultQuotaBytes,
		Checklist:   repo.NewChecklist(ad),
		Pantry:      repo.NewPantry(ad),
		Contacts:    repo.NewContacts(ad),
		Books:       repo.NewBooks(ad),
		Frequencies: repo.NewFrequencies(ad),
		Documents:   repo.NewDocuments(ad),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.loadPreferences()
	// Missing keys on first run are expected.
	ad.ClearError()
	return a
}

func (a *App) loadPreferences() {
	a.theme = store.Read(a.adapter, types.KeyTheme, types.DefaultTheme)
	a.family = store.Read(a.adapter, types.KeyFamilyInfo, types.DefaultFamilyInfo)
	a.metrics = store.Read(a.adapter, types.KeyMetricsSettings, types.DefaultMetricsSettings)
}

// Adapter returns the typed store adapter shared by the repositories.
func (a *App) Adapter() *store.Adapter { return a.adapter }

// Store returns the underlying key-value store.
func (a *App) Store() types.Store { return a.adapter.Store() }

// Reload re-reads every repository and preference. Call it after anything
// writes to the store behind the App's back, such as an import.
func (a *App) Reload() {
	a.Checklist.Reload()
	a.Pantry.Reload()
	a.Contacts.Reload()
	a.Books.Reload()
	a.Frequencies.Reload()
	a.Documents.Reload()
	a.loadPreferences()
	a.log.Debug("application state reloaded")
}

// Theme returns the display theme.
func (a *App) Theme() types.Theme { return a.theme }

// SetTheme validates and stores the display theme.
func (a *App) SetTheme(t types.Theme) error {
	if err := t.Validate(); err != nil {
		return err
	}
	a.theme = t
	return store.Write(a.adapter, types.KeyTheme, t)
}

// FamilyInfo returns the household details.
func (a *App) FamilyInfo() types.FamilyInfo { return a.family }

// UpdateFamilyInfo merges p into the household details and stores them.
func (a *App) UpdateFamilyInfo(p types.FamilyInfoPatch) error {
	p.Apply(&a.family)
	return store.Write(a.adapter, types.KeyFamilyInfo, a.family)
}

// Metrics returns the unit preferences.
func (a *App) Metrics() types.MetricsSettings { return a.metrics }

// UpdateMetrics merges p into the unit preferences. An invalid unit leaves
// the preferences unchanged.
func (a *App) UpdateMetrics(p types.MetricsSettingsPatch) error {
	next := a.metrics
	p.Apply(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	a.metrics = next
	return store.Write(a.adapter, types.KeyMetricsSettings, next)
}

// LastError returns the most recent storage error, if any.
func (a *App) LastError() error { return a.adapter.LastError() }

// Usage reports how much of the storage quota is in use.
type Usage struct {
	Used    int64 `json:"used"`
	Quota   int64 `json:"quota"`
	Percent int   `json:"percent"`
	Warning bool  `json:"warning"`
}

// StorageUsage measures the store. Warning is set once usage reaches
// types.QuotaWarningBytes, or 90% of a smaller custom quota.
func (a *App) StorageUsage(ctx context.Context) (Usage, error) {
	used, err := a.Store().Size(ctx)
	if err != nil {
		return Usage{}, err
	}
	u := Usage{Used: used, Quota: a.quota}
	if a.quota > 0 {
		u.Percent = int(used * 100 / a.quota)
		threshold := min(types.QuotaWarningBytes, a.quota*9/10)
		u.Warning = used >= threshold
	}
	return u, nil
}

// Close closes the underlying store.
func (a *App) Close() error {
	return a.Store().Close()
}
