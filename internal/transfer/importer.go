package transfer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/readykit/internal/app"
	"github.com/mesh-intelligence/readykit/internal/store"
	"github.com/mesh-intelligence/readykit/pkg/types"
)

// snapshotKeys maps backup fields to store keys in write order.
var snapshotKeys = []struct {
	field string
	key   string
}{
	{"familyInfo", types.KeyFamilyInfo},
	{"checklistItems", types.KeyChecklistItems},
	{"pantryItems", types.KeyPantryItems},
	{"books", types.KeyBooks},
	{"contacts", types.KeyContacts},
	{"frequencies", types.KeyFrequencies},
	{"documents", types.KeyDocuments},
	{"metricsSettings", types.KeyMetricsSettings},
}

// backup is a parsed import: the typed snapshot plus the raw value of each
// present field, which is what gets stored.
type backup struct {
	snap types.Snapshot
	raw  map[string]json.RawMessage
}

func parse(data []byte) (backup, error) {
	var b backup
	if err := json.Unmarshal(data, &b.raw); err != nil {
		return b, fmt.Errorf("%w: %v", types.ErrInvalidFormat, err)
	}
	for _, field := range []string{"familyInfo", "checklistItems"} {
		if !b.present(field) {
			return b, fmt.Errorf("%w: missing %s", types.ErrInvalidFormat, field)
		}
	}
	// Decode field by field with exact key names; the writer stores the
	// same raw entries.
	targets := map[string]any{
		"familyInfo":      &b.snap.FamilyInfo,
		"checklistItems":  &b.snap.ChecklistItems,
		"pantryItems":     &b.snap.PantryItems,
		"books":           &b.snap.Books,
		"contacts":        &b.snap.Contacts,
		"frequencies":     &b.snap.Frequencies,
		"documents":       &b.snap.Documents,
		"metricsSettings": &b.snap.MetricsSettings,
		"exportDate":      &b.snap.ExportDate,
		"appVersion":      &b.snap.AppVersion,
	}
	for field, dst := range targets {
		if !b.present(field) {
			continue
		}
		if err := json.Unmarshal(b.raw[field], dst); err != nil {
			return b, fmt.Errorf("%w: %s: %v", types.ErrInvalidFormat, field, err)
		}
	}
	return b, nil
}

// present reports whether field carries a non-null value.
func (b backup) present(field string) bool {
	v, ok := b.raw[field]
	return ok && !bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// Parse validates a JSON backup. Input that is not a JSON object, or that
// lacks familyInfo or checklistItems, fails with types.ErrInvalidFormat.
// Field names are matched exactly; unknown fields are ignored.
func Parse(data []byte) (types.Snapshot, error) {
	b, err := parse(data)
	return b.snap, err
}

// State is a step of the import lifecycle.
type State int

const (
	Idle State = iota
	Reading
	Parsed
	ParseFailed
	Applied
	ReloadPending
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Reading:
		return "reading"
	case Parsed:
		return "parsed"
	case ParseFailed:
		return "parse_failed"
	case Applied:
		return "applied"
	case ReloadPending:
		return "reload_pending"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Result describes an applied import.
type Result struct {
	Snapshot types.Snapshot
	Counts   Counts
	// Written lists the store keys that were replaced.
	Written []string
}

// Importer applies JSON backups to an App.
//
// By default each present field is written to its key independently: a
// failure on one key does not stop the others and nothing is rolled back.
// With Atomic set, every value goes through one Store.SetMany so the import
// lands entirely or not at all.
type Importer struct {
	app *app.App
	log *zap.Logger

	Atomic bool
	// OnTransition, if set, observes every state change.
	OnTransition func(from, to State)

	state State
}

// NewImporter returns an idle importer for a.
func NewImporter(a *app.App, log *zap.Logger) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{app: a, log: log}
}

// State returns the current lifecycle state.
func (im *Importer) State() State { return im.state }

func (im *Importer) transition(to State) {
	from := im.state
	im.state = to
	im.log.Debug("import state", zap.Stringer("from", from), zap.Stringer("to", to))
	if im.OnTransition != nil {
		im.OnTransition(from, to)
	}
}

// Import reads a backup from r, writes it to the store and reloads the app.
// On a parse failure nothing is written. When some keys fail to write in
// non-atomic mode the returned Result lists the keys that did succeed and the
// error joins the failures.
func (im *Importer) Import(ctx context.Context, r io.Reader) (Result, error) {
	im.transition(Reading)
	data, err := io.ReadAll(r)
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		im.transition(Idle)
		return Result{}, fmt.Errorf("reading backup: %w", err)
	}

	b, err := parse(data)
	if err != nil {
		im.transition(ParseFailed)
		im.log.Warn("import rejected", zap.Error(err))
		im.transition(Idle)
		return Result{}, err
	}
	im.transition(Parsed)

	res := Result{Snapshot: b.snap, Counts: CountOf(b.snap)}
	var applyErr error
	if im.Atomic {
		res.Written, applyErr = im.applyAtomic(b)
	} else {
		res.Written, applyErr = im.applyEach(b)
	}
	im.transition(Applied)

	im.transition(ReloadPending)
	im.app.Reload()
	im.transition(Idle)

	im.log.Info("import applied", zap.Strings("keys", res.Written), zap.Bool("atomic", im.Atomic))
	return res, applyErr
}

func (im *Importer) applyEach(b backup) ([]string, error) {
	var written []string
	var errs []error
	for _, sk := range snapshotKeys {
		if !b.present(sk.field) {
			continue
		}
		if err := store.Write(im.app.Adapter(), sk.key, b.raw[sk.field]); err != nil {
			errs = append(errs, err)
			continue
		}
		written = append(written, sk.key)
	}
	return written, errors.Join(errs...)
}

func (im *Importer) applyAtomic(b backup) ([]string, error) {
	values := make(map[string]any)
	var keys []string
	for _, sk := range snapshotKeys {
		if !b.present(sk.field) {
			continue
		}
		values[sk.key] = b.raw[sk.field]
		keys = append(keys, sk.key)
	}
	if err := im.app.Adapter().WriteAll(values); err != nil {
		return nil, err
	}
	return keys, nil
}
