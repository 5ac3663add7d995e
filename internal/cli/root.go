// Package cli implements the readykit command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/readykit/internal/app"
	"github.com/mesh-intelligence/readykit/internal/logging"
	"github.com/mesh-intelligence/readykit/internal/paths"
	"github.com/mesh-intelligence/readykit/internal/store"
	"github.com/mesh-intelligence/readykit/internal/transfer"
	"github.com/mesh-intelligence/readykit/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

// runner carries the state shared by every subcommand of one invocation.
type runner struct {
	flags     rootFlags
	configDir string
	cfg       settings
	log       *zap.Logger

	now       func() time.Time
	clipboard transfer.Clipboard
	// printer overrides the Chrome printer built from config.
	printer transfer.Printer
}

// NewRootCmd creates the top-level "readykit" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&runner{
		log:       zap.NewNop(),
		now:       time.Now,
		clipboard: transfer.SystemClipboard{},
	})
}

func newRootCmd(r *runner) *cobra.Command {
	root := &cobra.Command{
		Use:   "readykit",
		Short: "Household emergency preparedness tracker",
		Long: `readykit keeps a family's emergency preparedness plan: a supplies
checklist, pantry stock with expiry dates, emergency contacts, reference
books, radio frequencies and the whereabouts of important documents.`,
		Version:           types.AppVersion,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.setup,
	}

	root.PersistentFlags().StringVar(&r.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/readykit)")
	root.PersistentFlags().StringVar(&r.flags.dataDir, "data-dir", "", "data directory (default: $XDG_DATA_HOME/readykit)")
	root.PersistentFlags().BoolVar(&r.flags.jsonMode, "json", false, "output as JSON")

	root.AddCommand(
		newVersionCmd(),
		newInitCmd(r),
		newChecklistCmd(r),
		newPantryCmd(r),
		newContactsCmd(r),
		newBooksCmd(r),
		newFrequenciesCmd(r),
		newDocumentsCmd(r),
		newFamilyCmd(r),
		newSettingsCmd(r),
		newExportCmd(r),
		newImportCmd(r),
		newStatsCmd(r),
	)
	return root
}

// Execute runs the root command and exits with the matching code.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
		os.Exit(exitCode(err))
	}
}

// setup resolves directories, loads config.yaml and builds the logger.
func (r *runner) setup(cmd *cobra.Command, _ []string) error {
	configDir, err := paths.ResolveConfigDir(r.flags.configDir)
	if err != nil {
		return sysErr(fmt.Errorf("resolve config dir: %w", err))
	}
	v, err := loadConfig(configDir)
	if err != nil {
		return sysErr(err)
	}
	cfg, err := readSettings(v, r.flags.dataDir)
	if err != nil {
		return userErr(err)
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return userErr(err)
	}
	r.configDir = configDir
	r.cfg = cfg
	r.log = log.With(zap.String("command", cmd.CommandPath()))
	return nil
}

// open connects to the configured store and loads the application state.
// The caller must Close the App.
func (r *runner) open(cmd *cobra.Command) (*app.App, error) {
	s, err := store.Open(cmd.Context(), r.cfg.Store, r.log)
	if err != nil {
		if errors.Is(err, types.ErrBackendUnknown) || errors.Is(err, types.ErrBackendEmpty) {
			return nil, userErr(err)
		}
		return nil, sysErr(fmt.Errorf("open %s store: %w", r.cfg.Store.Backend, err))
	}
	return app.New(s, r.log, app.WithQuota(r.cfg.Store.QuotaBytes)), nil
}

// parseChoice matches value against set ignoring case and returns the
// canonical spelling.
func parseChoice[S ~string](name, value string, set []S) (S, error) {
	for _, s := range set {
		if strings.EqualFold(string(s), value) {
			return s, nil
		}
	}
	opts := make([]string, len(set))
	for i, s := range set {
		opts[i] = string(s)
	}
	return "", userErr(fmt.Errorf("invalid %s %q (choose from: %s)", name, value, strings.Join(opts, ", ")))
}

// withApp opens the App, runs fn and closes the App again.
func (r *runner) withApp(cmd *cobra.Command, fn func(*app.App) error) (err error) {
	a, err := r.open(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); cerr != nil && err == nil {
			err = sysErr(fmt.Errorf("close store: %w", cerr))
		}
	}()
	return fn(a)
}

// cliError attaches an exit code to an error.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func userErr(err error) error { return &cliError{code: exitUserError, err: err} }
func sysErr(err error) error  { return &cliError{code: exitSysError, err: err} }

// exitCode maps err to a process exit code. Storage failures are system
// errors; everything else, including cobra's flag and argument errors, is
// the user's to fix.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	var se *types.StorageError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}

// writeErr wraps a repository persistence failure.
func writeErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, types.ErrQuotaExceeded) {
		return sysErr(fmt.Errorf("%w (export a backup and remove old entries)", err))
	}
	return sysErr(err)
}
