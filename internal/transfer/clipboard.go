package transfer

import (
	"bytes"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/mesh-intelligence/readykit/pkg/types"
)

// Clipboard receives exported text.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard is the desktop clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard. Failures wrap
// types.ErrClipboard.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no clipboard utility found", types.ErrClipboard)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", types.ErrClipboard, err)
	}
	return nil
}

// CopyJSON places the JSON backup of snap on c.
func CopyJSON(c Clipboard, snap types.Snapshot) error {
	var buf bytes.Buffer
	if err := ExportJSON(&buf, snap); err != nil {
		return err
	}
	return c.WriteAll(buf.String())
}
