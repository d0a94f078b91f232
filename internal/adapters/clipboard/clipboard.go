// Package clipboard copies committed selections to the system clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Clipboard = (*System)(nil)

// System writes to the operating system clipboard.
type System struct {
	write       func(string) error
	unsupported bool
}

// New returns a clipboard backed by the platform's copy utility.
func New() *System {
	return &System{write: clipboard.WriteAll, unsupported: clipboard.Unsupported}
}

// NewWithWriter returns a clipboard that hands text to write.
func NewWithWriter(write func(string) error) *System {
	return &System{write: write}
}

// Write puts text on the clipboard.
func (s *System) Write(text string) error {
	if s.unsupported || s.write == nil {
		return domain.ErrClipboardUnavailable
	}
	if err := s.write(text); err != nil {
		return zerr.Wrap(err, domain.ErrClipboardUnavailable.Error())
	}
	return nil
}
