package tui

import "go.trai.ch/cascade/internal/core/domain"

// ReloadMsg replaces the option tree of a running cascader.
type ReloadMsg struct {
	Options []domain.Option
}
