package ui

import "xmind2zentao/internal/domain"

// Viewer displays import rows in an interactive TUI
type Viewer interface {
	View(source string, rows []domain.Row) error
}
