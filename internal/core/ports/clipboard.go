package ports

// Clipboard defines the interface for the system clipboard.
//
//go:generate mockgen -source=clipboard.go -destination=mocks/mock_clipboard.go -package=mocks
type Clipboard interface {
	// Write replaces the clipboard content with text.
	Write(text string) error
}
