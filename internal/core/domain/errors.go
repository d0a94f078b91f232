package domain

import "go.trai.ch/zerr"

var (
	// ErrOptionsNotFound is returned when no options file can be discovered.
	ErrOptionsNotFound = zerr.New("could not find an options file")

	// ErrOptionsReadFailed is returned when the options file cannot be read.
	ErrOptionsReadFailed = zerr.New("failed to read options file")

	// ErrOptionsParseFailed is returned when the options file cannot be decoded.
	ErrOptionsParseFailed = zerr.New("failed to parse options file")

	// ErrUnsupportedFormat is returned for an options file extension that has no decoder.
	ErrUnsupportedFormat = zerr.New("unsupported options file format, expected .yaml, .yml or .json")

	// ErrInvalidOptionValue is returned when an option value is neither a string nor a number.
	ErrInvalidOptionValue = zerr.New("option value must be a string or a number")

	// ErrInvalidOptionNode is returned when an entry of an options list is not a mapping.
	ErrInvalidOptionNode = zerr.New("option must be a mapping")

	// ErrInvalidExpandTrigger is returned for an expand trigger other than click or hover.
	ErrInvalidExpandTrigger = zerr.New("invalid expand trigger, expected 'click' or 'hover'")

	// ErrInvalidDisplayStrategy is returned for a display strategy other than child or parent.
	ErrInvalidDisplayStrategy = zerr.New("invalid display strategy, expected 'child' or 'parent'")

	// ErrInvalidValuePath is reported when a value path does not resolve in the option tree.
	ErrInvalidValuePath = zerr.New("value path does not resolve")

	// ErrSelectionAborted is returned when the user leaves a picker without confirming.
	ErrSelectionAborted = zerr.New("selection aborted")

	// ErrNoQuery is returned when search is invoked without a query.
	ErrNoQuery = zerr.New("no search query specified")

	// ErrClipboardUnavailable is returned when the system clipboard cannot be written.
	ErrClipboardUnavailable = zerr.New("clipboard is unavailable")

	// ErrInvalidMode is returned for an output mode other than auto, tui, linear or ci.
	ErrInvalidMode = zerr.New("invalid mode, expected 'auto', 'tui', 'linear' or 'ci'")

	// ErrUnknownMatcher is returned for a matcher name other than substring or fuzzy.
	ErrUnknownMatcher = zerr.New("unknown matcher, expected 'substring' or 'fuzzy'")

	// ErrNotInteractive is returned when a prompt is required but no terminal is attached.
	ErrNotInteractive = zerr.New("interactive selection requires a terminal")

	// ErrPickerFailed is returned when the interactive picker terminates with an error.
	ErrPickerFailed = zerr.New("picker failed")
)
