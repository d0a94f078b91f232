// Package linear renders option trees, search results and selections as
// plain lines for pipes and CI.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/muesli/termenv"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/core/ports"
	"go.trai.ch/cascade/internal/ui/output"
	"go.trai.ch/cascade/internal/ui/style"
	"go.trai.ch/zerr"
)

const indent = "  "

// Renderer writes results to stdout and hints to stderr.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer
	output *termenv.Output

	mu sync.Mutex
}

// NewRenderer creates a Renderer using the non-interactive color profile.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	return NewRendererWithProfile(stdout, stderr, output.ColorProfileANSI)
}

// NewRendererWithProfile creates a Renderer with a custom color profile.
func NewRendererWithProfile(stdout, stderr io.Writer, profileFn func() termenv.Profile) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Renderer{
		stdout: stdout,
		stderr: stderr,
		output: output.NewWithProfile(stdout, profileFn),
	}
}

// Tree prints the option tree, one node per line, indented by depth. With
// checkboxes set every node is prefixed by its tri-state box.
func (r *Renderer) Tree(options []domain.Option, checked domain.KeySet, checkboxes bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var walk func([]domain.Option, int)
	walk = func(level []domain.Option, depth int) {
		for _, o := range level {
			var b strings.Builder
			b.WriteString(strings.Repeat(indent, depth))
			if checkboxes {
				b.WriteString(r.box(domain.NodeCheckedStatus(o, checked)))
				b.WriteByte(' ')
			}
			b.WriteString(domain.Label(o))
			if key := o.Value.String(); o.HasLabel && key != "" && key != o.Label {
				b.WriteString(" " + r.faint("("+key+")"))
			}
			if o.Disabled {
				b.WriteString(" " + r.faint("disabled"))
			}
			r.line(r.stdout, b.String())
			walk(o.Children, depth+1)
		}
	}
	walk(options, 0)
}

// Results prints one search result per line. An empty list prints notFound
// to stderr.
func (r *Renderer) Results(results []domain.PathTuple, separator, notFound string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(results) == 0 {
		r.line(r.stderr, r.faint(notFound))
		return
	}
	for _, t := range results {
		text := domain.DisplayText(t.Path, separator)
		if blocked(t.Path) {
			text += " " + r.faint("disabled")
		}
		r.line(r.stdout, text)
	}
}

// Selection prints the display text of a committed selection, one entry per
// line. An empty selection prints placeholder to stderr.
func (r *Renderer) Selection(result *ports.PickResult, placeholder string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if result.Empty() {
		r.line(r.stderr, r.faint(placeholder))
		return
	}
	for _, text := range result.Texts {
		r.line(r.stdout, text)
	}
}

// Tuples prints the display text of chosen dropdown items.
func (r *Renderer) Tuples(items []domain.PathTuple, separator string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range items {
		r.line(r.stdout, domain.DisplayText(t.Path, separator))
	}
}

// Entry is the JSON form of one selected or matched path.
type Entry struct {
	Value    []any    `json:"value"`
	Labels   []string `json:"labels"`
	Disabled bool     `json:"disabled,omitempty"`
}

// NewEntry converts a path to its JSON form.
func NewEntry(path domain.Path) Entry {
	keys := domain.ValueFromPath(path)
	value := make([]any, len(keys))
	for i, k := range keys {
		value[i] = k.Any()
	}
	return Entry{Value: value, Labels: domain.LabelsFromPath(path), Disabled: blocked(path)}
}

// SelectionJSON prints the selection as JSON: one object in single mode, an
// array in multiple mode.
func (r *Renderer) SelectionJSON(result *ports.PickResult) error {
	if result != nil && result.Multiple {
		return r.TuplesJSON(result.Paths)
	}
	entry := Entry{Value: []any{}, Labels: []string{}}
	if !result.Empty() {
		entry = NewEntry(result.Paths[0])
	}
	return r.writeJSON(entry)
}

// TuplesJSON prints paths as a JSON array.
func (r *Renderer) TuplesJSON(paths []domain.Path) error {
	entries := make([]Entry, len(paths))
	for i, p := range paths {
		entries[i] = NewEntry(p)
	}
	return r.writeJSON(entries)
}

func (r *Renderer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode result")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.line(r.stdout, string(data))
	return nil
}

func (r *Renderer) box(status domain.CheckedStatus) string {
	switch status {
	case domain.Checked:
		return output.Paint(r.output, style.BoxChecked, style.Accent)
	case domain.Indeterminate:
		return output.Paint(r.output, style.BoxIndeterminate, style.Yellow)
	default:
		return style.BoxUnchecked
	}
}

func (r *Renderer) faint(s string) string {
	return output.Paint(r.output, s, style.Muted)
}

func (r *Renderer) line(w io.Writer, s string) {
	_, _ = fmt.Fprintln(w, s)
}

func blocked(path domain.Path) bool {
	for _, o := range path {
		if o.Disabled {
			return true
		}
	}
	return false
}
