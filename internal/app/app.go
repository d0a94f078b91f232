// Package app implements the application layer for cascade.
package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"go.trai.ch/cascade/internal/adapters/detector"
	"go.trai.ch/cascade/internal/adapters/linear"
	"go.trai.ch/cascade/internal/adapters/matcher"
	"go.trai.ch/cascade/internal/adapters/telemetry"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/cascade/internal/core/ports"
	"go.trai.ch/cascade/internal/engine/session"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// valueSeparator splits a --value or --checked argument into keys.
const valueSeparator = "/"

// App represents the main application logic.
type App struct {
	loader      ports.OptionsLoader
	logger      ports.Logger
	tracer      ports.Tracer
	clipboard   ports.Clipboard
	watcher     ports.Watcher
	interactive ports.Picker
	fallback    ports.Picker

	renderer *linear.Renderer
	detect   func() detector.OutputMode
	workDir  func() (string, error)

	mu       sync.Mutex
	shutdown func(context.Context) error
}

// New creates a new App instance. interactive runs in a terminal, fallback
// everywhere else.
func New(
	loader ports.OptionsLoader,
	log ports.Logger,
	tracer ports.Tracer,
	clip ports.Clipboard,
	watcher ports.Watcher,
	interactive ports.Picker,
	fallback ports.Picker,
) *App {
	return &App{
		loader:      loader,
		logger:      log,
		tracer:      tracer,
		clipboard:   clip,
		watcher:     watcher,
		interactive: interactive,
		fallback:    fallback,
		renderer:    linear.NewRenderer(os.Stdout, os.Stderr),
		detect:      detector.DetectEnvironment,
		workDir:     os.Getwd,
	}
}

// WithRenderer replaces the renderer used for results.
// This is primarily used for testing to capture output.
func (a *App) WithRenderer(r *linear.Renderer) *App {
	a.renderer = r
	return a
}

// WithDetector replaces terminal detection.
func (a *App) WithDetector(detect func() detector.OutputMode) *App {
	a.detect = detect
	return a
}

// WithWorkDir fixes the directory options files are discovered from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = func() (string, error) { return dir, nil }
	return a
}

// GlobalOptions are the flags shared by every command.
type GlobalOptions struct {
	LogJSON bool
	Trace   bool
}

type jsonSwitch interface {
	SetJSON(enable bool)
}

// Configure applies the global flags. With Trace set, finished spans are
// reported through the logger until Shutdown.
func (a *App) Configure(opts GlobalOptions) {
	if l, ok := a.logger.(jsonSwitch); ok {
		l.SetJSON(opts.LogJSON)
	}
	if opts.Trace {
		a.mu.Lock()
		a.shutdown = telemetry.Install(a.logger)
		a.mu.Unlock()
	}
}

// Shutdown flushes the trace provider installed by Configure.
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.Lock()
	shutdown := a.shutdown
	a.shutdown = nil
	a.mu.Unlock()

	if shutdown == nil {
		return nil
	}
	return shutdown(ctx)
}

// SettingsOverrides are command-line values that replace options-file
// settings. Nil fields keep the file's value.
type SettingsOverrides struct {
	Multiple        *bool
	ChangeOnSelect  *bool
	ShowSearch      *bool
	ExpandTrigger   *string
	DisplayStrategy *string
	Separator       *string
	Placeholder     *string
}

func (o SettingsOverrides) apply(s domain.Settings) (domain.Settings, error) {
	if o.Multiple != nil {
		s.Multiple = *o.Multiple
	}
	if o.ChangeOnSelect != nil {
		s.ChangeOnSelect = *o.ChangeOnSelect
	}
	if o.ShowSearch != nil {
		s.ShowSearch = *o.ShowSearch
	}
	if o.ExpandTrigger != nil {
		trigger, err := domain.ParseExpandTrigger(*o.ExpandTrigger)
		if err != nil {
			return s, zerr.With(err, "expand_trigger", *o.ExpandTrigger)
		}
		s.ExpandTrigger = trigger
	}
	if o.DisplayStrategy != nil {
		strategy, err := domain.ParseDisplayStrategy(*o.DisplayStrategy)
		if err != nil {
			return s, zerr.With(err, "display_strategy", *o.DisplayStrategy)
		}
		s.DisplayStrategy = strategy
	}
	if o.Separator != nil {
		s.Separator = *o.Separator
	}
	if o.Placeholder != nil {
		s.Placeholder = *o.Placeholder
	}
	return s, nil
}

// loaded is an options file with the command-line overrides applied.
type loaded struct {
	path     string
	catalog  *domain.Catalog
	settings domain.Settings
}

func (l loaded) config(matcherName string) (session.Config, error) {
	cfg := session.ConfigFromSettings(l.catalog.Options, l.settings)
	if matcherName != "" {
		filter, err := matcher.ByName(matcherName)
		if err != nil {
			return cfg, err
		}
		cfg.Filter = filter
	}
	return cfg, nil
}

// load discovers (unless file is set) and decodes the options file.
func (a *App) load(ctx context.Context, file string, overrides SettingsOverrides) (loaded, error) {
	_, span := a.tracer.Start(ctx, "load")
	defer span.End()

	path := file
	if path == "" {
		cwd, err := a.workDir()
		if err != nil {
			span.RecordError(err)
			return loaded{}, zerr.Wrap(err, "failed to get working directory")
		}
		path, err = a.loader.Discover(cwd)
		if err != nil {
			span.RecordError(err)
			return loaded{}, err
		}
	}
	span.SetAttribute("path", path)

	catalog, err := a.loader.Load(path)
	if err != nil {
		span.RecordError(err)
		return loaded{}, zerr.Wrap(err, "failed to load options")
	}

	settings, err := overrides.apply(catalog.Settings)
	if err != nil {
		span.RecordError(err)
		return loaded{}, err
	}
	span.SetAttribute("options", len(catalog.Options))
	return loaded{path: path, catalog: catalog, settings: settings}, nil
}

// picker returns the picker for the resolved output mode.
func (a *App) picker(outputMode string) (ports.Picker, detector.OutputMode, error) {
	override, err := detector.ParseMode(outputMode)
	if err != nil {
		return nil, detector.ModeAuto, err
	}
	mode := detector.ResolveMode(a.detect(), override)
	if mode == detector.ModeTUI {
		return a.interactive, mode, nil
	}
	return a.fallback, mode, nil
}

// parseValues turns "a/b" arguments into value arrays. Arguments that do not
// resolve in options are reported and dropped.
func (a *App) parseValues(options []domain.Option, raw []string) [][]domain.Key {
	values := make([][]domain.Key, 0, len(raw))
	for _, r := range raw {
		value := domain.ParseValuePath(r, valueSeparator)
		if len(value) == 0 {
			continue
		}
		if domain.FindPathByValue(options, value) == nil {
			a.logger.Warn(fmt.Sprintf("%s: %s", domain.ErrInvalidValuePath.Error(), r))
			continue
		}
		values = append(values, value)
	}
	return values
}

// PickOptions configuration for the Pick method.
type PickOptions struct {
	File       string
	Overrides  SettingsOverrides
	Value      []string
	Matcher    string
	Watch      bool
	Copy       bool
	OutputMode string
	JSON       bool
}

// Pick runs the cascader and prints the committed selection.
func (a *App) Pick(ctx context.Context, opts PickOptions) error {
	ctx, span := a.tracer.Start(ctx, "pick")
	defer span.End()

	l, err := a.load(ctx, opts.File, opts.Overrides)
	if err != nil {
		return err
	}
	cfg, err := l.config(opts.Matcher)
	if err != nil {
		return err
	}
	picker, mode, err := a.picker(opts.OutputMode)
	if err != nil {
		return err
	}
	span.SetAttribute("mode", mode.String())
	span.SetAttribute("multiple", cfg.Multiple)

	value := session.DefaultValue(cfg.Multiple, l.catalog.DefaultValue)
	if len(opts.Value) > 0 {
		value = session.DefaultValue(cfg.Multiple, a.parseValues(cfg.Options, opts.Value))
	}

	req := ports.PickRequest{
		Config:      cfg,
		Value:       value,
		Placeholder: l.settings.Placeholder,
		NotFound:    l.settings.NotFoundContent,
	}

	var result *ports.PickResult
	if opts.Watch && mode == detector.ModeTUI {
		result, err = a.pickWatching(ctx, picker, req, l.path)
	} else {
		result, err = picker.Pick(ctx, req)
	}
	if err != nil {
		span.RecordError(err)
		return err
	}
	span.SetAttribute("selected", len(result.Paths))

	if opts.JSON {
		if err := a.renderer.SelectionJSON(result); err != nil {
			return err
		}
	} else {
		a.renderer.Selection(result, l.settings.Placeholder)
	}

	if opts.Copy && !result.Empty() {
		if err := a.clipboard.Write(strings.Join(result.Texts, "\n")); err != nil {
			a.logger.Warn("failed to copy selection: " + err.Error())
		}
	}
	return nil
}

// pickWatching runs picker while the options file is watched. Every change
// is decoded and pushed into the running picker. Reload failures keep the
// previous options and are reported once the picker has exited, since the
// picker owns the terminal until then.
func (a *App) pickWatching(ctx context.Context, picker ports.Picker, req ports.PickRequest, path string) (*ports.PickResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	watchCtx, stopWatching := context.WithCancel(ctx)
	defer stopWatching()

	if err := a.watcher.Start(watchCtx, path); err != nil {
		return nil, zerr.Wrap(err, "failed to watch options file")
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	reload := make(chan []domain.Option)
	req.Reload = reload

	var (
		mu       sync.Mutex
		failures []string
	)
	g.Go(func() error {
		for event := range a.watcher.Events() {
			if event.Operation == ports.OpRemove {
				mu.Lock()
				failures = append(failures, "options file was removed: "+event.Path)
				mu.Unlock()
				continue
			}
			catalog, err := a.loader.Load(event.Path)
			if err != nil {
				mu.Lock()
				failures = append(failures, "reload failed: "+err.Error())
				mu.Unlock()
				continue
			}
			select {
			case reload <- catalog.Options:
			case <-watchCtx.Done():
				return nil
			}
		}
		return nil
	})

	var result *ports.PickResult
	g.Go(func() error {
		defer stopWatching()
		var err error
		result, err = picker.Pick(ctx, req)
		return err
	})

	err := g.Wait()
	for _, msg := range failures {
		a.logger.Warn(msg)
	}
	return result, err
}

// SearchOptions configuration for the Search method.
type SearchOptions struct {
	File      string
	Query     string
	Overrides SettingsOverrides
	Matcher   string
	JSON      bool
}

// Search prints the option paths matching a query.
func (a *App) Search(ctx context.Context, opts SearchOptions) error {
	ctx, span := a.tracer.Start(ctx, "search")
	defer span.End()

	if strings.TrimSpace(opts.Query) == "" {
		return domain.ErrNoQuery
	}
	span.SetAttribute("query", opts.Query)

	l, err := a.load(ctx, opts.File, opts.Overrides)
	if err != nil {
		return err
	}
	cfg, err := l.config(opts.Matcher)
	if err != nil {
		return err
	}

	results := domain.FilterOptionsWith(cfg.Options, opts.Query, cfg.ChangeOnSelect, cfg.Filter)
	if opts.Matcher == string(matcher.NameFuzzy) {
		ranked := matcher.Rank(opts.Query, results)
		results = make([]domain.PathTuple, len(ranked))
		for i, r := range ranked {
			results[i] = r.Tuple
		}
	}
	span.SetAttribute("results", len(results))

	if opts.JSON {
		paths := make([]domain.Path, len(results))
		for i, t := range results {
			paths[i] = t.Path
		}
		return a.renderer.TuplesJSON(paths)
	}
	a.renderer.Results(results, l.settings.Separator, l.settings.NotFoundContent)
	return nil
}

// SelectOptions configuration for the Select method.
type SelectOptions struct {
	File       string
	Overrides  SettingsOverrides
	OutputMode string
	JSON       bool
}

// Select runs the flat dropdown over the selectable paths and prints the
// chosen ones.
func (a *App) Select(ctx context.Context, opts SelectOptions) error {
	ctx, span := a.tracer.Start(ctx, "select")
	defer span.End()

	l, err := a.load(ctx, opts.File, opts.Overrides)
	if err != nil {
		return err
	}
	picker, _, err := a.picker(opts.OutputMode)
	if err != nil {
		return err
	}

	items := []domain.PathTuple{}
	for _, t := range domain.Flatten(l.catalog.Options, nil) {
		if l.settings.ChangeOnSelect || domain.IsLeaf(t.Option) {
			items = append(items, t)
		}
	}
	span.SetAttribute("items", len(items))

	chosen, err := picker.Select(ctx, ports.SelectRequest{
		Items:       items,
		Multiple:    l.settings.Multiple,
		Placeholder: l.settings.Placeholder,
		NotFound:    l.settings.NotFoundContent,
	})
	if err != nil {
		span.RecordError(err)
		return err
	}

	if opts.JSON {
		paths := make([]domain.Path, len(chosen))
		for i, t := range chosen {
			paths[i] = t.Path
		}
		return a.renderer.TuplesJSON(paths)
	}
	a.renderer.Tuples(chosen, l.settings.Separator)
	return nil
}

// TreeOptions configuration for the Tree method.
type TreeOptions struct {
	File    string
	Checked []string
}

// Tree prints the option tree. Checked paths, or a multiple-mode file, add
// tri-state checkboxes.
func (a *App) Tree(ctx context.Context, opts TreeOptions) error {
	ctx, span := a.tracer.Start(ctx, "tree")
	defer span.End()

	l, err := a.load(ctx, opts.File, SettingsOverrides{})
	if err != nil {
		return err
	}

	checked := domain.KeySet{}
	values := a.parseValues(l.catalog.Options, opts.Checked)
	if len(values) == 0 && l.settings.Multiple {
		values = l.catalog.DefaultValue
	}
	if len(values) > 0 {
		engine := session.New(session.Config{Options: l.catalog.Options, Multiple: true})
		checked = engine.Init(session.Value{Multiple: values}).CheckedKeys
	}

	a.renderer.Tree(l.catalog.Options, checked, len(opts.Checked) > 0 || l.settings.Multiple)
	return nil
}
