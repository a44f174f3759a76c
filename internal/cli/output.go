package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vvka-141/treewalk/internal/config"
	"github.com/vvka-141/treewalk/internal/files/walker"
	"github.com/vvka-141/treewalk/internal/tui"
	"github.com/vvka-141/treewalk/pkg/treewalk"
)

// entryView is the serialized form of one record.
type entryView struct {
	Path  string `json:"path" yaml:"path"`
	Name  string `json:"name" yaml:"name"`
	IsDir bool   `json:"is_dir" yaml:"is_dir"`
	Depth int    `json:"depth" yaml:"depth"`
	Size  *int64 `json:"size,omitempty" yaml:"size,omitempty"`
}

func newEntryView(rec *treewalk.PathRecord) entryView {
	v := entryView{
		Path:  filepath.ToSlash(rec.RelativePath()),
		Name:  rec.Name(),
		IsDir: rec.IsDir(),
		Depth: rec.Depth(),
	}
	if size, ok := rec.Size(); ok {
		v.Size = &size
	}
	return v
}

// runSummary describes one completed walk.
type runSummary struct {
	RunID    string       `json:"run_id" yaml:"run_id"`
	Root     string       `json:"root" yaml:"root"`
	Order    string       `json:"order" yaml:"order"`
	SafeMode bool         `json:"safe_mode" yaml:"safe_mode"`
	Elapsed  string       `json:"elapsed" yaml:"elapsed"`
	Stats    walker.Stats `json:"stats" yaml:"stats"`

	started time.Time
}

func newRunSummary(root string, cfg *config.Config) *runSummary {
	return &runSummary{
		RunID:    uuid.NewString(),
		Root:     root,
		Order:    cfg.Order.String(),
		SafeMode: cfg.SafeMode,
		started:  time.Now(),
	}
}

func (s *runSummary) finish() {
	s.Elapsed = time.Since(s.started).Round(time.Millisecond).String()
}

// printer renders records in one output format.
type printer interface {
	Entry(rec *treewalk.PathRecord) error
	// Finish flushes buffered output. summary is nil unless requested.
	Finish(summary *runSummary) error
}

func newPrinter(format string, out, diag io.Writer, showSize bool) (printer, error) {
	switch format {
	case config.FormatText:
		return &textPrinter{out: out, diag: diag, showSize: showSize}, nil
	case config.FormatJSON:
		enc := json.NewEncoder(out)
		return &jsonPrinter{enc: enc}, nil
	case config.FormatYAML:
		return &yamlPrinter{out: out}, nil
	}
	return nil, fmt.Errorf("%w: unknown format %q", treewalk.ErrInvalidArgument, format)
}

// textPrinter writes one path per line, directories with a trailing slash.
type textPrinter struct {
	out      io.Writer
	diag     io.Writer
	showSize bool
}

func (p *textPrinter) Entry(rec *treewalk.PathRecord) error {
	line := filepath.ToSlash(rec.RelativePath())
	if rec.IsDir() {
		line += "/"
	} else if size, ok := rec.Size(); ok && p.showSize {
		line += "\t" + tui.FormatSize(size)
	}
	_, err := fmt.Fprintln(p.out, line)
	return err
}

func (p *textPrinter) Finish(summary *runSummary) error {
	if summary == nil {
		return nil
	}
	st := summary.Stats
	msg := fmt.Sprintf("%s %d directories, %d files, %s in %s",
		tui.SymbolCheck, st.Directories, st.Files, tui.FormatSize(st.Bytes), summary.Elapsed)
	fmt.Fprintln(p.diag, tui.SuccessStyle.Render(msg))
	if st.Skipped > 0 {
		fmt.Fprintln(p.diag, tui.WarningStyle.Render(fmt.Sprintf("%s %d directories skipped", tui.SymbolBullet, st.Skipped)))
	}
	fmt.Fprintf(p.diag, "run %s\n", summary.RunID)
	return nil
}

// jsonPrinter streams one JSON object per line.
type jsonPrinter struct {
	enc *json.Encoder
}

func (p *jsonPrinter) Entry(rec *treewalk.PathRecord) error {
	return p.enc.Encode(newEntryView(rec))
}

func (p *jsonPrinter) Finish(summary *runSummary) error {
	if summary == nil {
		return nil
	}
	return p.enc.Encode(map[string]*runSummary{"summary": summary})
}

// yamlPrinter buffers entries into a single document.
type yamlPrinter struct {
	out     io.Writer
	entries []entryView
}

type yamlDocument struct {
	Entries []entryView `yaml:"entries"`
	Summary *runSummary `yaml:"summary,omitempty"`
}

func (p *yamlPrinter) Entry(rec *treewalk.PathRecord) error {
	p.entries = append(p.entries, newEntryView(rec))
	return nil
}

func (p *yamlPrinter) Finish(summary *runSummary) error {
	enc := yaml.NewEncoder(p.out)
	enc.SetIndent(2)
	if err := enc.Encode(yamlDocument{Entries: p.entries, Summary: summary}); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
