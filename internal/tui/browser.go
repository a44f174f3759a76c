package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vvka-141/treewalk/internal/files/walker"
	"github.com/vvka-141/treewalk/internal/tui/components"
)

// treeEntry is one row of the browser. Children are loaded on first expand.
type treeEntry struct {
	node     *walker.Node
	parent   *treeEntry
	children []*treeEntry
	expanded bool
	loading  bool
	loaded   bool
	err      error
}

// childrenMsg carries the result of listing one node. A nil target means
// the root.
type childrenMsg struct {
	target *treeEntry
	nodes  []*walker.Node
	err    error
}

// Browser is a bubbletea model that shows a lazily expanded tree. Each
// expand lists exactly one directory; nothing below it is read.
type Browser struct {
	root     *walker.Node
	top      []*treeEntry
	rootErr  error
	rootDone bool

	cursor int
	offset int
	height int

	keys    KeyMap
	spinner components.Spinner
}

// NewBrowser creates a browser rooted at root.
func NewBrowser(root *walker.Node) *Browser {
	return &Browser{
		root:    root,
		height:  TerminalHeight(24),
		keys:    DefaultKeyMap(),
		spinner: components.NewSpinner(SpinnerStyle),
	}
}

// RunBrowser starts the browser on the alternate screen and blocks until
// the user quits.
func RunBrowser(root *walker.Node) error {
	_, err := tea.NewProgram(NewBrowser(root), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	b.spinner.Start("reading " + b.root.String())
	return tea.Batch(b.spinner.Init(), loadChildren(nil, b.root))
}

// loadChildren lists n in a command so the UI stays responsive.
func loadChildren(target *treeEntry, n *walker.Node) tea.Cmd {
	return func() tea.Msg {
		nodes, err := readChildren(n)
		return childrenMsg{target: target, nodes: nodes, err: err}
	}
}

func readChildren(n *walker.Node) ([]*walker.Node, error) {
	w := n.Children()
	defer w.Close()

	var nodes []*walker.Node
	for {
		ok, err := w.Next()
		if err != nil {
			return nodes, err
		}
		if !ok {
			return nodes, nil
		}
		child, err := w.Current()
		if err != nil {
			return nodes, err
		}
		nodes = append(nodes, child)
	}
}

// Update implements tea.Model.
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case childrenMsg:
		b.spinner.Stop()
		b.applyChildren(msg)
		return b, nil

	case tea.WindowSizeMsg:
		b.height = msg.Height
		b.clampOffset()
		return b, nil

	case tea.KeyMsg:
		return b, b.handleKey(msg)
	}

	var cmd tea.Cmd
	b.spinner, cmd = b.spinner.Update(msg)
	return b, cmd
}

func (b *Browser) applyChildren(msg childrenMsg) {
	entries := make([]*treeEntry, len(msg.nodes))
	for i, n := range msg.nodes {
		entries[i] = &treeEntry{node: n, parent: msg.target}
	}

	if msg.target == nil {
		b.top = entries
		b.rootErr = msg.err
		b.rootDone = true
		return
	}
	msg.target.children = entries
	msg.target.err = msg.err
	msg.target.loading = false
	msg.target.loaded = true
	msg.target.expanded = true
}

func (b *Browser) handleKey(msg tea.KeyMsg) tea.Cmd {
	rows := b.visible()

	switch {
	case key.Matches(msg, b.keys.Quit):
		return tea.Quit

	case key.Matches(msg, b.keys.Up):
		if b.cursor > 0 {
			b.cursor--
		}

	case key.Matches(msg, b.keys.Down):
		if b.cursor < len(rows)-1 {
			b.cursor++
		}

	case key.Matches(msg, b.keys.Top):
		b.cursor = 0

	case key.Matches(msg, b.keys.Bottom):
		b.cursor = max(len(rows)-1, 0)

	case key.Matches(msg, b.keys.Expand):
		if len(rows) == 0 {
			return nil
		}
		return b.expand(rows[b.cursor].entry)

	case key.Matches(msg, b.keys.Collapse):
		if len(rows) == 0 {
			return nil
		}
		b.collapse(rows[b.cursor].entry)
	}

	b.clampOffset()
	return nil
}

func (b *Browser) expand(e *treeEntry) tea.Cmd {
	if !e.node.IsDir() || e.loading {
		return nil
	}
	if e.loaded {
		e.expanded = true
		return nil
	}
	e.loading = true
	b.spinner.Start("reading " + e.node.String())
	return loadChildren(e, e.node)
}

// collapse folds an expanded entry, or moves to the parent of a folded one.
func (b *Browser) collapse(e *treeEntry) {
	if e.expanded {
		e.expanded = false
		return
	}
	if e.parent == nil {
		return
	}
	for i, r := range b.visible() {
		if r.entry == e.parent {
			b.cursor = i
			e.parent.expanded = false
			return
		}
	}
}

type row struct {
	entry *treeEntry
	depth int
}

// visible flattens the expanded part of the tree in pre-order.
func (b *Browser) visible() []row {
	var rows []row
	var add func(entries []*treeEntry, depth int)
	add = func(entries []*treeEntry, depth int) {
		for _, e := range entries {
			rows = append(rows, row{entry: e, depth: depth})
			if e.expanded {
				add(e.children, depth+1)
			}
		}
	}
	add(b.top, 0)
	return rows
}

// pageSize is the number of rows that fit between title and help.
func (b *Browser) pageSize() int {
	return max(b.height-5, 1)
}

func (b *Browser) clampOffset() {
	if b.cursor < b.offset {
		b.offset = b.cursor
	}
	if b.cursor >= b.offset+b.pageSize() {
		b.offset = b.cursor - b.pageSize() + 1
	}
}

// View implements tea.Model.
func (b *Browser) View() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render(b.root.String()))
	s.WriteString("\n")

	rows := b.visible()
	switch {
	case b.rootErr != nil:
		s.WriteString(ErrorStyle.Render(SymbolCross+" "+b.rootErr.Error()) + "\n")
	case b.rootDone && len(rows) == 0:
		s.WriteString(HelpStyle.Render("(empty)") + "\n")
	}

	end := min(b.offset+b.pageSize(), len(rows))
	for i := b.offset; i < end; i++ {
		line := b.renderRow(rows[i])
		if i == b.cursor {
			line = CursorStyle.Render(line)
		}
		s.WriteString(line)
		s.WriteString("\n")
	}

	if v := b.spinner.View(); v != "" {
		s.WriteString(v)
		s.WriteString("\n")
	}
	s.WriteString(HelpStyle.Render(b.keys.HelpText()))
	return s.String()
}

func (b *Browser) renderRow(r row) string {
	e := r.entry
	indent := strings.Repeat("  ", r.depth)

	if !e.node.IsDir() {
		line := indent + SymbolFile + " " + FileStyle.Render(e.node.Name())
		if size, ok := e.node.Record().Size(); ok {
			line += " " + SizeStyle.Render(FormatSize(size))
		}
		return line
	}

	symbol := SymbolCollapsed
	if e.expanded {
		symbol = SymbolExpanded
	}
	line := indent + symbol + " " + DirStyle.Render(e.node.Name())

	switch {
	case e.loading:
		line += " " + SizeStyle.Render("…")
	case e.err != nil:
		line += " " + ErrorStyle.Render(fmt.Sprintf("%s %v", SymbolCross, e.err))
	case e.loaded && len(e.children) == 0 && e.expanded:
		line += " " + SizeStyle.Render("(empty)")
	}
	return line
}
