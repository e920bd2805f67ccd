// Package ui implements the Three-Pane Screen and its event loop (spec.md
// §4.6) plus the Terminal + Color Adapter's concrete singleton (spec.md §2
// component 8): a single Bubble Tea tea.Program is the one terminal handle
// the whole process ever opens, generalizing the teacher's single-model
// pattern (brianmcjilton-nnav/cmd/nnav/tui.go) into a stack of screens so
// ENTER can push a new one and 'q'/ESC can pop back to the last.
package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ncexe/internal/line"
	"ncexe/internal/popup"
	"ncexe/internal/region"
	"ncexe/internal/theme"
)

const navHint = "Use arrow keys to navigate, q to go back"

// ProgramName and Version fill the header's "{program_name v{version}}"
// slot (spec.md §4.6). Version is set at build time in a full release
// pipeline; the default here is what a plain `go build` produces.
var (
	ProgramName = "ncexe"
	Version     = "dev"
)

// Title2Func supplies a screen's header line 2 (e.g. "Mach-O 64 Bit").
type Title2Func func() string

// FooterFunc supplies a screen's single footer line as an (x-offset, text)
// pair so the caller can center or left/right-align it (spec.md §4.6).
type FooterFunc func(width int) (int, string)

// Screen is the concrete (Header, ScrollableRegion, Footer) tuple spec.md
// §4.6 describes. It implements line.Screen — the opaque handle that
// field/details enter-handlers hand back — by virtue of being any Go value;
// RootModel is the one place that type-asserts it back to *Screen.
type Screen struct {
	Title2 Title2Func
	Footer FooterFunc
	Region *region.ScrollableRegion
	Colors theme.WindowColors
}

// NewScreen wraps lines behind a freshly-constructed ScrollableRegion.
func NewScreen(lines []line.Line, colors theme.WindowColors, title2 Title2Func, footer FooterFunc) *Screen {
	return &Screen{
		Title2: title2,
		Footer: footer,
		Region: region.New(lines),
		Colors: colors,
	}
}

// RootModel is the tea.Model driving the whole process: a stack of Screens,
// the last of which is visible and receives keystrokes. Pushing happens on
// ENTER over a NewWindow action; popping happens on 'q'/ESC, quitting the
// program entirely once the stack would go empty (spec.md §4.6's "q|ESC →
// break" bubbles up one level per screen, exiting the program from the
// root screen).
type RootModel struct {
	stack  []*Screen
	width  int
	height int
}

// NewRootModel starts the stack with root as the sole (File List) screen.
func NewRootModel(root *Screen) RootModel {
	return RootModel{stack: []*Screen{root}}
}

func (m RootModel) Init() tea.Cmd { return nil }

// top returns the currently-visible screen.
func (m RootModel) top() *Screen { return m.stack[len(m.stack)-1] }

// regionSize is the viewport available to the ScrollableRegion once header
// (2 lines) and footer (1 line) chrome is subtracted (spec.md §4.6).
func (m RootModel) regionSize() region.Size {
	rows := m.height - 3
	if rows < 0 {
		rows = 0
	}
	return region.Size{Rows: rows, Cols: m.width}
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		size := m.regionSize()
		for _, s := range m.stack {
			s.Region.Resize(size)
		}
		return m, nil

	case tea.KeyMsg:
		// Dismiss a pending popup on any key before touching navigation.
		if popup.Pending() {
			popup.Pop()
			return m, nil
		}

		switch msg.String() {
		case "q", "esc":
			if len(m.stack) > 1 {
				m.stack = m.stack[:len(m.stack)-1]
				return m, nil
			}
			return m, tea.Quit

		case "ctrl+c":
			return m, tea.Quit

		case "enter":
			scr, err := m.top().Region.HandleEnter()
			if err != nil {
				popup.Report("Error", err.Error())
				return m, nil
			}
			if pushed, ok := scr.(*Screen); ok && pushed != nil {
				pushed.Region.Show(m.regionSize())
				m.stack = append(m.stack, pushed)
			}
			return m, nil

		case "up":
			m.top().Region.HandleKey(region.KeyUp)
		case "down":
			m.top().Region.HandleKey(region.KeyDown)
		case "pgup":
			m.top().Region.HandleKey(region.KeyPageUp)
		case "pgdown":
			m.top().Region.HandleKey(region.KeyPageDown)
		case "home":
			m.top().Region.HandleKey(region.KeyHome)
		case "end":
			m.top().Region.HandleKey(region.KeyEnd)
		}
	}
	return m, nil
}

func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	scr := m.top()

	out := headerView(scr, m.width) + "\n"
	out += bodyView(scr, m.width) + "\n"
	out += footerView(scr, m.width)

	if e, ok := popup.Pop(); ok {
		// Popup surfaces once here, then the whole queue is restored in its
		// original order so View stays pure (tea.Model.View must not mutate
		// state the next Update relies on); the following keystroke
		// consumes this same error for real in Update.
		queued := []popup.Error{e}
		for next, more := popup.Pop(); more; next, more = popup.Pop() {
			queued = append(queued, next)
		}
		for _, q := range queued {
			popup.Report(q.Title, q.Messages...)
		}
		out = overlay(out, scr.Colors, e)
	}
	return out
}

func headerView(scr *Screen, width int) string {
	left := fmt.Sprintf("%s v%s", ProgramName, Version)
	gutter := width - len(left) - len(navHint)
	if gutter < 1 {
		gutter = 1
	}
	line1 := scr.Colors.Header.Render(left + repeat(" ", gutter) + navHint)
	line2 := scr.Colors.Header.Render(scr.Title2())
	return line1 + "\n" + line2
}

// scrollUpGlyph and scrollDownGlyph are the scroll indicators of spec.md
// §4.5, painted in the last column of the first/last visible row whenever
// the region's ShowsTopIndicator/ShowsBottomIndicator predicates say there's
// more document above/below the viewport.
const (
	scrollUpGlyph   = "⇑"
	scrollDownGlyph = "⇓"
)

func bodyView(scr *Screen, width int) string {
	rows, err := scr.Region.Render()
	if err != nil {
		popup.Report("Error: render failed", err.Error())
		return ""
	}
	showTop := scr.Region.ShowsTopIndicator()
	showBottom := scr.Region.ShowsBottomIndicator()

	out := ""
	for i, row := range rows {
		if i > 0 {
			out += "\n"
		}
		style := scr.Colors.Text
		if row.Highlighted {
			style = scr.Colors.Highlight
		}
		prefix := string(row.Prefix)
		indent := repeat(" ", row.Indent)
		text := ""
		active := style
		for _, p := range row.Pairs {
			// A nil Style keeps whatever style the previous pair made active.
			// A highlighted row's reverse-video must win over a pair's own
			// style, or the cursor row renders identically to every other
			// row (spec.md §4.5's central navigation highlight).
			if p.Style != nil && !row.Highlighted {
				active = *p.Style
			}
			text += active.Render(p.Text)
		}
		lineStr := style.Render(prefix) + indent + text

		var glyph string
		switch {
		case i == 0 && showTop:
			glyph = scrollUpGlyph
		case i == len(rows)-1 && showBottom:
			glyph = scrollDownGlyph
		}
		if glyph != "" {
			pad := width - lipgloss.Width(lineStr) - 1
			if pad < 0 {
				pad = 0
			}
			lineStr += repeat(" ", pad) + scr.Colors.Footer.Render(glyph)
		}
		out += lineStr
	}
	return out
}

func footerView(scr *Screen, width int) string {
	offset, text := scr.Footer(width)
	if offset < 0 {
		offset = 0
	}
	return scr.Colors.Footer.Render(repeat(" ", offset) + text)
}

func overlay(base string, colors theme.WindowColors, e popup.Error) string {
	box := colors.Error.Render(e.Title)
	for _, msg := range e.Messages {
		box += "\n" + colors.Error.Render(msg)
	}
	return base + "\n" + lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Render(box)
}

func repeat(s string, n int) string {
	out := make([]byte, 0, n*len(s))
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
