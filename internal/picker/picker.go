// Package picker provides a single-column chooser over a fixed list of rows.
//
// Row data and selection handling are kept apart: a RowSource supplies the
// rows and a SelectionListener is told about the chosen one. The screen that
// owns the picker composes the two.
package picker

// RowSource supplies the rows shown by a Picker.
type RowSource interface {
	Len() int
	Label(row int) string
}

// SelectionListener is notified when a row is chosen.
type SelectionListener interface {
	OnSelect(row int, label string)
}

// ListenerFunc adapts a plain function to SelectionListener.
type ListenerFunc func(row int, label string)

// OnSelect calls f(row, label).
func (f ListenerFunc) OnSelect(row int, label string) { f(row, label) }

// Action reports what a key press did to the picker.
type Action int

const (
	ActionNone Action = iota
	ActionMoved
	ActionSelected
	ActionCancelled
)

func (a Action) String() string {
	switch a {
	case ActionMoved:
		return "moved"
	case ActionSelected:
		return "selected"
	case ActionCancelled:
		return "cancelled"
	default:
		return "none"
	}
}

// Picker is a hidden-by-default chooser with a cursor.
type Picker struct {
	title    string
	rows     RowSource
	listener SelectionListener
	cursor   int
	visible  bool
}

// New creates a hidden picker. A nil listener is allowed; selections then only
// hide the picker.
func New(title string, rows RowSource, listener SelectionListener) *Picker {
	return &Picker{
		title:    title,
		rows:     rows,
		listener: listener,
	}
}

func (p *Picker) Title() string { return p.title }

// Len returns the number of rows, or 0 without a source.
func (p *Picker) Len() int {
	if p == nil || p.rows == nil {
		return 0
	}
	return p.rows.Len()
}

// Label returns the label of row, or "" when row is out of range.
func (p *Picker) Label(row int) string {
	if row < 0 || row >= p.Len() {
		return ""
	}
	return p.rows.Label(row)
}

func (p *Picker) Cursor() int { return p.cursor }

func (p *Picker) Visible() bool { return p != nil && p.visible }

// Open shows the picker. The cursor keeps its last position.
func (p *Picker) Open() {
	if p == nil {
		return
	}
	p.visible = true
	p.clampCursor()
}

// Hide hides the picker without selecting anything.
func (p *Picker) Hide() {
	if p == nil {
		return
	}
	p.visible = false
}

func (p *Picker) CursorUp() bool {
	if p.cursor > 0 {
		p.cursor--
		return true
	}
	return false
}

func (p *Picker) CursorDown() bool {
	if p.cursor < p.Len()-1 {
		p.cursor++
		return true
	}
	return false
}

// Select chooses row, notifies the listener and hides the picker.
// Out-of-range rows are ignored and report false.
func (p *Picker) Select(row int) bool {
	if p == nil || row < 0 || row >= p.Len() {
		return false
	}
	p.cursor = row
	label := p.rows.Label(row)
	if p.listener != nil {
		p.listener.OnSelect(row, label)
	}
	p.visible = false
	return true
}

// HandleKey applies a key press by its bubbletea key name.
func (p *Picker) HandleKey(keyName string) Action {
	if !p.Visible() {
		return ActionNone
	}
	switch keyName {
	case "k", "up":
		if p.CursorUp() {
			return ActionMoved
		}
	case "j", "down":
		if p.CursorDown() {
			return ActionMoved
		}
	case "g", "home":
		if p.cursor != 0 {
			p.cursor = 0
			return ActionMoved
		}
	case "G", "end":
		last := p.Len() - 1
		if last >= 0 && p.cursor != last {
			p.cursor = last
			return ActionMoved
		}
	case "enter", " ":
		if p.Select(p.cursor) {
			return ActionSelected
		}
	case "esc":
		p.Hide()
		return ActionCancelled
	}
	return ActionNone
}

func (p *Picker) clampCursor() {
	n := p.Len()
	if n == 0 || p.cursor < 0 {
		p.cursor = 0
		return
	}
	if p.cursor >= n {
		p.cursor = n - 1
	}
}
