// Package popup is the modal error-reporting collaborator described in
// spec.md §7: a field formatter that fails to render does not abort the
// screen, it reports an Error here and keeps going with a placeholder.
//
// The program is single-threaded end to end (spec.md §5 — the only
// suspension point is the blocking keystroke read), so the queue needs no
// locking: every mutation happens between keystrokes, never concurrently.
package popup

// Error is one popup-worthy failure: a title line plus the chain of causes
// to show underneath it, dismiss-on-key in the UI layer.
type Error struct {
	Title    string
	Messages []string
}

var pending []Error

// Report queues an error for display by whichever Screen is on top of the
// stack when it next redraws. Rendering of the rest of the current screen
// continues unaffected.
func Report(title string, messages ...string) {
	pending = append(pending, Error{Title: title, Messages: messages})
}

// Pop removes and returns the oldest queued error, if any.
func Pop() (Error, bool) {
	if len(pending) == 0 {
		return Error{}, false
	}
	e := pending[0]
	pending = pending[1:]
	return e, true
}

// Pending reports whether any error is waiting to be shown.
func Pending() bool {
	return len(pending) > 0
}
