package autosave

// Status is the save-state surfaced next to the editor.
type Status string

const (
	// StatusIdle — no unsaved change since the last confirmed save or load.
	StatusIdle Status = "idle"
	// StatusPending — a change was detected and the debounce timer is running.
	StatusPending Status = "pending"
	// StatusSaving — a network write is in flight.
	StatusSaving Status = "saving"
	// StatusSaved — a write just confirmed; reverts to idle after a short
	// display window unless a new mutation arrives first.
	StatusSaved Status = "saved"
	// StatusError — the last write attempt failed; the next mutation or an
	// explicit save retries.
	StatusError Status = "error"
)
