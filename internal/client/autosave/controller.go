// Package autosave keeps one in-flight notion of "current draft" consistent
// across in-memory edits, a local durability fallback, and the remote store,
// while giving the user continuous save-status feedback.
//
// Every mutation writes a snapshot to the local backup store before the
// debounce timer is re-armed, so a crash at any point loses at most what was
// never typed. The backup is cleared only after the server confirms a save.
package autosave

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/daybookapp/daybook/internal/client/api"
	"github.com/daybookapp/daybook/internal/client/models"
	"github.com/daybookapp/daybook/internal/client/repositories/backups"
	"github.com/daybookapp/daybook/internal/common"
	"github.com/daybookapp/daybook/internal/logging"
)

const (
	// DefaultDebounce is the quiet period after the last mutation before a
	// save is attempted.
	DefaultDebounce = 1000 * time.Millisecond
	// DefaultSavedWindow is how long the "saved" status is displayed before
	// reverting to idle.
	DefaultSavedWindow = 3000 * time.Millisecond

	// saveTimeout bounds a background save triggered by the debounce timer.
	saveTimeout = 15 * time.Second
)

// BackupKey returns the local-store key holding the draft snapshot for date.
func BackupKey(date string) string {
	return "entry_backup_" + date
}

// EntryService is the remote surface the controller needs. api.Client
// satisfies it.
type EntryService interface {
	SaveEntry(ctx context.Context, draft *models.Draft) (*models.Entry, error)
	ListEntries(ctx context.Context, opts api.ListOptions) ([]models.Entry, error)
}

// Params configures a Controller. Entries, Backups and Logger are required;
// zero durations fall back to the defaults.
type Params struct {
	Entries     EntryService
	Backups     backups.Repository
	Logger      logging.Logger
	Debounce    time.Duration
	SavedWindow time.Duration
	// OnStatus, when set, is invoked on every status change. It must return
	// quickly and must not call back into the controller.
	OnStatus func(Status)
}

// Controller owns a single entry's draft for one editing session.
type Controller struct {
	entries     EntryService
	backups     backups.Repository
	logger      logging.Logger
	debounce    time.Duration
	savedWindow time.Duration
	onStatus    func(Status)

	mu         sync.Mutex
	draft      *models.Draft
	lastSaved  string // serialization of the last confirmed-saved draft
	status     Status
	timer      *time.Timer
	savedTimer *time.Timer
	closed     bool
}

// New constructs a Controller. Call Load before mutating.
func New(p Params) *Controller {
	if p.Debounce <= 0 {
		p.Debounce = DefaultDebounce
	}
	if p.SavedWindow <= 0 {
		p.SavedWindow = DefaultSavedWindow
	}
	return &Controller{
		entries:     p.Entries,
		backups:     p.Backups,
		logger:      p.Logger.With("module", "autosave"),
		debounce:    p.Debounce,
		savedWindow: p.SavedWindow,
		onStatus:    p.OnStatus,
		status:      StatusIdle,
	}
}

// Load fetches the persisted entry for (ownerID, date) and any local backup,
// and reconciles them into the initial draft. A persisted entry with non-empty
// content is authoritative; otherwise non-empty backup content is recovered.
// Recovered backup content does not mark the draft pending — the next user
// edit does.
func (c *Controller) Load(ctx context.Context, ownerID, date string) error {
	list, err := c.entries.ListEntries(ctx, api.ListOptions{StartDate: date, EndDate: date, Limit: 1})
	if err != nil {
		return err
	}

	var persisted *models.Entry
	if len(list) > 0 {
		persisted = &list[0]
	}

	draft := &models.Draft{OwnerID: ownerID, Date: date}
	if persisted != nil {
		draft.Content = persisted.Content
		draft.Mood = persisted.Mood
		draft.Weather = persisted.Weather
		draft.Images = append([]string(nil), persisted.Images...)
		draft.AudioNotes = append([]string(nil), persisted.AudioNotes...)
	}

	fromBackup := false
	if persisted == nil || persisted.Content == "" {
		if snapshot, berr := c.backups.Get(ctx, BackupKey(date)); berr == nil {
			if recovered, perr := models.DraftFromJSON(snapshot); perr == nil && recovered.Content != "" {
				recovered.OwnerID = ownerID
				recovered.Date = date
				draft = recovered
				fromBackup = true
			}
		} else if !errors.Is(berr, common.ErrorNotFound) {
			c.logger.Warn(ctx, "backup read failed", "date", date, "error", berr)
		}
	}

	serialized, err := draft.Serialize()
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = draft
	if fromBackup {
		// Recovered content is present but unconfirmed; keep it dirty so an
		// explicit save flushes it, without auto-entering pending.
		c.lastSaved = ""
	} else {
		c.lastSaved = serialized
	}
	c.setStatusLocked(StatusIdle)
	return nil
}

// Draft returns a copy of the current draft, or nil before Load.
func (c *Controller) Draft() *models.Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft == nil {
		return nil
	}
	return c.draft.Clone()
}

// Status returns the current save status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Dirty reports whether the draft differs from the last confirmed save.
func (c *Controller) Dirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft == nil {
		return false
	}
	serialized, err := c.draft.Serialize()
	if err != nil {
		return true
	}
	return serialized != c.lastSaved
}

// SetContent replaces the rich-text payload.
func (c *Controller) SetContent(content string) {
	c.mutate(func(d *models.Draft) { d.Content = content })
}

// SetMood sets the mood glyph ("" clears it).
func (c *Controller) SetMood(mood string) {
	c.mutate(func(d *models.Draft) { d.Mood = mood })
}

// SetWeather sets the weather glyph ("" clears it).
func (c *Controller) SetWeather(weather string) {
	c.mutate(func(d *models.Draft) { d.Weather = weather })
}

// AddImage appends an image asset reference.
func (c *Controller) AddImage(ref string) {
	c.mutate(func(d *models.Draft) { d.Images = append(d.Images, ref) })
}

// RemoveImage removes an image asset reference by value.
func (c *Controller) RemoveImage(ref string) {
	c.mutate(func(d *models.Draft) { d.Images = remove(d.Images, ref) })
}

// AddAudioNote appends a voice-note asset reference.
func (c *Controller) AddAudioNote(ref string) {
	c.mutate(func(d *models.Draft) { d.AudioNotes = append(d.AudioNotes, ref) })
}

// RemoveAudioNote removes a voice-note asset reference by value.
func (c *Controller) RemoveAudioNote(ref string) {
	c.mutate(func(d *models.Draft) { d.AudioNotes = remove(d.AudioNotes, ref) })
}

func remove(refs []string, ref string) []string {
	out := refs[:0]
	for _, r := range refs {
		if r != ref {
			out = append(out, r)
		}
	}
	return out
}

// mutate applies fn to the draft, writes through to the local backup, and
// (re)arms the debounce timer.
func (c *Controller) mutate(fn func(d *models.Draft)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.draft == nil || c.closed {
		return
	}

	fn(c.draft)

	if serialized, err := c.draft.Serialize(); err == nil {
		// Best effort: the backup is a redundancy layer, not the primary store.
		if berr := c.backups.Set(context.Background(), BackupKey(c.draft.Date), serialized); berr != nil {
			c.logger.Warn(context.Background(), "backup write failed", "date", c.draft.Date, "error", berr)
		}
	}

	c.stopSavedTimerLocked()
	c.setStatusLocked(StatusPending)
	c.armDebounceLocked()
}

func (c *Controller) armDebounceLocked() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := c.save(ctx); err != nil {
			c.logger.Warn(ctx, "autosave failed", "error", err)
		}
	})
}

func (c *Controller) armSavedTimerLocked() {
	if c.savedTimer != nil {
		c.savedTimer.Stop()
	}
	c.savedTimer = time.AfterFunc(c.savedWindow, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.status == StatusSaved {
			c.setStatusLocked(StatusIdle)
		}
	})
}

func (c *Controller) stopSavedTimerLocked() {
	if c.savedTimer != nil {
		c.savedTimer.Stop()
		c.savedTimer = nil
	}
}

// Flush bypasses the debounce and saves the current draft immediately. Used
// by the explicit finish/save action; the caller decides what to do on error.
func (c *Controller) Flush(ctx context.Context) error {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()
	return c.save(ctx)
}

// save sends the full current draft payload to the server. A save already in
// flight when a newer mutation arrives is not cancelled; it completes and its
// (stale) write is superseded by the next debounce cycle.
func (c *Controller) save(ctx context.Context) error {
	c.mu.Lock()
	if c.draft == nil || c.closed {
		c.mu.Unlock()
		return nil
	}
	payload := c.draft.Clone()
	serialized, err := payload.Serialize()
	if err != nil {
		c.mu.Unlock()
		return err
	}
	c.setStatusLocked(StatusSaving)
	c.mu.Unlock()

	_, saveErr := c.entries.SaveEntry(ctx, payload)

	c.mu.Lock()
	defer c.mu.Unlock()

	if saveErr != nil {
		// A mutation may have arrived meanwhile and moved us to pending; that
		// re-armed timer is the retry, so leave pending alone.
		if c.status == StatusSaving {
			c.setStatusLocked(StatusError)
		}
		return saveErr
	}

	c.lastSaved = serialized
	if rerr := c.backups.Remove(context.Background(), BackupKey(payload.Date)); rerr != nil {
		c.logger.Warn(context.Background(), "backup cleanup failed", "date", payload.Date, "error", rerr)
	}

	if c.status == StatusSaving {
		current, _ := c.draft.Serialize()
		if current == serialized {
			c.setStatusLocked(StatusSaved)
			c.armSavedTimerLocked()
		}
	}
	return nil
}

// Close stops the timers. An in-flight save is left to finish on its own.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.stopSavedTimerLocked()
}

func (c *Controller) setStatusLocked(s Status) {
	if c.status == s {
		return
	}
	c.status = s
	if c.onStatus != nil {
		c.onStatus(s)
	}
}
