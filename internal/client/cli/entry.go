package cli

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/daybookapp/daybook/internal/client/autosave"
	"github.com/daybookapp/daybook/internal/client/models"
	"github.com/daybookapp/daybook/internal/common"
)

// OpenEntry opens the journal entry for the given day (today when date is
// empty) and runs the interactive editing loop. Plain lines are appended to
// the entry text; lines starting with ':' are editor commands. Every change
// is backed up locally and autosaved to the server in the background; the
// prompt shows the current save status.
func (a *App) OpenEntry(ctx context.Context, date string) error {
	if !a.isLoggedIn() {
		printlnFn("Please log in first.")
		return nil
	}
	if date == "" {
		date = time.Now().Format(common.DateLayout)
	}
	if _, err := time.Parse(common.DateLayout, date); err != nil {
		printlnFn("Invalid date, expected YYYY-MM-DD:", date)
		return err
	}

	editor := autosave.New(autosave.Params{
		Entries:     a.client,
		Backups:     a.repos.Backups,
		Logger:      a.logger,
		Debounce:    a.config.AutosaveDebounce,
		SavedWindow: a.config.SavedStatusWindow,
	})
	defer editor.Close()

	if err := editor.Load(ctx, a.userID, date); err != nil {
		log.Printf("Could not open entry: %s", err.Error())
		return err
	}

	a.printDraft(editor)
	printlnFn("Editing " + date + ". Type to append, ':help' for editor commands, ':done' to close.")

	for {
		fmt.Printf("%s [%s]> ", date, editor.Status())
		raw, err := a.reader.ReadString('\n')
		line := strings.TrimRight(raw, "\r\n")
		if err != nil && line == "" {
			break
		}
		if line == "" {
			continue
		}

		if !strings.HasPrefix(line, ":") {
			content := editor.Draft().Content
			if content != "" {
				content += "\n"
			}
			editor.SetContent(content + line)
			continue
		}

		if done := a.editorCommand(ctx, editor, line); done {
			break
		}
	}

	// Only unsaved changes warrant a final save; merely opening a day must
	// not create an empty entry on the server.
	if editor.Dirty() {
		if err := editor.Flush(ctx); err != nil {
			log.Printf("Final save failed, a local backup is kept: %s", err.Error())
			return err
		}
	}
	return nil
}

// editorCommand handles one ':'-prefixed line. It returns true when the
// editing session should end.
func (a *App) editorCommand(ctx context.Context, editor *autosave.Controller, line string) bool {
	parts := strings.Fields(line)
	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case ":help":
		printlnFn(":show, :mood <v>, :weather <v>, :clear, :image <path>, :rmimage <key>, :audio <path>, :rmaudio <key>, :fetch <key>, :done")

	case ":show":
		a.printDraft(editor)

	case ":mood":
		editor.SetMood(strings.Join(args, " "))

	case ":weather":
		editor.SetWeather(strings.Join(args, " "))

	case ":clear":
		editor.SetContent("")

	case ":image":
		if len(args) == 0 {
			printlnFn("Usage: :image <path>")
			break
		}
		key, err := a.uploadAttachment(ctx, args[0])
		if err != nil {
			log.Printf("Upload failed: %s", err.Error())
			break
		}
		editor.AddImage(key)
		printlnFn("Attached image", key)

	case ":rmimage":
		if len(args) == 0 {
			printlnFn("Usage: :rmimage <key>")
			break
		}
		editor.RemoveImage(args[0])

	case ":audio":
		if len(args) == 0 {
			printlnFn("Usage: :audio <path>")
			break
		}
		key, err := a.uploadAttachment(ctx, args[0])
		if err != nil {
			log.Printf("Upload failed: %s", err.Error())
			break
		}
		editor.AddAudioNote(key)
		printlnFn("Attached audio note", key)

	case ":rmaudio":
		if len(args) == 0 {
			printlnFn("Usage: :rmaudio <key>")
			break
		}
		editor.RemoveAudioNote(args[0])

	case ":fetch":
		if len(args) == 0 {
			printlnFn("Usage: :fetch <key>")
			break
		}
		path, err := a.downloadAttachment(ctx, args[0])
		if err != nil {
			log.Printf("Download failed: %s", err.Error())
			break
		}
		printlnFn("Saved to", path)

	case ":done":
		return true

	default:
		printlnFn("Unknown editor command:", cmd)
	}
	return false
}

func (a *App) printDraft(editor *autosave.Controller) {
	d := editor.Draft()
	if d == nil {
		return
	}
	if d.Content != "" {
		printlnFn(d.Content)
	}
	meta := fmt.Sprintf("%d words", models.WordCount(d.Content))
	if d.Mood != "" {
		meta += ", mood: " + d.Mood
	}
	if d.Weather != "" {
		meta += ", weather: " + d.Weather
	}
	if len(d.Images) > 0 {
		meta += fmt.Sprintf(", images: %s", strings.Join(d.Images, " "))
	}
	if len(d.AudioNotes) > 0 {
		meta += fmt.Sprintf(", audio: %s", strings.Join(d.AudioNotes, " "))
	}
	printlnFn("[" + meta + "]")
}

// DeleteEntry removes the entry for a day from the server and drops its
// local backup so the content does not resurface on the next open.
func (a *App) DeleteEntry(ctx context.Context, date string) error {
	if _, err := time.Parse(common.DateLayout, date); err != nil {
		printlnFn("Invalid date, expected YYYY-MM-DD:", date)
		return err
	}
	if err := a.client.DeleteEntry(ctx, date); err != nil {
		log.Printf("Delete failed: %s", err.Error())
		return err
	}
	if err := a.repos.Backups.Remove(ctx, autosave.BackupKey(date)); err != nil {
		a.logger.Warn(ctx, "backup cleanup failed", "date", date, "error", err)
	}
	printlnFn("Deleted entry for", date)
	return nil
}
