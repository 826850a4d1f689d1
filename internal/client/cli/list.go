package cli

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/daybookapp/daybook/internal/client/api"
	"github.com/daybookapp/daybook/internal/client/models"
)

const defaultListLimit = 10

// List prints the most recent entries, newest first. limit is the raw
// argument from the REPL; empty means the default.
func (a *App) List(ctx context.Context, limit string) error {
	n, err := parseLimit(limit)
	if err != nil {
		printlnFn("Usage: list [n]")
		return err
	}

	entries, err := a.client.ListEntries(ctx, api.ListOptions{Limit: n})
	if err != nil {
		log.Printf("List failed: %s", err.Error())
		return err
	}
	printEntries(entries)
	return nil
}

// Search runs a full-text search over the user's entries.
func (a *App) Search(ctx context.Context, query string) error {
	entries, err := a.client.ListEntries(ctx, api.ListOptions{SearchQuery: query})
	if err != nil {
		log.Printf("Search failed: %s", err.Error())
		return err
	}
	printEntries(entries)
	return nil
}

// PartnerEntries lists the paired partner's recent entries (read-only).
func (a *App) PartnerEntries(ctx context.Context, limit string) error {
	n, err := parseLimit(limit)
	if err != nil {
		printlnFn("Usage: partner [n]")
		return err
	}

	entries, err := a.client.ListEntries(ctx, api.ListOptions{Limit: n, Partner: true})
	if err != nil {
		log.Printf("Partner listing failed: %s", err.Error())
		return err
	}
	printEntries(entries)
	return nil
}

func parseLimit(s string) (int, error) {
	if s == "" {
		return defaultListLimit, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid limit %q", s)
	}
	return n, nil
}

func printEntries(entries []models.Entry) {
	if len(entries) == 0 {
		printlnFn("No entries.")
		return
	}
	for _, e := range entries {
		printlnFn(fmt.Sprintf("%s  %s", e.Date, entrySummary(e)))
	}
}

// entrySummary renders one line of metadata plus the first line of content.
func entrySummary(e models.Entry) string {
	parts := []string{}
	if e.Mood != "" {
		parts = append(parts, e.Mood)
	}
	if e.Weather != "" {
		parts = append(parts, e.Weather)
	}
	if len(e.Images) > 0 {
		parts = append(parts, fmt.Sprintf("%d image(s)", len(e.Images)))
	}
	if len(e.AudioNotes) > 0 {
		parts = append(parts, fmt.Sprintf("%d audio", len(e.AudioNotes)))
	}

	first := e.Content
	if i := strings.IndexByte(first, '\n'); i >= 0 {
		first = first[:i]
	}
	if len(first) > 60 {
		first = first[:60] + "..."
	}

	s := first
	if len(parts) > 0 {
		s = "[" + strings.Join(parts, ", ") + "] " + s
	}
	return s
}
