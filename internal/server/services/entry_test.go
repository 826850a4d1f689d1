package services

import (
	"context"
	"errors"
	"testing"

	"github.com/daybookapp/daybook/internal/common"
	"github.com/daybookapp/daybook/internal/server/models"
	entriesrepo "github.com/daybookapp/daybook/internal/server/repositories/entries"
)

func TestSave_InvalidDate(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewEntryService(db, &fakeRepoManager{e: &fakeEntriesRepo{}})

	_, err := s.Save(context.Background(), "u-1", &models.Entry{Date: "03/01/2024"})
	if !errors.Is(err, common.ErrorInvalidDate) {
		t.Fatalf("want common.ErrorInvalidDate, got %v", err)
	}
}

func TestSave_SetsOwner(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewEntryService(db, &fakeRepoManager{e: &fakeEntriesRepo{}})

	saved, err := s.Save(context.Background(), "u-1", &models.Entry{Date: "2024-03-01", Content: "hello"})
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if saved.UserID != "u-1" || saved.ID == "" {
		t.Fatalf("unexpected entry: %+v", saved)
	}
}

func TestGet_PartnerReadsPartnerEntry(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	partnerID := "u-2"
	repo := &fakeEntriesRepo{getOut: &models.Entry{ID: "e-9", UserID: "u-2", Date: "2024-03-01"}}
	rm := &fakeRepoManager{
		e: repo,
		u: &fakeUsersRepo{byID: map[string]*models.User{
			"u-1": {ID: "u-1", PartnerID: &partnerID},
		}},
	}
	s := NewEntryService(db, rm)

	got, err := s.Get(context.Background(), "u-1", true, "2024-03-01")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.ID != "e-9" || repo.getOwnerID != "u-2" {
		t.Fatalf("expected partner entry, owner=%q", repo.getOwnerID)
	}
}

func TestGet_PartnerNotPaired(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		e: &fakeEntriesRepo{},
		u: &fakeUsersRepo{byID: map[string]*models.User{
			"u-1": {ID: "u-1"},
		}},
	}
	s := NewEntryService(db, rm)

	_, err := s.Get(context.Background(), "u-1", true, "2024-03-01")
	if !errors.Is(err, common.ErrorNotPaired) {
		t.Fatalf("want common.ErrorNotPaired, got %v", err)
	}
}

func TestList_Own(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	repo := &fakeEntriesRepo{listOut: []*models.Entry{{ID: "e-1"}}}
	s := NewEntryService(db, &fakeRepoManager{e: repo})

	got, err := s.List(context.Background(), "u-1", false, entriesrepo.Filter{SearchQuery: "walk"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || repo.listOwnerID != "u-1" || repo.listFilter.SearchQuery != "walk" {
		t.Fatalf("unexpected list: %+v owner=%q filter=%+v", got, repo.listOwnerID, repo.listFilter)
	}
}

func TestList_PartnerReadsPartnerEntries(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	partnerID := "u-2"
	repo := &fakeEntriesRepo{listOut: []*models.Entry{{ID: "e-9"}}}
	rm := &fakeRepoManager{
		e: repo,
		u: &fakeUsersRepo{byID: map[string]*models.User{
			"u-1": {ID: "u-1", PartnerID: &partnerID},
		}},
	}
	s := NewEntryService(db, rm)

	got, err := s.List(context.Background(), "u-1", true, entriesrepo.Filter{})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 || repo.listOwnerID != "u-2" {
		t.Fatalf("expected partner entries, owner=%q", repo.listOwnerID)
	}
}

func TestList_PartnerNotPaired(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		e: &fakeEntriesRepo{},
		u: &fakeUsersRepo{byID: map[string]*models.User{
			"u-1": {ID: "u-1"},
		}},
	}
	s := NewEntryService(db, rm)

	_, err := s.List(context.Background(), "u-1", true, entriesrepo.Filter{})
	if !errors.Is(err, common.ErrorNotPaired) {
		t.Fatalf("want common.ErrorNotPaired, got %v", err)
	}
}

func TestList_InvalidRangeDate(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewEntryService(db, &fakeRepoManager{e: &fakeEntriesRepo{}})

	_, err := s.List(context.Background(), "u-1", false, entriesrepo.Filter{StartDate: "yesterday"})
	if !errors.Is(err, common.ErrorInvalidDate) {
		t.Fatalf("want common.ErrorInvalidDate, got %v", err)
	}
}

func TestDelete_MissingEntry(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	s := NewEntryService(db, &fakeRepoManager{e: &fakeEntriesRepo{deleteErr: common.ErrorNotFound}})

	err := s.Delete(context.Background(), "u-1", "2024-03-01")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
