package diacritics_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/UoEMainLibrary/dspace-additions/internal/curation"
	"github.com/UoEMainLibrary/dspace-additions/internal/diacritics"
	"github.com/UoEMainLibrary/dspace-additions/internal/repository"
	"github.com/UoEMainLibrary/dspace-additions/internal/testsupport"
)

func perform(t *testing.T, store *repository.Store, handle string) curation.Result {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	task, err := diacritics.New(cfg, nil)
	if err != nil {
		t.Fatalf("diacritics.New: %v", err)
	}
	result, err := curation.NewRunner(curation.Options{Store: store}).Perform(context.Background(), task, handle)
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	return result
}

func seed(t *testing.T, items ...testsupport.ItemFixture) *repository.Store {
	t.Helper()
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	testsupport.SeedCommunity(t, store, testsupport.CommunityFixture{
		Handle:      "1/1",
		Collections: []testsupport.CollectionFixture{{Handle: "1/2", Items: items}},
	})
	return store
}

func TestTitleIsCleanedAndPersisted(t *testing.T) {
	store := seed(t, testsupport.ItemFixture{Handle: "1/3", Titles: []string{"café’s “best”"}})

	result := perform(t, store, "1/3")
	if result.Status != curation.StatusSuccess {
		t.Fatalf("expected SUCCESS, got %s", result.Status)
	}
	want := []string{"café’s “best” = UPDATED TO = café's \"best\" = SUCCESS"}
	if diff := cmp.Diff(want, result.Report.Lines()); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
	item := testsupport.MustItem(t, store, "1/3")
	if diff := cmp.Diff([]string{"café's \"best\""}, testsupport.Values(item, testsupport.TitleField)); diff != "" {
		t.Fatalf("title mismatch (-want +got):\n%s", diff)
	}
}

func TestUnchangedTitleSkipsWithoutWrite(t *testing.T) {
	store := seed(t, testsupport.ItemFixture{Handle: "1/3", Titles: []string{"Plain title"}, ReadOnly: true})

	result := perform(t, store, "1/3")
	if result.Status != curation.StatusSkip {
		t.Fatalf("expected SKIP, got %s", result.Status)
	}
	if diff := cmp.Diff([]string{"No update required - SKIP"}, result.Report.Lines()); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestMultipleTitlesKeepOrderAndAllValues(t *testing.T) {
	store := seed(t, testsupport.ItemFixture{Handle: "1/3", Titles: []string{"Main", "Alt – title"}})

	result := perform(t, store, "1/3")
	if result.Report.Count(curation.StatusSkip) != 1 || result.Report.Count(curation.StatusSuccess) != 1 {
		t.Fatalf("unexpected report: %v", result.Report.Lines())
	}
	got := testsupport.Values(testsupport.MustItem(t, store, "1/3"), testsupport.TitleField)
	if diff := cmp.Diff([]string{"Main", "Alt - title"}, got); diff != "" {
		t.Fatalf("titles mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteFailureReportsError(t *testing.T) {
	store := seed(t,
		testsupport.ItemFixture{Handle: "1/3", Titles: []string{"“fine”"}},
		testsupport.ItemFixture{Handle: "1/4", Titles: []string{"“locked”"}, ReadOnly: true},
	)

	result := perform(t, store, "1/2")
	if result.Status != curation.StatusError {
		t.Fatalf("expected ERROR, got %s", result.Status)
	}
	got := testsupport.Values(testsupport.MustItem(t, store, "1/4"), testsupport.TitleField)
	if diff := cmp.Diff([]string{"“locked”"}, got); diff != "" {
		t.Fatalf("read-only title changed (-want +got):\n%s", diff)
	}
}

func TestNewRejectsBadField(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Diacritics.Field = "title"
	if _, err := diacritics.New(cfg, nil); err == nil {
		t.Fatal("expected error for malformed field")
	}
}
