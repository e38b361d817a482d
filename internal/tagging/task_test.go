package tagging_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/UoEMainLibrary/dspace-additions/internal/config"
	"github.com/UoEMainLibrary/dspace-additions/internal/curation"
	"github.com/UoEMainLibrary/dspace-additions/internal/repository"
	"github.com/UoEMainLibrary/dspace-additions/internal/services"
	"github.com/UoEMainLibrary/dspace-additions/internal/tagging"
	"github.com/UoEMainLibrary/dspace-additions/internal/testsupport"
)

var subject = repository.Field{Schema: "dc", Element: "subject"}

type harness struct {
	cfg   *config.Config
	store *repository.Store
}

func newHarness(t *testing.T, vocabulary, stopwords string, community testsupport.CommunityFixture) harness {
	t.Helper()
	cfg := testsupport.NewConfig(t, testsupport.WithVocabulary(vocabulary), testsupport.WithStopwords(stopwords))
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedCommunity(t, store, community)
	return harness{cfg: cfg, store: store}
}

func (h harness) run(t *testing.T, handle string) curation.Result {
	t.Helper()
	task, err := tagging.New(h.cfg, nil)
	if err != nil {
		t.Fatalf("tagging.New: %v", err)
	}
	result, err := curation.NewRunner(curation.Options{Store: h.store}).Perform(context.Background(), task, handle)
	if err != nil {
		t.Fatalf("Perform(%s): %v", handle, err)
	}
	return result
}

func single(items ...testsupport.ItemFixture) testsupport.CommunityFixture {
	return testsupport.CommunityFixture{
		Handle:      "10683/1",
		Collections: []testsupport.CollectionFixture{{Handle: "10683/2", Items: items}},
	}
}

func TestMatchedFileAddsFilteredTags(t *testing.T) {
	h := newHarness(t, "img1,Nature,Forest\n", "forest\n",
		single(testsupport.ItemFixture{Handle: "10683/3", Files: []string{"dimg1c-001.jpg"}}))

	result := h.run(t, "10683/3")
	if result.Status != curation.StatusSuccess {
		t.Fatalf("expected SUCCESS, got %s", result.Status)
	}
	want := []string{"Added tags to item 10683/3 field dc.subject [Nature]"}
	if diff := cmp.Diff(want, result.Report.Lines()); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
	item := testsupport.MustItem(t, h.store, "10683/3")
	if diff := cmp.Diff([]string{"Nature"}, testsupport.Values(item, subject)); diff != "" {
		t.Fatalf("subject mismatch (-want +got):\n%s", diff)
	}
	if got := item.Values(subject)[0].Language; got != "en" {
		t.Fatalf("expected configured language en, got %q", got)
	}
}

func TestSharedKeyAppliesOncePerItem(t *testing.T) {
	h := newHarness(t, "0042,Bridge,River\n", "",
		single(testsupport.ItemFixture{Handle: "10683/3", Files: []string{"0042d-a.jpg", "0042c-b.jpg", "0042-c.jpg"}}))

	result := h.run(t, "10683/3")
	if result.Report.Count(curation.StatusSuccess) != 1 {
		t.Fatalf("expected a single SUCCESS line, got %v", result.Report.Lines())
	}
	got := testsupport.Values(testsupport.MustItem(t, h.store, "10683/3"), subject)
	if diff := cmp.Diff([]string{"Bridge", "River"}, got); diff != "" {
		t.Fatalf("subject mismatch (-want +got):\n%s", diff)
	}
}

func TestDistinctKeysEachApply(t *testing.T) {
	h := newHarness(t, "0042,Bridge\n0043,Boat\n", "",
		single(testsupport.ItemFixture{Handle: "10683/3", Files: []string{"0042.jpg", "0043.jpg"}}))

	result := h.run(t, "10683/3")
	if result.Report.Count(curation.StatusSuccess) != 2 {
		t.Fatalf("expected two SUCCESS lines, got %v", result.Report.Lines())
	}
	got := testsupport.Values(testsupport.MustItem(t, h.store, "10683/3"), subject)
	if diff := cmp.Diff([]string{"Bridge", "Boat"}, got); diff != "" {
		t.Fatalf("subject mismatch (-want +got):\n%s", diff)
	}
}

func TestItemsWithoutMatchesAreUntouched(t *testing.T) {
	h := newHarness(t, "img1,Nature\n", "",
		single(
			testsupport.ItemFixture{Handle: "10683/3", Titles: []string{"Empty"}},
			testsupport.ItemFixture{Handle: "10683/4", Titles: []string{"Other"}, Files: []string{"zzz.jpg"}},
			testsupport.ItemFixture{Handle: "10683/5", Titles: []string{"Thumb"}, Thumbnails: []string{"img1.jpg"}},
		))

	result := h.run(t, "10683/2")
	if result.Status != curation.StatusSkip {
		t.Fatalf("expected SKIP, got %s", result.Status)
	}
	if result.Report.Count(curation.StatusSuccess) != 0 {
		t.Fatalf("expected no SUCCESS lines, got %v", result.Report.Lines())
	}
	for _, handle := range []string{"10683/3", "10683/4", "10683/5"} {
		item := testsupport.MustItem(t, h.store, handle)
		if len(item.Metadata()) != 1 {
			t.Fatalf("item %s metadata changed: %+v", handle, item.Metadata())
		}
	}
}

func TestCommunityWithTwoCollectionsSucceedsTwice(t *testing.T) {
	h := newHarness(t, "img1,Nature\nimg2,Sea\n", "", testsupport.CommunityFixture{
		Handle: "10683/1",
		Collections: []testsupport.CollectionFixture{
			{Handle: "10683/10", Items: []testsupport.ItemFixture{{Handle: "10683/11", Files: []string{"img1.jpg"}}}},
			{Handle: "10683/20", Items: []testsupport.ItemFixture{{Handle: "10683/21", Files: []string{"img2-x.jpg"}}}},
		},
	})

	result := h.run(t, "10683/1")
	if result.Status != curation.StatusSuccess {
		t.Fatalf("expected SUCCESS, got %s", result.Status)
	}
	want := []string{
		"Added tags to item 10683/11 field dc.subject [Nature]",
		"Added tags to item 10683/21 field dc.subject [Sea]",
	}
	if diff := cmp.Diff(want, result.Report.Lines()); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteFailureSetsErrorAndContinues(t *testing.T) {
	h := newHarness(t, "img1,Nature\n", "",
		single(
			testsupport.ItemFixture{Handle: "10683/3", Files: []string{"img1.jpg"}},
			testsupport.ItemFixture{Handle: "10683/4", ReadOnly: true, Files: []string{"img1.jpg"}},
		))

	result := h.run(t, "10683/2")
	if result.Status != curation.StatusError {
		t.Fatalf("expected last outcome ERROR, got %s", result.Status)
	}
	if result.Report.Count(curation.StatusSuccess) != 1 || result.Report.Count(curation.StatusError) != 1 {
		t.Fatalf("unexpected report: %v", result.Report.Lines())
	}
	if !strings.Contains(result.Report.Lines()[1], "10683/4") {
		t.Fatalf("expected failure line to name the item, got %q", result.Report.Lines()[1])
	}
	if got := testsupport.Values(testsupport.MustItem(t, h.store, "10683/4"), subject); len(got) != 0 {
		t.Fatalf("read-only item gained tags: %v", got)
	}
}

func TestQualifiedFieldAndReportText(t *testing.T) {
	cfg := testsupport.NewConfig(t,
		testsupport.WithVocabulary("img1,Nature,Alps\n"),
		testsupport.WithTagField("dc", "subject", "lcsh", "en_GB"),
	)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedCommunity(t, store, single(testsupport.ItemFixture{Handle: "10683/3", Files: []string{"img1.jpg"}}))

	task, err := tagging.New(cfg, nil)
	if err != nil {
		t.Fatalf("tagging.New: %v", err)
	}
	result, err := curation.NewRunner(curation.Options{Store: store}).Perform(context.Background(), task, "10683/3")
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	want := "Added tags to item 10683/3 field dc.subject.lcsh [Alps, Nature]\n"
	if result.Report.String() != want {
		t.Fatalf("report = %q, want %q", result.Report.String(), want)
	}
	qualified := repository.Field{Schema: "dc", Element: "subject", Qualifier: "lcsh"}
	values := testsupport.MustItem(t, store, "10683/3").Values(qualified)
	if len(values) != 2 || values[0].Language != "en_GB" {
		t.Fatalf("unexpected stored values: %+v", values)
	}
}

func TestRepeatedRunsAppendAgain(t *testing.T) {
	h := newHarness(t, "img1,Nature\n", "",
		single(testsupport.ItemFixture{Handle: "10683/3", Files: []string{"img1.jpg"}}))

	h.run(t, "10683/3")
	h.run(t, "10683/3")
	got := testsupport.Values(testsupport.MustItem(t, h.store, "10683/3"), subject)
	if diff := cmp.Diff([]string{"Nature", "Nature"}, got); diff != "" {
		t.Fatalf("expected additive writes across runs (-want +got):\n%s", diff)
	}
}

func TestMissingVocabularyIsFatal(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.LoadTags.TagsFile = cfg.LoadTags.TagsFile + ".missing"
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedCommunity(t, store, single(testsupport.ItemFixture{Handle: "10683/3", Files: []string{"img1.jpg"}}))

	task, err := tagging.New(cfg, nil)
	if err != nil {
		t.Fatalf("tagging.New: %v", err)
	}
	result, err := curation.NewRunner(curation.Options{Store: store}).Perform(context.Background(), task, "10683/3")
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if result.Status != curation.StatusError || result.Report.Len() != 0 {
		t.Fatalf("expected ERROR with empty report, got %s %v", result.Status, result.Report.Lines())
	}
}
