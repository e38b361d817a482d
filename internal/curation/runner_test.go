package curation_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/UoEMainLibrary/dspace-additions/internal/curation"
	"github.com/UoEMainLibrary/dspace-additions/internal/repository"
	"github.com/UoEMainLibrary/dspace-additions/internal/testsupport"
)

// recordingTask records visited handles and reports a write outcome per item.
type recordingTask struct {
	initErr  error
	visited  []string
	outcomes map[string]curation.Status
	itemErr  map[string]error
}

func (t *recordingTask) Name() string { return "record" }

func (t *recordingTask) Init(context.Context) error { return t.initErr }

func (t *recordingTask) PerformItem(_ context.Context, run *curation.Run, item *repository.Item) error {
	t.visited = append(t.visited, item.Handle)
	if err := t.itemErr[item.Handle]; err != nil {
		return err
	}
	outcome, ok := t.outcomes[item.Handle]
	if !ok {
		run.Skipped(item.Handle, "skip "+item.Handle)
		return nil
	}
	switch outcome {
	case curation.StatusSuccess:
		run.Succeeded(item.Handle, "ok "+item.Handle)
	case curation.StatusError:
		run.Failed(item.Handle, "failed "+item.Handle)
	default:
		run.Skipped(item.Handle, "skip "+item.Handle)
	}
	return nil
}

// failingStore injects enumeration failures into a real store.
type failingStore struct {
	curation.Store
	collectionsErr error
	itemsErr       map[int64]error
	itemErr        error
}

func (s *failingStore) Item(ctx context.Context, id int64) (*repository.Item, error) {
	if s.itemErr != nil {
		return nil, s.itemErr
	}
	return s.Store.Item(ctx, id)
}

func (s *failingStore) CommunityCollections(ctx context.Context, id int64) ([]repository.Collection, error) {
	if s.collectionsErr != nil {
		return nil, s.collectionsErr
	}
	return s.Store.CommunityCollections(ctx, id)
}

func (s *failingStore) CollectionItems(ctx context.Context, id int64) ([]*repository.Item, error) {
	if err := s.itemsErr[id]; err != nil {
		return nil, err
	}
	return s.Store.CollectionItems(ctx, id)
}

func seedTree(t *testing.T) *repository.Store {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	testsupport.SeedCommunity(t, store, testsupport.CommunityFixture{
		Handle: "1/1",
		Collections: []testsupport.CollectionFixture{
			{Handle: "1/10", Items: []testsupport.ItemFixture{{Handle: "1/100"}, {Handle: "1/101"}}},
			{Handle: "1/20", Items: []testsupport.ItemFixture{{Handle: "1/200"}}},
		},
	})
	return store
}

func newRunner(store curation.Store) *curation.Runner {
	return curation.NewRunner(curation.Options{Store: store, NewID: func() string { return "run-1" }})
}

func TestPerformDispatchesOnContainerKind(t *testing.T) {
	store := seedTree(t)
	ctx := context.Background()

	cases := []struct {
		handle string
		kind   string
		want   []string
	}{
		{"1/100", "item", []string{"1/100"}},
		{"1/10", "collection", []string{"1/100", "1/101"}},
		{"1/1", "community", []string{"1/100", "1/101", "1/200"}},
	}
	for _, tc := range cases {
		task := &recordingTask{}
		result, err := newRunner(store).Perform(ctx, task, tc.handle)
		if err != nil {
			t.Fatalf("Perform(%s): %v", tc.handle, err)
		}
		if diff := cmp.Diff(tc.want, task.visited); diff != "" {
			t.Fatalf("Perform(%s) visit order (-want +got):\n%s", tc.handle, diff)
		}
		if result.Kind != tc.kind {
			t.Fatalf("Perform(%s) kind = %q, want %q", tc.handle, result.Kind, tc.kind)
		}
		if result.RunID != "run-1" || result.Task != "record" || result.Handle != tc.handle {
			t.Fatalf("unexpected result identity: %+v", result)
		}
		if result.Status != curation.StatusSkip {
			t.Fatalf("expected SKIP without writes, got %s", result.Status)
		}
	}
}

func TestPerformUnsupportedHandleSkips(t *testing.T) {
	store := seedTree(t)
	task := &recordingTask{}
	result, err := newRunner(store).Perform(context.Background(), task, "1/404")
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if result.Status != curation.StatusSkip {
		t.Fatalf("expected SKIP, got %s", result.Status)
	}
	want := []string{"Object 1/404 is not an item, collection or community - SKIP"}
	if diff := cmp.Diff(want, result.Report.Lines()); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
	if len(task.visited) != 0 {
		t.Fatalf("expected no items visited, got %v", task.visited)
	}
}

func TestStatusIsLastWriteOutcome(t *testing.T) {
	store := seedTree(t)
	ctx := context.Background()

	cases := []struct {
		name     string
		outcomes map[string]curation.Status
		want     curation.Status
	}{
		{"error then success", map[string]curation.Status{"1/100": curation.StatusError, "1/200": curation.StatusSuccess}, curation.StatusSuccess},
		{"success then error", map[string]curation.Status{"1/100": curation.StatusSuccess, "1/200": curation.StatusError}, curation.StatusError},
		{"success then skip", map[string]curation.Status{"1/100": curation.StatusSuccess}, curation.StatusSuccess},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := &recordingTask{outcomes: tc.outcomes}
			result, err := newRunner(store).Perform(ctx, task, "1/1")
			if err != nil {
				t.Fatalf("Perform: %v", err)
			}
			if result.Status != tc.want {
				t.Fatalf("status = %s, want %s", result.Status, tc.want)
			}
			if result.Report.Len() != 3 {
				t.Fatalf("expected a line per item, got %d", result.Report.Len())
			}
		})
	}
}

func TestInitFailureIsFatal(t *testing.T) {
	store := seedTree(t)
	initErr := errors.New("tags file unreadable")
	task := &recordingTask{initErr: initErr}

	result, err := newRunner(store).Perform(context.Background(), task, "1/1")
	if !errors.Is(err, initErr) {
		t.Fatalf("expected init error, got %v", err)
	}
	if result.Status != curation.StatusError {
		t.Fatalf("expected ERROR, got %s", result.Status)
	}
	if result.Report.Len() != 0 || len(task.visited) != 0 {
		t.Fatal("expected no traversal after init failure")
	}
}

func TestCollectionEnumerationFailureStopsOnlyThatBranch(t *testing.T) {
	store := seedTree(t)
	ctx := context.Background()
	first, err := store.Resolve(ctx, "1/10")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	failing := &failingStore{Store: store, itemsErr: map[int64]error{first.ID: errors.New("disk gone")}}
	task := &recordingTask{outcomes: map[string]curation.Status{"1/200": curation.StatusSuccess}}
	result, err := newRunner(failing).Perform(ctx, task, "1/1")
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if diff := cmp.Diff([]string{"1/200"}, task.visited); diff != "" {
		t.Fatalf("visit mismatch (-want +got):\n%s", diff)
	}
	if result.Status != curation.StatusSuccess {
		t.Fatalf("expected SUCCESS, got %s", result.Status)
	}
}

func TestItemEnumerationFailureStopsCollection(t *testing.T) {
	store := seedTree(t)
	task := &recordingTask{itemErr: map[string]error{"1/100": errors.New("bundles unreadable")}}

	result, err := newRunner(store).Perform(context.Background(), task, "1/1")
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if diff := cmp.Diff([]string{"1/100", "1/200"}, task.visited); diff != "" {
		t.Fatalf("visit mismatch (-want +got):\n%s", diff)
	}
	if result.Status != curation.StatusSkip {
		t.Fatalf("enumeration failures must not change status, got %s", result.Status)
	}
}

func TestCommunityEnumerationFailureAbortsTraversal(t *testing.T) {
	store := seedTree(t)
	failing := &failingStore{Store: store, collectionsErr: errors.New("locked")}
	task := &recordingTask{}

	result, err := newRunner(failing).Perform(context.Background(), task, "1/1")
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if len(task.visited) != 0 {
		t.Fatalf("expected no items, got %v", task.visited)
	}
	if result.Status != curation.StatusSkip {
		t.Fatalf("expected SKIP, got %s", result.Status)
	}
}

func TestItemLoadFailureLeavesStatusUnchanged(t *testing.T) {
	store := seedTree(t)
	failing := &failingStore{Store: store, itemErr: errors.New("row vanished")}
	task := &recordingTask{outcomes: map[string]curation.Status{"1/100": curation.StatusSuccess}}

	result, err := newRunner(failing).Perform(context.Background(), task, "1/100")
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	if result.Kind != "item" {
		t.Fatalf("kind = %q, want item", result.Kind)
	}
	if len(task.visited) != 0 {
		t.Fatalf("expected no items visited, got %v", task.visited)
	}
	if result.Status != curation.StatusSkip || result.Report.Len() != 0 {
		t.Fatalf("expected SKIP with empty report, got %s with %d lines", result.Status, result.Report.Len())
	}
}

func TestMissingOutcomeSkipsEvenInsideSuccessfulRun(t *testing.T) {
	store := seedTree(t)
	task := &recordingTask{outcomes: map[string]curation.Status{"1/100": curation.StatusSuccess}}

	result, err := newRunner(store).Perform(context.Background(), task, "1/10")
	if err != nil {
		t.Fatalf("Perform: %v", err)
	}
	want := []string{"ok 1/100", "skip 1/101"}
	if diff := cmp.Diff(want, result.Report.Lines()); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
	if result.Status != curation.StatusSuccess {
		t.Fatalf("expected SUCCESS from the only write, got %s", result.Status)
	}
}
