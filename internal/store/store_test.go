package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/lokeshkumar99/ai-competition-scout/internal/briefing"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "briefings.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func sampleBriefings() []briefing.Briefing {
	return []briefing.Briefing{
		{Competitor: "Braze", ProductLine: "Push", FeatureUpdate: "New push SDK", ProcessedAt: "2025-08-30T10:00:00Z"},
		{Competitor: "Iterable", ProductLine: "Email", FeatureUpdate: "Template manager", ProcessedAt: "2025-08-29T10:00:00Z"},
	}
}

func TestReplaceAndLoad(t *testing.T) {
	s, _ := testStore(t)

	if err := s.Replace(sampleBriefings(), LastSearch{Competitor: "All"}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 briefings, got %d", len(got))
	}
	// Server order is preserved: element 0 stays the most recent
	if got[0].FeatureUpdate != "New push SDK" {
		t.Errorf("order not preserved, got %q first", got[0].FeatureUpdate)
	}
}

func TestReplaceIsWholesale(t *testing.T) {
	s, _ := testStore(t)

	if err := s.Replace(sampleBriefings(), LastSearch{}); err != nil {
		t.Fatalf("first replace: %v", err)
	}
	if err := s.Replace([]briefing.Briefing{{Competitor: "Braze", FeatureUpdate: "Only one"}}, LastSearch{}); err != nil {
		t.Fatalf("second replace: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 || got[0].FeatureUpdate != "Only one" {
		t.Errorf("snapshot not replaced wholesale: %+v", got)
	}
}

func TestReplaceEmptyClears(t *testing.T) {
	s, _ := testStore(t)

	if err := s.Replace(sampleBriefings(), LastSearch{}); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if err := s.Replace(nil, LastSearch{}); err != nil {
		t.Fatalf("empty replace: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty snapshot, got %d briefings", len(got))
	}
}

func TestLastSearchMetadata(t *testing.T) {
	s, _ := testStore(t)

	if _, ok := s.Last(); ok {
		t.Error("expected no metadata before first replace")
	}

	at := time.Now().Truncate(time.Second)
	err := s.Replace(sampleBriefings(), LastSearch{Competitor: "Braze", ProductLine: "Push", FetchedAt: at})
	if err != nil {
		t.Fatalf("replace: %v", err)
	}

	last, ok := s.Last()
	if !ok {
		t.Fatal("expected metadata after replace")
	}
	if last.Competitor != "Braze" || last.ProductLine != "Push" {
		t.Errorf("unexpected metadata: %+v", last)
	}
	if !last.FetchedAt.Equal(at) {
		t.Errorf("fetched_at = %v, want %v", last.FetchedAt, at)
	}
}

func TestStats(t *testing.T) {
	s, path := testStore(t)

	if err := s.Replace(sampleBriefings(), LastSearch{}); err != nil {
		t.Fatalf("replace: %v", err)
	}

	count, size, err := s.Stats(path)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 briefings, got %d", count)
	}
	if size <= 0 {
		t.Errorf("expected positive size, got %d", size)
	}
}
