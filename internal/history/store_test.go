package history

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndSeries(t *testing.T) {
	s := openTestStore(t)

	for day, total := range map[int]int{3: 30, 1: 10, 2: 18} {
		if err := s.Record("octocat", 2026, 8, day, total); err != nil {
			t.Fatalf("Record() error: %v", err)
		}
	}

	series, err := s.Series("octocat", 2026, 8)
	if err != nil {
		t.Fatalf("Series() error: %v", err)
	}
	if len(series) != 3 {
		t.Fatalf("series length = %d, want 3", len(series))
	}
	want := []DayTotal{{1, 10}, {2, 18}, {3, 30}}
	for i, w := range want {
		if series[i] != w {
			t.Errorf("series[%d] = %+v, want %+v", i, series[i], w)
		}
	}
}

func TestRecord_SameDayReplaces(t *testing.T) {
	s := openTestStore(t)

	if err := s.Record("octocat", 2026, 8, 15, 100); err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if err := s.Record("octocat", 2026, 8, 15, 140); err != nil {
		t.Fatalf("Record() second write error: %v", err)
	}

	series, err := s.Series("octocat", 2026, 8)
	if err != nil {
		t.Fatalf("Series() error: %v", err)
	}
	if len(series) != 1 || series[0].TotalRequests != 140 {
		t.Errorf("series = %+v, want single row with 140", series)
	}
}

func TestSeries_ScopedToUserAndMonth(t *testing.T) {
	s := openTestStore(t)

	s.Record("octocat", 2026, 8, 1, 10)
	s.Record("octocat", 2026, 7, 1, 999)
	s.Record("hubber", 2026, 8, 1, 999)

	series, err := s.Series("octocat", 2026, 8)
	if err != nil {
		t.Fatalf("Series() error: %v", err)
	}
	if len(series) != 1 || series[0].TotalRequests != 10 {
		t.Errorf("series = %+v, want only octocat 2026-08", series)
	}
}

func TestSeries_EmptyMonth(t *testing.T) {
	s := openTestStore(t)
	series, err := s.Series("octocat", 2026, 8)
	if err != nil {
		t.Fatalf("Series() error: %v", err)
	}
	if len(series) != 0 {
		t.Errorf("series = %+v, want empty", series)
	}
}
