package stockexplorer

import "testing"

func TestSessionAdd(t *testing.T) {
	s := NewSession()
	sum := Summarize(testSeries())

	if !s.Add(sum) {
		t.Error("Add() = false for a new summary, want true")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}

	// Same company and date range: must not be stored twice.
	if s.Add(Summarize(testSeries())) {
		t.Error("Add() = true for a duplicate summary, want false")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d after duplicate Add, want 1", s.Len())
	}
}

func TestSessionAddDifferentRange(t *testing.T) {
	s := NewSession()
	s.Add(Summarize(testSeries()))

	other := Summarize(testSeries())
	other.DateRange = "2024-02-01 to 2024-02-15"
	if !s.Add(other) {
		t.Error("Add() = false for the same ticker on a different range, want true")
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestSessionAll(t *testing.T) {
	s := NewSession()
	sum := Summarize(testSeries())
	s.Add(sum)

	all := s.All()
	if len(all) != 1 || all[0] != sum {
		t.Errorf("All() = %v, want the single stored summary", all)
	}
	if s.Get(0) != sum {
		t.Errorf("Get(0) did not return the stored summary")
	}
}
