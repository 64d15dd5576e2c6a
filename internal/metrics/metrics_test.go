package metrics

import "testing"

func TestNewRegistryInitializesCollectors(t *testing.T) {
	r := New()
	if r == nil {
		t.Fatal("New() returned nil")
	}
	if r.SearchDuration == nil {
		t.Error("SearchDuration not initialized")
	}
	if r.SearchRequests == nil {
		t.Error("SearchRequests not initialized")
	}
	if r.IndexDocuments == nil {
		t.Error("IndexDocuments not initialized")
	}
	if r.registry == nil {
		t.Error("private prometheus registry not initialized")
	}
}

func TestNewRegistryInstancesAreIndependent(t *testing.T) {
	r1 := New()
	r2 := New()

	r1.ObserveSearch("relevance", "ok", 0.01)
	r2.SetIndexDocuments("packages", 42)

	families1, err := r1.Gatherer().Gather()
	if err != nil {
		t.Fatalf("gathering r1: %v", err)
	}
	for _, f := range families1 {
		if f.GetName() == "index_documents" {
			t.Error("r1 should not have observed r2's index_documents update")
		}
	}
}

func TestObserveSearchIncrementsCounterByOutcome(t *testing.T) {
	r := New()
	r.ObserveSearch("relevance", "ok", 0.02)
	r.ObserveSearch("relevance", "empty", 0.01)

	families, err := r.Gatherer().Gather()
	if err != nil {
		t.Fatalf("gathering: %v", err)
	}

	var found bool
	for _, f := range families {
		if f.GetName() != "search_requests_total" {
			continue
		}
		found = true
		if len(f.GetMetric()) != 2 {
			t.Errorf("expected 2 label combinations, got %d", len(f.GetMetric()))
		}
	}
	if !found {
		t.Fatal("search_requests_total family not found")
	}
}
