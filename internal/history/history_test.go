package history

import (
	"fmt"
	"sync"
	"testing"
)

func TestAppendAndRecent(t *testing.T) {
	s := NewStore(3)

	if got := s.Recent("u1"); got != nil {
		t.Fatalf("Recent on empty store = %v", got)
	}

	s.Append("u1", Entry{Findings: "f1", Plan: "p1"})
	got := s.Recent("u1")
	if len(got) != 1 || got[0].Findings != "f1" {
		t.Fatalf("Recent = %+v", got)
	}
}

func TestCapacityKeepsNewest(t *testing.T) {
	s := NewStore(3)
	for i := 1; i <= 5; i++ {
		s.Append("u1", Entry{Findings: fmt.Sprintf("f%d", i)})
	}
	got := s.Recent("u1")
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, want := range []string{"f3", "f4", "f5"} {
		if got[i].Findings != want {
			t.Errorf("got[%d] = %q, want %q", i, got[i].Findings, want)
		}
	}
}

func TestUsersIsolated(t *testing.T) {
	s := NewStore(3)
	s.Append("u1", Entry{Findings: "a"})
	s.Append("u2", Entry{Findings: "b"})
	if got := s.Recent("u1"); len(got) != 1 || got[0].Findings != "a" {
		t.Fatalf("u1 = %+v", got)
	}
	if got := s.Recent("u2"); len(got) != 1 || got[0].Findings != "b" {
		t.Fatalf("u2 = %+v", got)
	}
}

func TestEmptyUserIDIgnored(t *testing.T) {
	s := NewStore(3)
	s.Append("", Entry{Findings: "x"})
	if got := s.Recent(""); got != nil {
		t.Fatalf("Recent(\"\") = %v", got)
	}
}

func TestRecentReturnsCopy(t *testing.T) {
	s := NewStore(3)
	s.Append("u1", Entry{Findings: "orig"})
	got := s.Recent("u1")
	got[0].Findings = "mutated"
	if again := s.Recent("u1"); again[0].Findings != "orig" {
		t.Fatalf("store mutated through returned slice: %+v", again)
	}
}

func TestConcurrentAppends(t *testing.T) {
	s := NewStore(3)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Append("u1", Entry{Findings: fmt.Sprintf("f%d", i)})
			_ = s.Recent("u1")
		}(i)
	}
	wg.Wait()
	if got := s.Recent("u1"); len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
}
