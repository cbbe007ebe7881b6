package tips

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tips.txt")
	content := "# my tips\n\ninterleaving | Mix subjects in one session.\n  | orphan description\nREST\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 tips, got %d: %+v", len(got), got)
	}
	if got[0].Title != "INTERLEAVING" || got[0].Desc != "Mix subjects in one session." {
		t.Fatalf("unexpected first tip %+v", got[0])
	}
	if got[1].String() != "REST" {
		t.Fatalf("unexpected second tip %q", got[1].String())
	}
}

func TestLoadEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tips.txt")
	if err := os.WriteFile(path, []byte("\n# nothing\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for empty tips file")
	}
}

func TestRotatorNeverRepeats(t *testing.T) {
	r := NewSeededRotator(Builtin(), 7)
	prev, ok := r.Next()
	if !ok {
		t.Fatalf("expected a tip")
	}
	for i := 0; i < 200; i++ {
		tip, _ := r.Next()
		if tip == prev {
			t.Fatalf("tip %q repeated at step %d", tip.Title, i)
		}
		prev = tip
	}
}

func TestRotatorEdgeCases(t *testing.T) {
	if _, ok := NewSeededRotator(nil, 1).Next(); ok {
		t.Fatalf("empty rotator should report no tip")
	}
	single := NewSeededRotator([]Tip{{Title: "ONLY"}}, 1)
	for i := 0; i < 3; i++ {
		if tip, ok := single.Next(); !ok || tip.Title != "ONLY" {
			t.Fatalf("single rotator returned %+v %v", tip, ok)
		}
	}
}

func TestCycleWraps(t *testing.T) {
	quotes := Quotes()
	r := NewSeededRotator(quotes, 1)
	for i := 0; i < len(quotes)+1; i++ {
		q, _ := r.Cycle()
		if q != quotes[i%len(quotes)] {
			t.Fatalf("step %d: expected %q, got %q", i, quotes[i%len(quotes)].Title, q.Title)
		}
	}
}
