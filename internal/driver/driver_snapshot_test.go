package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixturesProduceStableIR runs every *.epica fixture through the whole
// pipeline and snapshots the emitted textual IR against a stored golden
// copy.
func TestFixturesProduceStableIR(t *testing.T) {
	fixtures, err := filepath.Glob("../../testdata/fixtures/*.epica")
	if err != nil {
		t.Fatalf("globbing fixtures: %s", err)
	}
	if len(fixtures) == 0 {
		t.Fatal("expected at least one fixture under testdata/fixtures")
	}

	for _, path := range fixtures {
		path := path
		name := filepath.Base(path)
		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading fixture: %s", err)
			}

			ir, err := Compile(string(src), name, 0)
			if err != nil {
				t.Fatalf("unexpected compile error for %s: %s", name, err)
			}
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_ir", name), ir)
		})
	}
}

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}
