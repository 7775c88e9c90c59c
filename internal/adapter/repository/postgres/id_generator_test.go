package postgres

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
)

func TestULIDGeneratorSortsInGenerationOrder(t *testing.T) {
	g := NewULIDGenerator()
	fixed := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	prev := ""
	for range 1000 {
		id := g.Generate()
		if _, err := ulid.ParseStrict(id); err != nil {
			t.Fatalf("invalid ulid %q: %v", id, err)
		}
		if id <= prev {
			t.Fatalf("id %s not after %s", id, prev)
		}
		prev = id
	}
}
