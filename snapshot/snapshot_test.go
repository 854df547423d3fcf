package snapshot_test

import (
	"testing"
	"time"

	report "github.com/reportkit/go-report"
	"github.com/reportkit/go-report/snapshot"
)

// Capturer must satisfy the report's Snapshotter interface.
var _ report.Snapshotter = (*snapshot.Capturer)(nil)

func TestNew_DefaultTimeout(t *testing.T) {
	t.Parallel()

	for _, d := range []time.Duration{0, -time.Second} {
		c := snapshot.New(d)
		if c == nil {
			t.Fatal("New() returned nil")
		}
		if err := c.Close(); err != nil {
			t.Errorf("Close() on unused capturer: %v", err)
		}
	}
}

func TestClose_Idempotent(t *testing.T) {
	t.Parallel()

	c := snapshot.New(time.Second)
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
}
