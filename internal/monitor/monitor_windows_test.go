//go:build windows

package monitor

import "testing"

// TestListMonitors_MatchesCount verifies enumeration agrees with the system monitor count.
func TestListMonitors_MatchesCount(t *testing.T) {
	n := Count()
	if n == 0 {
		t.Skip("no monitors attached")
	}
	list, err := ListMonitors()
	if err != nil {
		t.Fatalf("ListMonitors failed: %v", err)
	}
	if len(list) != n {
		t.Fatalf("expected %d monitors, got %d", n, len(list))
	}
	primaries := 0
	for i, m := range list {
		if m.Index != i+1 || m.Width <= 0 || m.Height <= 0 {
			t.Fatalf("unexpected monitor %+v", m)
		}
		if m.Primary {
			primaries++
		}
	}
	if primaries != 1 {
		t.Fatalf("expected one primary monitor, got %d", primaries)
	}
}
