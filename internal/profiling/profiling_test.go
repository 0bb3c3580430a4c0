package profiling

import (
	"strings"
	"testing"
	"time"
)

func TestTrackAccumulates(t *testing.T) {
	ResetTick()
	for range 3 {
		stop := Track("test.op")
		time.Sleep(time.Millisecond)
		stop()
	}
	s := Snapshot()["test.op"]
	if s.Calls != 3 {
		t.Errorf("Calls = %d, want 3", s.Calls)
	}
	if s.Total < 3*time.Millisecond {
		t.Errorf("Total = %v, want at least 3ms", s.Total)
	}

	ResetTick()
	if len(Snapshot()) != 0 {
		t.Error("ResetTick left entries behind")
	}
}

func TestTopNOrder(t *testing.T) {
	ResetTick()
	stop := Track("slow")
	time.Sleep(5 * time.Millisecond)
	stop()
	Track("fast")()

	top := TopN(1)
	if !strings.HasPrefix(top, "slow:") || strings.Contains(top, "fast") {
		t.Errorf("TopN(1) = %q", top)
	}
	if parts := strings.Split(TopN(10), ", "); len(parts) != 2 {
		t.Errorf("TopN(10) returned %d entries, want 2", len(parts))
	}
}
