package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Lightweight per-tick CPU profiler for generation and meshing insights.

// Sample aggregates the time spent under one name since the last reset.
type Sample struct {
	Total time.Duration
	Calls int
}

var (
	mu         sync.Mutex
	tickTotals = make(map[string]Sample)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("subsystem.Operation")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		s := tickTotals[name]
		s.Total += d
		s.Calls++
		tickTotals[name] = s
		mu.Unlock()
	}
}

// ResetTick clears current per-tick totals. Call at the start of each tick.
func ResetTick() {
	mu.Lock()
	clear(tickTotals)
	mu.Unlock()
}

// Snapshot returns a copy of current per-tick totals.
func Snapshot() map[string]Sample {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]Sample, len(tickTotals))
	for k, v := range tickTotals {
		out[k] = v
	}
	return out
}

// TopN formats the n most expensive entries of the current totals.
// Example: "world.Tick:4.2ms(1), meshing.BuildMesh:2.1ms(3)"
func TopN(n int) string {
	ss := Snapshot()
	type pair struct {
		name string
		s    Sample
	}
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, s: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].s.Total == list[j].s.Total {
			return list[i].name < list[j].name
		}
		return list[i].s.Total > list[j].s.Total
	})
	n = min(n, len(list))
	parts := make([]string, 0, n)
	for _, p := range list[:n] {
		ms := float64(p.s.Total.Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s:%.1fms(%d)", p.name, ms, p.s.Calls))
	}
	return strings.Join(parts, ", ")
}
