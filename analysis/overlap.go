package analysis

import (
	"sort"

	"github.com/assforge/asstk/ast"
)

// A DialogueInfo is the per-event analysis result: parsed timing, text analysis, and a back-
// reference to the source event's index within its Events section (spec.md §3, §4.4).
type DialogueInfo struct {
	EventIndex int
	Event      *ast.Event
	StartCs    int
	EndCs      int
	Text       TextAnalysis
}

// DurationCs returns the saturating duration, per spec.md §3/§8.
func (d DialogueInfo) DurationCs() int {
	return ast.SaturatingSub(d.EndCs, d.StartCs)
}

// AnalyzeEvents builds a DialogueInfo for every event in the script's Events section, in source
// order: timing via ast.ParseTimeCentiseconds and text via AnalyzeText.
func AnalyzeEvents(script *ast.Script) []DialogueInfo {
	events := script.Events()
	if events == nil {
		return nil
	}
	out := make([]DialogueInfo, 0, len(events.Entries))
	for i, ev := range events.Entries {
		startCs, _ := ast.ParseTimeCentiseconds(ev.Start.String(script.Source))
		endCs, _ := ast.ParseTimeCentiseconds(ev.End.String(script.Source))
		out = append(out, DialogueInfo{
			EventIndex: i,
			Event:      ev,
			StartCs:    startCs,
			EndCs:      endCs,
			Text:       AnalyzeText(script.Source, ev.Text),
		})
	}
	return out
}

// endpoint is one sweep-line event: a time, whether it's a start or an end, and the dialogue
// index it belongs to.
type endpoint struct {
	time    int
	isStart bool
	index   int
}

// FindOverlappingEventRefs implements the sweep-line overlap detector from spec.md §4.4: O(n log
// n), sorted by time with ends sorted before starts at equal times, returning index pairs (i, j)
// with i < j whose [start, end) intervals intersect.
func FindOverlappingEventRefs(infos []DialogueInfo) [][2]int {
	n := len(infos)
	endpoints := make([]endpoint, 0, 2*n)
	for i, info := range infos {
		endpoints = append(endpoints,
			endpoint{time: info.StartCs, isStart: true, index: i},
			endpoint{time: info.EndCs, isStart: false, index: i})
	}
	sort.Slice(endpoints, func(a, b int) bool {
		if endpoints[a].time != endpoints[b].time {
			return endpoints[a].time < endpoints[b].time
		}
		// ties: ends before starts.
		return !endpoints[a].isStart && endpoints[b].isStart
	})

	var pairs [][2]int
	active := map[int]bool{}
	for _, ep := range endpoints {
		if ep.isStart {
			for other := range active {
				i, j := ep.index, other
				if i > j {
					i, j = j, i
				}
				pairs = append(pairs, [2]int{i, j})
			}
			active[ep.index] = true
		} else {
			delete(active, ep.index)
		}
	}

	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a][0] != pairs[b][0] {
			return pairs[a][0] < pairs[b][0]
		}
		return pairs[a][1] < pairs[b][1]
	})
	return pairs
}

// CountOverlappingDialogueEvents returns the number of overlapping pairs.
func CountOverlappingDialogueEvents(infos []DialogueInfo) int {
	return len(FindOverlappingEventRefs(infos))
}

// FindEventsInRange returns the indices of every event whose interval intersects
// [startCs, endCs), using the same half-open interval predicate as the overlap sweep.
func FindEventsInRange(infos []DialogueInfo, startCs, endCs int) []int {
	var out []int
	for i, info := range infos {
		if info.StartCs < endCs && startCs < info.EndCs {
			out = append(out, i)
		}
	}
	return out
}
