package harness

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/umpc/go-sortedmap"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	morton "github.com/Akron/morton-go"
)

const (
	nameColumn = 24
	// mismatches listed per failed sweep; the rest are only counted
	maxListedMismatches = 10
)

// Report collects the results of a harness run for printing.
type Report struct {
	Sweeps   []Sweep
	Timings  []Timing
	Checksum uint64
}

// Groups buckets the timings by Timing.Group, keeping registration order for
// both the groups and the timings inside each group.
func (r Report) Groups() *orderedmap.OrderedMap[string, []Timing] {
	groups := orderedmap.New[string, []Timing]()
	for _, t := range r.Timings {
		ts, _ := groups.Get(t.Group())
		groups.Set(t.Group(), append(ts, t))
	}
	return groups
}

// Ranking orders the timings of one group by combined mean, fastest first.
func Ranking(timings []Timing) []Timing {
	ranked := sortedmap.New(len(timings), func(x, y interface{}) bool {
		return x.(float64) < y.(float64)
	})
	byStrategy := make(map[morton.Strategy]Timing, len(timings))
	for _, t := range timings {
		byStrategy[t.Strategy] = t
		ranked.Insert(t.Strategy, t.Mean())
	}
	out := make([]Timing, 0, len(timings))
	for _, k := range ranked.Keys() {
		out = append(out, byStrategy[k.(morton.Strategy)])
	}
	return out
}

func column(s string) string {
	return padding.String(truncate.StringWithTail(s, nameColumn-1, "..."), nameColumn)
}

// Write prints the correctness summary, the ranked timings and the checksum.
func (r Report) Write(w io.Writer) error {
	var b strings.Builder

	b.WriteString("Correctness\n")
	for _, s := range r.Sweeps {
		status := "PASS"
		if !s.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "  %s%s %7d checks %5d mismatches\n", column(s.Name), status, s.Checked, len(s.Mismatches))
		for i, mm := range s.Mismatches {
			if i == maxListedMismatches {
				fmt.Fprintf(&b, "    ... %d more\n", len(s.Mismatches)-i)
				break
			}
			fmt.Fprintf(&b, "    %s\n", mm)
		}
	}

	if len(r.Timings) > 0 {
		b.WriteString("\nPerformance (ns per call, linear / random)\n")
		for pair := r.Groups().Oldest(); pair != nil; pair = pair.Next() {
			fmt.Fprintf(&b, "%s\n", pair.Key)
			for i, t := range Ranking(pair.Value) {
				fmt.Fprintf(&b, "  %2d. %s%8.3f / %8.3f\n", i+1, column(t.Strategy.String()), t.Linear, t.Random)
			}
		}
		fmt.Fprintf(&b, "\nchecksum %#016x\n", r.Checksum)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
