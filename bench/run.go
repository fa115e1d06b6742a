package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/dynaforest/core"
	"github.com/katalvlaran/dynaforest/workload"
)

// Result is the outcome of Run: total and per-run timing, plus the
// yes-answer count the original C++ driver accumulates to keep the
// compiler from eliding PATH queries (parse_input.h's total_cons).
type Result struct {
	NumVertices int
	NumQueries  int
	Name        string
	Repeat      int
	Total       time.Duration
	YesAnswers  int
}

// PerRun is the total time divided by Repeat.
func (r Result) PerRun() time.Duration {
	if r.Repeat == 0 {
		return 0
	}

	return r.Total / time.Duration(r.Repeat)
}

// PerQuery is PerRun divided by the number of queries in one run.
func (r Result) PerQuery() time.Duration {
	if r.NumQueries == 0 {
		return 0
	}

	return r.PerRun() / time.Duration(r.NumQueries)
}

// Run builds a fresh engine via build, replays items against it, repeat
// times, and reports timing. LINK and CUT errors are ignored (the
// workload is assumed to already satisfy its preconditions, as produced
// by workload.ParseFile or equivalence.RandomWorkload); PATH queries
// accumulate into Result.YesAnswers exactly as parse_input.h's
// bench_queries does with total_cons, so an over-eager compiler cannot
// optimize the loop away.
func Run(name string, numVertices int, repeat int, build func() core.Engine, items []workload.Item) (Result, error) {
	if repeat <= 0 {
		return Result{}, fmt.Errorf("bench: repeat must be positive, got %d", repeat)
	}

	start := time.Now()
	yes := 0
	for i := 0; i < repeat; i++ {
		eng := build()
		for _, it := range items {
			switch it.Type {
			case workload.Link:
				_ = eng.Link(it.A, it.B)
			case workload.Cut:
				_ = eng.Cut(it.A, it.B)
			case workload.Path:
				if eng.Connected(it.A, it.B) {
					yes++
				}
			}
		}
	}
	total := time.Since(start)

	return Result{
		NumVertices: numVertices,
		NumQueries:  len(items),
		Name:        name,
		Repeat:      repeat,
		Total:       total,
		YesAnswers:  yes / repeat,
	}, nil
}

// jsonLine mirrors spec §6.3's exact object shape.
type jsonLine struct {
	NumVertices int    `json:"num_vertices"`
	NumQueries  int    `json:"num_queries"`
	Name        string `json:"name"`
	TimeNs      int64  `json:"time_ns"`
}

// WriteJSON writes the single-line JSON object spec §6.3 requires, where
// time_ns is the per-run nanosecond cost.
func (r Result) WriteJSON(w io.Writer) error {
	line := jsonLine{
		NumVertices: r.NumVertices,
		NumQueries:  r.NumQueries,
		Name:        r.Name,
		TimeNs:      r.PerRun().Nanoseconds(),
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	return enc.Encode(line)
}

// WriteText writes the plain-text report: total, per-run, and per-query
// time in microseconds, plus the averaged yes-answer count.
func (r Result) WriteText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Total yes-answers: %d\n%d us total\n%d us/run\n%.3f us/query\n",
		r.YesAnswers,
		r.Total.Microseconds(),
		r.PerRun().Microseconds(),
		float64(r.PerRun().Microseconds())/float64(max(r.NumQueries, 1)),
	)

	return err
}
