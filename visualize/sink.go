package visualize

import (
	"encoding/json"
	"io"

	"github.com/samplestar-go/samplestar/belief"
	"github.com/samplestar-go/samplestar/gridcoord"
	"github.com/samplestar-go/samplestar/pathstore"
)

// WeightedCell pairs a candidate cell with its normalized weight in the
// active store, i.e. Get(cell) / Σ Get(candidates).
type WeightedCell struct {
	Cell   gridcoord.Cell `json:"cell"`
	Weight float64        `json:"weight"`
}

// StepRecord is the per-step JSON payload: the belief-state matrix,
// current/next cells, the active store's weighted candidates, and the
// step's rendered stat strings.
type StepRecord struct {
	Step       int64          `json:"step"`
	Belief     [][]float32    `json:"belief"`
	Current    gridcoord.Cell `json:"current"`
	Next       gridcoord.Cell `json:"next"`
	Candidates []WeightedCell `json:"candidates"`
	Stats      []string       `json:"stats"`
}

// FinalRecord is the one-shot completion payload: the committed path and
// its length.
type FinalRecord struct {
	Path   []gridcoord.Cell `json:"path"`
	Length int              `json:"length"`
}

// Sink writes newline-delimited JSON records to an underlying writer; it
// is not safe for concurrent use, matching the control loop's sequential
// post-rollout bookkeeping phase.
type Sink struct {
	enc *json.Encoder
}

// NewSink wraps w for step-by-step JSON emission.
func NewSink(w io.Writer) *Sink {
	return &Sink{enc: json.NewEncoder(w)}
}

// BeliefMatrix snapshots g's per-cell occupancy state into a row-major
// [height][width] slice, suitable for StepRecord.Belief.
func BeliefMatrix(g *belief.Grid) [][]float32 {
	rows := make([][]float32, g.Height)
	for y := 0; y < g.Height; y++ {
		row := make([]float32, g.Width)
		for x := 0; x < g.Width; x++ {
			row[x] = g.StateAt(gridcoord.Cell{X: x, Y: y})
		}
		rows[y] = row
	}
	return rows
}

// WeightedCandidates reads store.Get over candidates and normalizes by
// their sum; if every candidate has weight zero the weights are emitted
// as zero rather than dividing by zero.
func WeightedCandidates(store pathstore.Store, candidates []gridcoord.Cell) []WeightedCell {
	out := make([]WeightedCell, len(candidates))
	var total int64
	for i, c := range candidates {
		w := store.Get(c)
		out[i] = WeightedCell{Cell: c, Weight: float64(w)}
		total += w
	}
	if total > 0 {
		for i := range out {
			out[i].Weight /= float64(total)
		}
	}
	return out
}

// WriteStep emits one StepRecord as a line of JSON.
func (s *Sink) WriteStep(rec StepRecord) error {
	return s.enc.Encode(rec)
}

// WriteFinal emits the completion record for path: the committed path and
// its length. It does not check whether path ends at the goal.
func (s *Sink) WriteFinal(path []gridcoord.Cell) error {
	return s.enc.Encode(FinalRecord{Path: path, Length: len(path)})
}
