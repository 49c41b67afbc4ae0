package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/sortlab/internal/trace"
)

// Meta describes the run a trace came from.
type Meta struct {
	ID        uuid.UUID          `json:"id"`
	Algorithm string             `json:"algorithm"`
	Seed      int64              `json:"seed"`
	Size      int                `json:"size"`
	CreatedAt time.Time          `json:"created_at"`
	Metrics   map[string]float64 `json:"metrics,omitempty"`
}

type Document struct {
	Meta
	Steps int        `json:"steps"`
	Trace []StepData `json:"trace"`
}

type StepData struct {
	Index       int          `json:"index"`
	Kind        string       `json:"kind"`
	Array       []trace.Item `json:"array"`
	Comparing   []int        `json:"comparing"`
	Swapping    []int        `json:"swapping"`
	Sorted      []int        `json:"sorted"`
	Pivot       *int         `json:"pivot,omitempty"`
	Description string       `json:"description"`
}

func NewDocument(meta Meta, tr trace.Trace) Document {
	doc := Document{
		Meta:  meta,
		Steps: len(tr),
		Trace: make([]StepData, len(tr)),
	}
	for i, s := range tr {
		doc.Trace[i] = stepData(i, s)
	}
	return doc
}

func stepData(i int, s trace.Step) StepData {
	d := StepData{
		Index:       i,
		Kind:        s.Kind.String(),
		Array:       s.Array,
		Comparing:   nonNil(s.Comparing),
		Swapping:    nonNil(s.Swapping),
		Sorted:      nonNil(s.Sorted),
		Description: s.Description,
	}
	if s.HasPivot() {
		p := s.Pivot
		d.Pivot = &p
	}
	return d
}

// WriteJSON writes meta and every step of tr as one indented document.
func WriteJSON(w io.Writer, meta Meta, tr trace.Trace) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(NewDocument(meta, tr))
}

func nonNil(xs []int) []int {
	if xs == nil {
		return []int{}
	}
	return xs
}
