package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/sortlab/internal/trace"
)

// WriteCSV writes one row per step: index, kind, the highlight sets as
// space-separated indices, pivot (empty when absent), description and then
// one column per array slot.
func WriteCSV(w io.Writer, tr trace.Trace) error {
	cw := csv.NewWriter(w)

	header := []string{"index", "kind", "comparing", "swapping", "sorted", "pivot", "description"}
	if len(tr) > 0 {
		for i := range tr[0].Array {
			header = append(header, fmt.Sprintf("v%d", i))
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, s := range tr {
		pivot := ""
		if s.HasPivot() {
			pivot = strconv.Itoa(s.Pivot)
		}
		row := []string{
			strconv.Itoa(i),
			s.Kind.String(),
			joinInts(s.Comparing),
			joinInts(s.Swapping),
			joinInts(s.Sorted),
			pivot,
			s.Description,
		}
		for _, it := range s.Array {
			row = append(row, strconv.Itoa(it.Value))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}
