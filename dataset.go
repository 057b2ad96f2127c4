package cohortsim

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"gonum.org/v1/gonum/mat"
)

// Observation is one simulated survey record.
type Observation struct {
	JobSat    float64 // Job satisfaction, z-scored
	IntQui    float64 // Intent to quit, z-scored
	Age       float64 // Age, z-scored
	OrgTenure float64 // Organizational tenure, z-scored
	Cohort    string  // Owning cohort's label
	FirmSize  int     // Uniform draw from the cohort's size band
}

// Dataset is the ordered concatenation of all cohort tables. Column order
// is fixed: {job_sat, int_qui, age, org_tnr, cohort, firm_size}.
type Dataset struct {
	Observations []Observation
}

// Len returns the number of rows.
func (d *Dataset) Len() int { return len(d.Observations) }

// Matrix returns the four z-scored columns as an n×4 dense matrix, the
// design-matrix handoff for downstream regression.
func (d *Dataset) Matrix() *mat.Dense {
	m := mat.NewDense(len(d.Observations), NumVariables, nil)
	for i, o := range d.Observations {
		m.SetRow(i, []float64{o.JobSat, o.IntQui, o.Age, o.OrgTenure})
	}
	return m
}

// Select returns the rows belonging to one cohort, preserving order.
func (d *Dataset) Select(label string) *Dataset {
	out := &Dataset{}
	for _, o := range d.Observations {
		if o.Cohort == label {
			out.Observations = append(out.Observations, o)
		}
	}
	return out
}

// CountByCohort returns the number of rows per cohort label.
func (d *Dataset) CountByCohort() map[string]int {
	counts := make(map[string]int)
	for _, o := range d.Observations {
		counts[o.Cohort]++
	}
	return counts
}

// header is the exported column order for both CSV and Arrow.
var header = []string{"job_sat", "int_qui", "age", "org_tnr", "cohort", "firm_size"}

// WriteCSV writes the dataset as CSV with a header row.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	row := make([]string, len(header))
	for _, o := range d.Observations {
		row[0] = strconv.FormatFloat(o.JobSat, 'g', -1, 64)
		row[1] = strconv.FormatFloat(o.IntQui, 'g', -1, 64)
		row[2] = strconv.FormatFloat(o.Age, 'g', -1, 64)
		row[3] = strconv.FormatFloat(o.OrgTenure, 'g', -1, 64)
		row[4] = o.Cohort
		row[5] = strconv.Itoa(o.FirmSize)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ArrowSchema is the dataset's Arrow schema, shared by writer and readers.
func ArrowSchema() *arrow.Schema {
	return arrow.NewSchema([]arrow.Field{
		{Name: "job_sat", Type: arrow.PrimitiveTypes.Float64},
		{Name: "int_qui", Type: arrow.PrimitiveTypes.Float64},
		{Name: "age", Type: arrow.PrimitiveTypes.Float64},
		{Name: "org_tnr", Type: arrow.PrimitiveTypes.Float64},
		{Name: "cohort", Type: arrow.BinaryTypes.String},
		{Name: "firm_size", Type: arrow.PrimitiveTypes.Int64},
	}, nil)
}

// WriteArrow writes the dataset as a single-record Arrow IPC stream, the
// columnar handoff for plotting and regression tooling. The stream format
// needs no seeking, so any io.Writer works.
func (d *Dataset) WriteArrow(w io.Writer) error {
	schema := ArrowSchema()
	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()

	for _, o := range d.Observations {
		b.Field(0).(*array.Float64Builder).Append(o.JobSat)
		b.Field(1).(*array.Float64Builder).Append(o.IntQui)
		b.Field(2).(*array.Float64Builder).Append(o.Age)
		b.Field(3).(*array.Float64Builder).Append(o.OrgTenure)
		b.Field(4).(*array.StringBuilder).Append(o.Cohort)
		b.Field(5).(*array.Int64Builder).Append(int64(o.FirmSize))
	}

	rec := b.NewRecord()
	defer rec.Release()

	fw := ipc.NewWriter(w, ipc.WithSchema(schema))
	if err := fw.Write(rec); err != nil {
		fw.Close()
		return fmt.Errorf("write arrow record: %w", err)
	}
	if err := fw.Close(); err != nil {
		return fmt.Errorf("close arrow writer: %w", err)
	}
	return nil
}
