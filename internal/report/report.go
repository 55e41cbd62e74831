// Package report prints the human-readable output of a fixture run.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/mmrzaf/fixturegen/internal/domain"
	"github.com/mmrzaf/fixturegen/internal/infra/sidecar"
	"github.com/mmrzaf/fixturegen/internal/timeutil"
	"github.com/olekukonko/tablewriter"
)

// PreviewRows is the number of rows shown by Preview.
const PreviewRows = 5

type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

func (r *Reporter) Start() {
	fmt.Fprintln(r.out, "Creating sample data for regression testing...")
}

func (r *Reporter) SavedParquet(path string) {
	fmt.Fprintf(r.out, "Saved parquet file to %s\n", path)
}

func (r *Reporter) SavedConfig(path string) {
	fmt.Fprintf(r.out, "Saved config file to %s\n", path)
}

func (r *Reporter) Done() {
	fmt.Fprintln(r.out, "Sample data creation complete")
}

// Preview prints the leading rows of table as a grid with a row index.
func (r *Reporter) Preview(table *domain.Table) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Sample Data:")
	RenderTable(r.out, table.Head(PreviewRows))
}

// Configuration prints cfg as indented JSON.
func (r *Reporter) Configuration(cfg *domain.TableConfig) error {
	data, err := sidecar.Encode(cfg, sidecar.FormatJSON)
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Configuration:")
	_, err = r.out.Write(data)
	return err
}

// RenderTable writes records as a grid. The first column is the zero-based
// row index.
func RenderTable(w io.Writer, records []domain.Record) {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader(append([]string{""}, columnNames()...))
	for i, rec := range records {
		tw.Append(formatRecord(i, rec))
	}
	tw.Render()
}

func columnNames() []string {
	names := make([]string, len(domain.Columns))
	for i, c := range domain.Columns {
		names[i] = c.Name
	}
	return names
}

func formatRecord(index int, rec domain.Record) []string {
	return []string{
		strconv.Itoa(index),
		strconv.FormatInt(rec.Age, 10),
		strconv.FormatInt(rec.Income, 10),
		rec.Education,
		strconv.FormatBool(rec.Employed),
		rec.JoinDate.UTC().Format(timeutil.DateLayout),
	}
}
