package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"onebrc/record"
	"onebrc/stats"

	"github.com/olekukonko/tablewriter"
)

type Format int

const (
	// FormatBRC renders {A=min/mean/max, B=...} on one line.
	FormatBRC Format = iota
	// FormatLines renders one key=min/mean/max per line.
	FormatLines
	FormatTable
)

func (f Format) String() string {
	switch f {
	case FormatBRC:
		return "brc"
	case FormatLines:
		return "lines"
	case FormatTable:
		return "table"
	}
	return "unknown"
}

func ParseFormat(s string) (Format, error) {
	switch s {
	case "brc", "":
		return FormatBRC, nil
	case "lines":
		return FormatLines, nil
	case "table":
		return FormatTable, nil
	}
	return 0, fmt.Errorf("unknown format %q (use brc, lines or table)", s)
}

// Write renders sums, which are expected to be sorted by key.
func Write(w io.Writer, sums []stats.Summary, f Format) error {
	switch f {
	case FormatBRC:
		return writeBRC(w, sums)
	case FormatLines:
		return writeLines(w, sums)
	case FormatTable:
		return writeTable(w, sums)
	}
	return fmt.Errorf("unknown format %d", f)
}

func appendSummary(dst []byte, s stats.Summary) []byte {
	dst = append(dst, s.Key...)
	dst = append(dst, '=')
	dst = record.AppendTenths(dst, s.Min)
	dst = append(dst, '/')
	dst = record.AppendTenths(dst, s.Mean)
	dst = append(dst, '/')
	return record.AppendTenths(dst, s.Max)
}

func writeBRC(w io.Writer, sums []stats.Summary) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 256)

	bw.WriteByte('{')
	for i, s := range sums {
		buf = buf[:0]
		if i > 0 {
			buf = append(buf, ", "...)
		}
		bw.Write(appendSummary(buf, s))
	}
	bw.WriteString("}\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	return nil
}

func writeLines(w io.Writer, sums []stats.Summary) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 256)

	for _, s := range sums {
		buf = append(appendSummary(buf[:0], s), '\n')
		bw.Write(buf)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	return nil
}

func writeTable(w io.Writer, sums []stats.Summary) error {
	data := make([][]string, len(sums))
	for i, s := range sums {
		data[i] = []string{
			s.Key,
			record.FormatTenths(s.Min),
			record.FormatTenths(s.Mean),
			record.FormatTenths(s.Max),
			strconv.FormatUint(s.Count, 10),
		}
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Station", "Min", "Mean", "Max", "Count"})
	table.SetAutoFormatHeaders(false)
	table.AppendBulk(data)
	table.Render()
	return nil
}
