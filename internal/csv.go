package internal

import (
	"encoding/csv"
	"io"
	"iter"
	"strings"

	"github.com/cockroachdb/errors"
)

type CSVResult[T any] struct {
	Line  int
	Value T
	Error error
}

// ParseCSV lazily converts each row of reader with fromCSV. When hasHeader is
// set the first row supplies the headers passed to fromCSV; otherwise headers
// is nil. Iteration stops after the first read error.
func ParseCSV[T any](reader io.Reader, hasHeader bool, fromCSV func(record, headers []string) (T, error)) iter.Seq[CSVResult[T]] {
	return func(yield func(CSVResult[T]) bool) {
		r := csv.NewReader(reader)
		r.FieldsPerRecord = -1
		r.LazyQuotes = true

		var headers []string
		if hasHeader {
			row, err := r.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(CSVResult[T]{Line: 1, Error: errors.Wrap(err, "failed to read CSV headers")})
				return
			}
			headers = make([]string, len(row))
			for i, h := range row {
				headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
			}
		}

		for {
			record, err := r.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				var parseErr *csv.ParseError
				line := 0
				if errors.As(err, &parseErr) {
					line = parseErr.Line
				}
				yield(CSVResult[T]{Line: line, Error: errors.Wrap(err, "failed to read CSV record")})
				return
			}
			line, _ := r.FieldPos(0)

			value, err := fromCSV(record, headers)
			if !yield(CSVResult[T]{Line: line, Value: value, Error: err}) {
				return
			}
		}
	}
}
