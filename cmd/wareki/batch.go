package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	wareki "github.com/rabitt1ove/jp-wareki"
)

// maxInputSize is the default cap on CSV input, in bytes.
const maxInputSize = 64 * 1024 * 1024

// errInputTooLarge is returned when the input is longer than the cap.
var errInputTooLarge = errors.New("input too large")

type batchOptions struct {
	Encoding   string // encodingUTF8 or encodingShiftJIS
	Column     int    // 0-based column holding the date
	Header     bool   // first row is a header
	HeaderName string // name of the appended column
	Strict     bool   // abort on the first failed row
	MaxBytes   int64  // input cap; maxInputSize if zero
}

type batchStats struct {
	Rows      int
	Converted int
	Failed    int
}

// cappedReader fails once more than limit bytes have been read, so an
// oversized input is rejected instead of being cut off mid-row.
type cappedReader struct {
	r     io.Reader
	limit int64
	read  int64
}

func (c *cappedReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.read += int64(n)
	if c.read > c.limit {
		return n - int(c.read-c.limit), fmt.Errorf("%w: exceeds %d bytes", errInputTooLarge, c.limit)
	}
	return n, err
}

// decodeInput wraps r with a size cap and a decoder for enc.
// UTF-8 input may start with a byte order mark, as Excel writes it.
func decodeInput(r io.Reader, enc string, limit int64) (io.Reader, error) {
	if limit <= 0 {
		limit = maxInputSize
	}
	capped := &cappedReader{r: io.LimitReader(r, limit+1), limit: limit}
	switch enc {
	case encodingUTF8:
		return transform.NewReader(capped, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	case encodingShiftJIS:
		return transform.NewReader(capped, japanese.ShiftJIS.NewDecoder()), nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", enc)
}

// convertCSV reads CSV from r, converts the date in opts.Column of every
// data row, and writes each row with the result appended as UTF-8 CSV.
// Rows that fail are logged; unless opts.Strict is set their result cell
// is left empty and processing continues.
func convertCSV(conv *wareki.Converter, r io.Reader, w io.Writer, opts batchOptions, logger *zap.Logger) (batchStats, error) {
	var stats batchStats

	decoded, err := decodeInput(r, opts.Encoding, opts.MaxBytes)
	if err != nil {
		return stats, err
	}
	reader := csv.NewReader(decoded)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	writer := csv.NewWriter(w)

	lineNum := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("line %d: %w", lineNum+1, err)
		}
		lineNum++

		if lineNum == 1 && opts.Header {
			if err := writer.Write(append(record, opts.HeaderName)); err != nil {
				return stats, fmt.Errorf("writing header: %w", err)
			}
			continue
		}
		stats.Rows++

		result, err := convertRecord(conv, record, opts.Column)
		if err != nil {
			stats.Failed++
			logger.Warn("row conversion failed", zap.Int("row", lineNum), zap.Error(err))
			if opts.Strict {
				writer.Flush()
				return stats, fmt.Errorf("line %d: %w", lineNum, err)
			}
		} else {
			stats.Converted++
		}

		if err := writer.Write(append(record, result)); err != nil {
			return stats, fmt.Errorf("line %d: writing: %w", lineNum, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return stats, fmt.Errorf("writing output: %w", err)
	}
	return stats, nil
}

func convertRecord(conv *wareki.Converter, record []string, column int) (string, error) {
	if column >= len(record) {
		return "", fmt.Errorf("column %d missing, row has %d columns", column, len(record))
	}
	return convert(conv, record[column])
}
