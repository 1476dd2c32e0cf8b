package ingest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RawRecord is one parsed line, keyed by header name. Values are
// whitespace-trimmed raw strings.
type RawRecord map[string]string

// RecordReader yields records in file order. It is lazy, finite and
// non-restartable; Next returns io.EOF when the file is exhausted. A
// structural problem (read failure, wrong column count) surfaces as a
// terminal ErrDecode and ends the sequence.
type RecordReader interface {
	Next() (RawRecord, error)
}

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// NewRecordReader picks the reader from the file extension. CSV is the
// primary format; XLSX is accepted and goes through the same pipeline.
func NewRecordReader(filename string, r io.Reader) (RecordReader, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return newCSVReader(r), nil
	case ".xlsx":
		return newExcelReader(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}
}

type csvReader struct {
	r      *csv.Reader
	header []string
	done   bool
}

func newCSVReader(r io.Reader) *csvReader {
	buf := bufio.NewReader(r)
	if prefix, err := buf.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = buf.Discard(len(byteOrderMark))
	}
	return &csvReader{r: csv.NewReader(buf)}
}

func (c *csvReader) Next() (RawRecord, error) {
	if c.done {
		return nil, io.EOF
	}

	if c.header == nil {
		row, err := c.r.Read()
		if err == io.EOF {
			c.done = true
			return nil, io.EOF
		}
		if err != nil {
			c.done = true
			return nil, fmt.Errorf("%w: header: %v", ErrDecode, err)
		}
		c.header = cleanRow(row)
	}

	row, err := c.r.Read()
	if err == io.EOF {
		c.done = true
		return nil, io.EOF
	}
	if err != nil {
		// encoding/csv reports ragged rows as ErrFieldCount; a wrong
		// column count aborts the rest of the import.
		c.done = true
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	record := make(RawRecord, len(c.header))
	for i, name := range c.header {
		record[name] = strings.TrimSpace(row[i])
	}
	return record, nil
}

type excelReader struct {
	file   *excelize.File
	rows   *excelize.Rows
	header []string
	done   bool
}

func newExcelReader(r io.Reader) (*excelReader, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrDecode)
	}

	rows, err := f.Rows(sheets[0])
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &excelReader{file: f, rows: rows}, nil
}

func (e *excelReader) Next() (RawRecord, error) {
	if e.done {
		return nil, io.EOF
	}

	if e.header == nil {
		if !e.rows.Next() {
			return nil, e.finish(e.rows.Error())
		}
		row, err := e.rows.Columns()
		if err != nil {
			return nil, e.finish(err)
		}
		e.header = cleanRow(row)
	}

	if !e.rows.Next() {
		return nil, e.finish(e.rows.Error())
	}
	row, err := e.rows.Columns()
	if err != nil {
		return nil, e.finish(err)
	}
	if len(row) > len(e.header) {
		return nil, e.finish(fmt.Errorf("record has %d fields, header has %d", len(row), len(e.header)))
	}

	// Excel drops trailing empty cells; missing values become empty fields
	// and are handled per-row downstream.
	record := make(RawRecord, len(e.header))
	for i, name := range e.header {
		if i < len(row) {
			record[name] = strings.TrimSpace(row[i])
		} else {
			record[name] = ""
		}
	}
	return record, nil
}

func (e *excelReader) finish(err error) error {
	e.done = true
	e.rows.Close()
	e.file.Close()
	if err == nil {
		return io.EOF
	}
	if errors.Is(err, ErrDecode) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrDecode, err)
}

func cleanRow(row []string) []string {
	cleaned := make([]string, len(row))
	for i, v := range row {
		cleaned[i] = strings.TrimSpace(v)
	}
	return cleaned
}
