package ingest_test

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Diptesh821/Data-Visualization-Dashboard/internal/ingest"
)

func TestCSVReader(t *testing.T) {
	// given
	csvData := " sale_date , quantity ,total_amount\n" +
		"15-03-2023, 4 , 99.50 \n" +
		"16-03-2023,2,10\n"

	// when
	reader, err := ingest.NewRecordReader("sales.csv", strings.NewReader(csvData))
	require.NoError(t, err)

	// then
	first, err := reader.Next()
	require.NoError(t, err)
	require.Equal(t, ingest.RawRecord{
		"sale_date":    "15-03-2023",
		"quantity":     "4",
		"total_amount": "99.50",
	}, first)

	second, err := reader.Next()
	require.NoError(t, err)
	require.Equal(t, "2", second["quantity"])

	_, err = reader.Next()
	require.ErrorIs(t, err, io.EOF)

	// the sequence is not restartable
	_, err = reader.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestCSVReaderStripsByteOrderMark(t *testing.T) {
	csvData := "\xEF\xBB\xBFproduct_name,description,price,category\nWidget,A widget,9.99,tools\n"

	reader, err := ingest.NewRecordReader("products.csv", strings.NewReader(csvData))
	require.NoError(t, err)

	rec, err := reader.Next()
	require.NoError(t, err)
	require.Equal(t, "Widget", rec["product_name"])
}

func TestCSVReaderColumnCountMismatchIsTerminal(t *testing.T) {
	csvData := "sale_date,quantity,total_amount\n15-03-2023,4\n16-03-2023,2,10\n"

	reader, err := ingest.NewRecordReader("sales.csv", strings.NewReader(csvData))
	require.NoError(t, err)

	_, err = reader.Next()
	require.ErrorIs(t, err, ingest.ErrDecode)

	// once broken, the sequence stays finished
	_, err = reader.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestCSVReaderHeaderOnly(t *testing.T) {
	reader, err := ingest.NewRecordReader("sales.csv", strings.NewReader("sale_date,quantity,total_amount\n"))
	require.NoError(t, err)

	_, err = reader.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestCSVReaderEmptyStream(t *testing.T) {
	reader, err := ingest.NewRecordReader("sales.csv", strings.NewReader(""))
	require.NoError(t, err)

	_, err = reader.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestNewRecordReaderUnsupportedExtension(t *testing.T) {
	_, err := ingest.NewRecordReader("sales.pdf", strings.NewReader("x"))
	require.ErrorIs(t, err, ingest.ErrUnsupportedFormat)
}

func TestExcelReader(t *testing.T) {
	// given
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"sale_date", "quantity", "total_amount"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"15-03-2023", 4, 99.5}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]any{"16-03-2023", 2, 10}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	// when
	reader, err := ingest.NewRecordReader("sales.xlsx", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	// then
	first, err := reader.Next()
	require.NoError(t, err)
	require.Equal(t, "15-03-2023", first["sale_date"])
	require.Equal(t, "4", first["quantity"])

	second, err := reader.Next()
	require.NoError(t, err)
	require.Equal(t, "16-03-2023", second["sale_date"])

	_, err = reader.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestExcelReaderPadsShortRows(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"product_name", "description", "price", "category"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"Widget", "A widget"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	reader, err := ingest.NewRecordReader("products.xlsx", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	rec, err := reader.Next()
	require.NoError(t, err)
	require.Equal(t, "", rec["price"])
	require.Equal(t, "", rec["category"])
}

func TestExcelReaderGarbageInput(t *testing.T) {
	_, err := ingest.NewRecordReader("sales.xlsx", strings.NewReader("not a workbook"))
	require.ErrorIs(t, err, ingest.ErrDecode)
}
