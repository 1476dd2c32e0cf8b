package uploads_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Diptesh821/Data-Visualization-Dashboard/internal/uploads"
)

func multipartFile(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File[field][0]
}

func TestLocalServiceSave(t *testing.T) {
	// given
	dir := t.TempDir()
	svc := uploads.NewLocalService(dir)
	file := multipartFile(t, "sales_csv", "march.csv", "sale_date,quantity,total_amount\n15-03-2023,4,99.50\n")

	// when
	handle, remote, err := svc.Save(context.Background(), "sales", file)

	// then
	require.NoError(t, err)
	require.False(t, remote)
	require.Equal(t, filepath.Join(dir, "sales"), filepath.Dir(handle))
	require.True(t, strings.HasSuffix(handle, "-march.csv"))

	data, err := os.ReadFile(handle)
	require.NoError(t, err)
	require.Equal(t, "sale_date,quantity,total_amount\n15-03-2023,4,99.50\n", string(data))
}

func TestLocalServiceCreatesDatasetSubfolder(t *testing.T) {
	dir := t.TempDir()
	svc := uploads.NewLocalService(dir)
	file := multipartFile(t, "products_csv", "catalog.csv", "product_name,description,price,category\n")

	handle, _, err := svc.Save(context.Background(), "products", file)

	require.NoError(t, err)
	info, err := os.Stat(filepath.Join(dir, "products"))
	require.NoError(t, err)
	require.True(t, info.IsDir())
	require.FileExists(t, handle)
}
