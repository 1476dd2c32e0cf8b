package ingest_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Diptesh821/Data-Visualization-Dashboard/internal/ingest"
)

func TestLocalSource(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte("sale_date,quantity,total_amount\n"), 0o644))

	// when
	stream, err := ingest.LocalSource{Path: path}.Open(context.Background())

	// then
	require.NoError(t, err)
	defer stream.Close()
	data, err := io.ReadAll(stream)
	require.NoError(t, err)
	require.Equal(t, "sale_date,quantity,total_amount\n", string(data))
}

func TestLocalSourceMissingFile(t *testing.T) {
	_, err := ingest.LocalSource{Path: filepath.Join(t.TempDir(), "nope.csv")}.Open(context.Background())
	require.ErrorIs(t, err, ingest.ErrSourceUnavailable)
}

func TestRemoteSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("product_name,description,price,category\n"))
	}))
	defer srv.Close()

	stream, err := ingest.RemoteSource{URL: srv.URL}.Open(context.Background())
	require.NoError(t, err)
	defer stream.Close()

	data, err := io.ReadAll(stream)
	require.NoError(t, err)
	require.Equal(t, "product_name,description,price,category\n", string(data))
}

func TestRemoteSourceNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := ingest.RemoteSource{URL: srv.URL}.Open(context.Background())
	require.ErrorIs(t, err, ingest.ErrSourceUnavailable)
}

func TestRemoteSourceConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := ingest.RemoteSource{URL: srv.URL}.Open(context.Background())
	require.ErrorIs(t, err, ingest.ErrSourceUnavailable)
}
