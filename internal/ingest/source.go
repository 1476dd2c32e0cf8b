package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Source produces the byte stream of an uploaded file. The two variants
// mirror where the upload relay put the file: local disk in development,
// object storage in production. Neither reads the file into memory; the
// stream is pulled by the record reader.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// LocalSource reads an upload saved on local disk.
type LocalSource struct {
	Path string
}

func (s LocalSource) Open(ctx context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrSourceUnavailable, s.Path, err)
	}
	return f, nil
}

// RemoteSource streams an upload that was relayed to object storage and is
// reachable over a plain GET.
type RemoteSource struct {
	URL    string
	Client *http.Client
}

func (s RemoteSource) Open(ctx context.Context) (io.ReadCloser, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", ErrSourceUnavailable, s.URL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: get %s: status %d", ErrSourceUnavailable, s.URL, resp.StatusCode)
	}

	return resp.Body, nil
}
