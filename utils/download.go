package utils

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// sniffLen is the number of bytes used to detect the content type.
const sniffLen = 512

// DownloadImage fetches the image found at uri and stores it into a temporary
// file created in dir (the default temporary directory if dir is empty).
// The caller is responsible for removing the returned file.
func DownloadImage(ctx context.Context, uri, dir string) (*os.File, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid request for %s: %w", uri, err)
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("unable to download the image from %s: %w", uri, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to download the image from %s: status %s", uri, res.Status)
	}

	tmpfile, err := os.CreateTemp(dir, "painterly-*")
	if err != nil {
		return nil, fmt.Errorf("unable to create temporary file: %w", err)
	}
	cleanup := func(err error) (*os.File, error) {
		tmpfile.Close()
		os.Remove(tmpfile.Name())
		return nil, err
	}

	if _, err := io.Copy(tmpfile, res.Body); err != nil {
		return cleanup(fmt.Errorf("unable to copy the response body: %w", err))
	}

	ctype, err := DetectContentType(tmpfile.Name())
	if err != nil {
		return cleanup(err)
	}
	if !strings.HasPrefix(ctype, "image/") {
		return cleanup(fmt.Errorf("the downloaded file is not a valid image type: %s", ctype))
	}

	if _, err := tmpfile.Seek(0, io.SeekStart); err != nil {
		return cleanup(err)
	}
	return tmpfile, nil
}

// IsValidUrl tests a string to determine if it is a well-structured url or not.
func IsValidUrl(uri string) bool {
	if _, err := url.ParseRequestURI(uri); err != nil {
		return false
	}
	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	return true
}

// DetectContentType detects the file type by reading MIME type information of the file content.
func DetectContentType(fname string) (string, error) {
	file, err := os.Open(fname)
	if err != nil {
		return "", err
	}
	defer file.Close()

	buffer := make([]byte, sniffLen)
	n, err := io.ReadFull(file, buffer)
	if err != nil && err != io.ErrUnexpectedEOF {
		return "", err
	}

	// Always returns a valid content-type, "application/octet-stream" if no others seemed to match.
	return http.DetectContentType(buffer[:n]), nil
}
