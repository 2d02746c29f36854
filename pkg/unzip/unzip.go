package unzip

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// compressReader implements ReadCloser interface
// and replaces Read method with a decompression one.
type compressReader struct {
	r  io.ReadCloser
	zr *gzip.Reader
}

func newCompressReader(r io.ReadCloser) (*compressReader, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("new gzip reader: %w", err)
	}

	return &compressReader{
		r:  r,
		zr: zr,
	}, nil
}

func (c compressReader) Read(p []byte) (int, error) {
	return c.zr.Read(p)
}

func (c *compressReader) Close() error {
	if err := c.r.Close(); err != nil {
		return fmt.Errorf("close failed: %w", err)
	}
	return c.zr.Close()
}

// Response decides whether or not to decompress the response body
// judging by content encoding. The body is replaced in place.
func Response(res *http.Response) error {
	contentEncoding := res.Header.Get("Content-Encoding")
	if !strings.Contains(contentEncoding, "gzip") {
		return nil
	}

	cr, err := newCompressReader(res.Body)
	if err != nil {
		return err
	}

	res.Body = cr
	res.Header.Del("Content-Encoding")
	res.Header.Del("Content-Length")
	res.ContentLength = -1
	res.Uncompressed = true

	return nil
}
