// Package compress wraps response writers and request bodies with gzip.
package compress

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
)

// CompressWriter compresses JSON responses when the client accepts gzip.
type CompressWriter struct {
	writer     http.ResponseWriter
	gzipWriter *gzip.Writer
}

func NewCompressWriter(writer http.ResponseWriter) *CompressWriter {
	return &CompressWriter{
		writer:     writer,
		gzipWriter: gzip.NewWriter(writer),
	}
}

func (c *CompressWriter) Header() http.Header {
	return c.writer.Header()
}

func (c *CompressWriter) Write(p []byte) (int, error) {
	if c.ShouldCompress() {
		return c.gzipWriter.Write(p)
	}
	return c.writer.Write(p)
}

func (c *CompressWriter) WriteHeader(statusCode int) {
	if statusCode < 300 && c.ShouldCompress() {
		c.writer.Header().Set("Content-Encoding", "gzip")
	}
	c.writer.WriteHeader(statusCode)
}

// ShouldCompress limits compression to the content types the service emits
// that are worth compressing.
func (c *CompressWriter) ShouldCompress() bool {
	contentType := c.Header().Get("Content-Type")
	return strings.Contains(contentType, "application/json")
}

func (c *CompressWriter) Close() error {
	if c.ShouldCompress() {
		return c.gzipWriter.Close()
	}
	return nil
}

// CompressReader transparently decompresses a gzip request body.
type CompressReader struct {
	reader     io.ReadCloser
	gzipReader *gzip.Reader
}

func NewCompressReader(reader io.ReadCloser) (*CompressReader, error) {
	gzipReader, err := gzip.NewReader(reader)
	if err != nil {
		return nil, err
	}

	return &CompressReader{
		reader:     reader,
		gzipReader: gzipReader,
	}, nil
}

func (c *CompressReader) Read(p []byte) (n int, err error) {
	return c.gzipReader.Read(p)
}

func (c *CompressReader) Close() error {
	if err := c.reader.Close(); err != nil {
		return err
	}
	return c.gzipReader.Close()
}
