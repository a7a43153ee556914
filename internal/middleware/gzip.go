package middleware

import (
	"io"
	"net/http"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// gzipWriter сжимает тело ответа. gzip.Writer создаётся при первой записи,
// чтобы ответы без тела (204) не получали gzip-футер.
type gzipWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

func (w *gzipWriter) WriteHeader(status int) {
	if !w.wroteHeader {
		w.wroteHeader = true
		if status != http.StatusNoContent && status != http.StatusNotModified {
			w.Header().Del("Content-Length")
			w.Header().Set("Content-Encoding", "gzip")
			w.Header().Add("Vary", "Accept-Encoding")
		}
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *gzipWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.zw == nil {
		w.zw = gzip.NewWriter(w.ResponseWriter)
	}
	return w.zw.Write(b)
}

func (w *gzipWriter) Close() error {
	if w.zw == nil {
		return nil
	}
	return w.zw.Close()
}

type gzipReader struct {
	src io.ReadCloser
	zr  *gzip.Reader
}

func (r *gzipReader) Read(p []byte) (int, error) { return r.zr.Read(p) }

func (r *gzipReader) Close() error {
	if err := r.src.Close(); err != nil {
		return err
	}
	return r.zr.Close()
}

// WithGzip распаковывает запросы с Content-Encoding: gzip и сжимает ответы,
// если клиент прислал Accept-Encoding: gzip.
func WithGzip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			zr, err := gzip.NewReader(r.Body)
			if err != nil {
				http.Error(w, "invalid gzip body", http.StatusBadRequest)
				return
			}
			r.Body = &gzipReader{src: r.Body, zr: zr}
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gw := &gzipWriter{ResponseWriter: w}
		defer func() {
			if err := gw.Close(); err != nil {
				sugar.Warnw("gzip close failed", "error", err)
			}
		}()
		next.ServeHTTP(gw, r)
	})
}
