package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// maxRequestBodyBytes bounds every request body after decompression.
const maxRequestBodyBytes = 1 << 20

// releaseGzipReader closes r and returns it to the pool.
var releaseGzipReader = func(r *gzip.Reader) {
	r.Close()
	gzipReaderPool.Put(r)
}

// withGZip transparently decompresses gzip request bodies and compresses
// responses for clients that accept gzip. Request bodies are capped at
// maxRequestBodyBytes; reading past the cap fails with [http.MaxBytesError].
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		supportsGzip := strings.Contains(req.Header.Get("Accept-Encoding"), "gzip")
		isGzipRequest := strings.Contains(req.Header.Get("Content-Encoding"), "gzip")

		if req.Body != nil {
			req.Body = http.MaxBytesReader(w, req.Body, maxRequestBodyBytes)
		}

		if isGzipRequest && req.Body != nil {
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(req.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				writeError(w, req, ErrInvalidJSON)
				return
			}
			// the server closes only the original body, never this one
			defer releaseGzipReader(gzipReader)

			req.Body = http.MaxBytesReader(w, io.NopCloser(gzipReader), maxRequestBodyBytes)
			req.Header.Del("Content-Encoding")
		}

		if !supportsGzip {
			next.ServeHTTP(w, req)
			return
		}

		gzipWriter := gzipWriterPool.Get().(*gzip.Writer)
		gzipWriter.Reset(w)

		gzipRW := &gzipResponseWriter{
			ResponseWriter: w,
			gzipWriter:     gzipWriter,
		}

		next.ServeHTTP(gzipRW, req)

		if gzipRW.encoded {
			gzipWriter.Close()
		}
		gzipWriterPool.Put(gzipWriter)
	})
}

// gzipResponseWriter compresses the body of every response that may carry
// one.
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer

	wroteHeader bool
	encoded     bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	// 204 and 304 never carry a body
	if statusCode != http.StatusNoContent && statusCode != http.StatusNotModified {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
		w.encoded = true
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if !w.encoded {
		return w.ResponseWriter.Write(data)
	}
	return w.gzipWriter.Write(data)
}
