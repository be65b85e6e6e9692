package header

import (
	"io"
	"ipecho/internal/logger"
)

// Read performs a single read of at most ChunkSize bytes from r and parses
// what arrived. A failed read is treated as an empty request.
func Read(r io.Reader, log logger.Logger) RequestHeader {
	buf := make([]byte, ChunkSize)
	n, err := r.Read(buf)
	if err != nil {
		log.Debugw("read request failed", "error", err)
		n = 0
	}
	if n < 0 || n > len(buf) {
		n = 0
	}
	log.Debugw("read header length", "length", n)
	return parse(buf[:n], log)
}

func NewRequest(data []byte, log logger.Logger) RequestHeader {
	return parse(data, log)
}

func (req *requestHeader) Method() string {
	return req.method
}

func (req *requestHeader) Value(key string) string {
	return req.headers[key]
}

func (req *requestHeader) Lookup(key string) (string, bool) {
	val, ok := req.headers[key]
	return val, ok
}

func (req *requestHeader) Len() int {
	return len(req.headers)
}

// Size reports how many bytes of the request were consumed.
func (req *requestHeader) Size() int {
	return req.size
}
