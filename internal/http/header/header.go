package header

const (
	// ChunkSize bounds how much of a request is ever read. Anything past it
	// is never seen.
	ChunkSize = 512

	DefaultMethod = "GET"
)

type RequestHeader interface {
	Method() string
	Value(key string) string
	Lookup(key string) (string, bool)
	Len() int
	Size() int
}

type requestHeader struct {
	method  string
	size    int
	headers map[string]string
}
