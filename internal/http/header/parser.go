package header

import (
	"ipecho/internal/logger"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

func parse(data []byte, log logger.Logger) *requestHeader {
	header := &requestHeader{
		method:  DefaultMethod,
		size:    len(data),
		headers: make(map[string]string, 16),
	}

	for i, line := range splitLines(decode(data)) {
		key, value := splitTokens(line)
		log.Debugw("parse line", "key", key, "value", value)
		if i == 0 {
			if key != "" {
				header.method = key
			}
			continue
		}
		if key == "" || value == "" {
			continue
		}
		log.Debugw("insert header", "key", key, "value", value)
		header.headers[key] = value
	}
	return header
}

// decode replaces every ill-formed UTF-8 sequence with U+FFFD.
func decode(data []byte) string {
	decoded, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return string(decoded)
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// splitTokens returns the first two whitespace separated tokens of line.
// The key keeps any trailing colon and the value stops at the next space.
func splitTokens(line string) (key, value string) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], fields[1]
	}
}
