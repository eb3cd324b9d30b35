// Package sanitize cleans free text before it reaches the assistant, the logs
// or a history store.
package sanitize

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/algotrace/pkg/domain"
)

var (
	// DefaultMaxQuerySize is 4KB (conservative default)
	DefaultMaxQuerySize = 4096
	// EnvMaxQuerySize is the environment variable to override the default
	EnvMaxQuerySize = "ALGOTRACE_MAX_QUERY_SIZE"
)

var (
	ErrQueryTooLarge = fmt.Errorf("%w: exceeds maximum allowed size", domain.ErrInvalidQuery)
	ErrInvalidUTF8   = fmt.Errorf("%w: contains invalid UTF-8 sequences", domain.ErrInvalidQuery)
)

// Query enforces the size limit, validates UTF-8 and strips control
// characters other than newline, tab and carriage return. Surrounding
// whitespace is trimmed.
func Query(input string) (string, error) {
	limit := maxQuerySize()
	if len(input) > limit {
		// Reject rather than truncate so the stored question is what was asked.
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrQueryTooLarge, len(input), limit)
	}

	if !utf8.ValidString(input) {
		return "", ErrInvalidUTF8
	}

	// Fast path: if no control chars, return as is.
	clean := true
	for _, r := range input {
		if unicode.IsControl(r) && !isSafeControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return strings.TrimSpace(input), nil
	}

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if !unicode.IsControl(r) || isSafeControl(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String()), nil
}

func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}

func maxQuerySize() int {
	if val := os.Getenv(EnvMaxQuerySize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxQuerySize
}
