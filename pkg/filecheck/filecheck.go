// Package filecheck validates a user-selected upload before it is handed
// to the import pipeline: size limit first, then file extension. Pure and
// synchronous; no I/O.
package filecheck

import (
	"fmt"
	"regexp"
	"strings"
)

// Options constrain an acceptable upload.
type Options struct {
	MaxSizeBytes int64
	Accept       string // literal extension, e.g. ".csv"
}

// ValidationError is the user-facing rejection message for a file.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate checks name and size against opts. A nil return means the file
// is acceptable. The size check runs first and is independent of the name.
func Validate(name string, size int64, opts Options) error {
	if opts.MaxSizeBytes > 0 && size > opts.MaxSizeBytes {
		return &ValidationError{
			Message: fmt.Sprintf("File size must be less than %dMB", opts.MaxSizeBytes/(1024*1024)),
		}
	}
	if opts.Accept != "" && !acceptPattern(opts.Accept).MatchString(name) {
		return &ValidationError{
			Message: fmt.Sprintf("Please select a %s file", strings.TrimPrefix(opts.Accept, ".")),
		}
	}
	return nil
}

// acceptPattern builds the filename matcher by escaping the literal
// configured extension, so ".csv" becomes an escaped dot plus "csv".
func acceptPattern(accept string) *regexp.Regexp {
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(accept) + "$")
}
