// Package logging routes the standard logger to a file so it does not
// interfere with the terminal UI.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Init appends log output to dest with the given prefix. An empty dest
// discards log output. The returned closer releases the file.
func Init(dest, prefix string) (io.Closer, error) {
	log.SetPrefix(prefix)

	if dest == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", dest, err)
	}

	log.SetOutput(f)
	return f, nil
}
