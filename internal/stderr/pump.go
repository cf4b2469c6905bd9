package stderr

import (
	"bufio"
	"io"
	"strings"
)

// pump forwards each non-blank line of r to emit until r is exhausted.
func pump(r io.Reader, emit func(string)) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			emit(line)
		}
	}
}
