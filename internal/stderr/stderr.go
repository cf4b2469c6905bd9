//go:build !windows

// Package stderr captures output that C audio libraries (ALSA via oto)
// write straight to file descriptor 2, so it lands in the log instead of
// on top of the TUI.
package stderr

import (
	"os"
	"syscall"

	"github.com/rs/zerolog/log"
)

var (
	origStderr int
	pipeRead   *os.File
	pipeWrite  *os.File
	started    bool
	pumped     chan struct{}
)

// Start begins capturing stderr output. Call it before the speaker is
// initialized. On failure the program can continue uncaptured.
func Start() error {
	if started {
		return nil
	}

	r, w, err := os.Pipe()
	if err != nil {
		return err
	}

	origStderr, err = syscall.Dup(int(os.Stderr.Fd()))
	if err != nil {
		r.Close()
		w.Close()
		return err
	}

	// Redirect stderr (fd 2) to the pipe's write end
	err = syscall.Dup2(int(w.Fd()), int(os.Stderr.Fd()))
	if err != nil {
		syscall.Close(origStderr)
		r.Close()
		w.Close()
		return err
	}

	pipeRead = r
	pipeWrite = w
	started = true
	pumped = make(chan struct{})

	go func() {
		defer close(pumped)
		pump(pipeRead, func(line string) {
			log.Warn().Str("source", "stderr").Msg(line)
		})
	}()

	return nil
}

// WriteOriginal writes directly to the original stderr, bypassing capture.
func WriteOriginal(msg string) {
	if started && origStderr > 0 {
		_, _ = syscall.Write(origStderr, []byte(msg))
		return
	}
	_, _ = os.Stderr.WriteString(msg)
}

// Stop restores the original stderr.
func Stop() {
	if !started {
		return
	}

	_ = syscall.Dup2(origStderr, int(os.Stderr.Fd()))
	_ = syscall.Close(origStderr)

	pipeWrite.Close()
	<-pumped
	pipeRead.Close()

	started = false
}
