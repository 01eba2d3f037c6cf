package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"golang.org/x/term"

	"nickandperla.net/calc/pkg/calc"
)

// escTimeout is how long a lone ESC waits for the rest of a sequence before
// it counts as the Esc key.
const escTimeout = 50 * time.Millisecond

// runREPL reads single key presses in raw mode and redraws after each one.
// Callers check that stdin is a terminal.
func runREPL(c *calc.Controller, logger *slog.Logger) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set raw mode: %v\n", err)
		runLines(c, os.Stdin, os.Stdout, logger)
		return
	}
	defer term.Restore(fd, oldState)

	redraw := func() { drawRaw(os.Stdout, c) }
	redraw()
	runKeys(c, readKeys(os.Stdin), redraw, logger)
	fmt.Print("\r\n")
}

// readKeys streams bytes from r. The channel closes when r returns an error.
func readKeys(r io.Reader) <-chan byte {
	ch := make(chan byte, 64)
	go func() {
		defer close(ch)
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			for i := 0; i < n; i++ {
				ch <- buf[i]
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}

// runKeys dispatches key bytes to c until a quit key or the end of input,
// calling redraw after every key that was handled.
func runKeys(c *calc.Controller, keys <-chan byte, redraw func(), logger *slog.Logger) {
	for b := range keys {
		switch b {
		case keyCtrlC, keyCtrlD, 'q', 'Q':
			return

		case keyEscape:
			if !handleEscape(c, keys) {
				continue
			}

		default:
			if !applyKey(c, rune(b)) {
				logger.Debug("unbound key", "byte", b)
				continue
			}
		}

		redraw()
	}
}

// handleEscape consumes whatever follows an ESC byte. A bare ESC resets;
// ESC [ 3 ~ (Delete) is a backspace; other CSI and SS3 sequences and
// Alt+key pairs are swallowed whole. It reports whether c was touched.
func handleEscape(c *calc.Controller, keys <-chan byte) bool {
	var next byte
	select {
	case b, ok := <-keys:
		if !ok {
			c.OnReset()
			return true
		}
		next = b
	case <-time.After(escTimeout):
		c.OnReset()
		return true
	}

	switch next {
	case '[':
		params, final, ok := readCSI(keys)
		if ok && final == '~' && params == "3" {
			c.OnBackspace()
			return true
		}
	case 'O':
		// SS3 (F1-F4 on many terminals) carries exactly one more byte
		<-keys
	}
	return false
}

// readCSI reads the parameter bytes of a control sequence up to and
// including its final byte (0x40-0x7E).
func readCSI(keys <-chan byte) (params string, final byte, ok bool) {
	var buf []byte
	for b := range keys {
		if b >= 0x40 && b <= 0x7e {
			return string(buf), b, true
		}
		buf = append(buf, b)
	}
	return string(buf), 0, false
}
