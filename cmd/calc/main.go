// Command calc is a keypad calculator for the terminal.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"nickandperla.net/calc/internal/store"
	"nickandperla.net/calc/pkg/calc"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		keys     = flag.String("e", "", "Feed a key script (e.g. \"12+3.5*2=\") and print the result")
		dbPath   = flag.String("db", "", "SQLite database path for session persistence (disabled if empty)")
		session  = flag.String("session", "default", "Session name within the database")
		logLevel = flag.String("log-level", "warn", "Log level: debug, info, warn, or error")
		logFile  = flag.String("log-file", "", "Write logs to this file instead of stderr")
	)

	flag.Parse()

	logger, closeLog, err := newLogger(*logLevel, *logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	c := calc.New(calc.WithLogger(logger))

	// Without -db the session lives only for this run
	var st store.Store = store.NewMemory()
	if *dbPath != "" {
		st, err = store.NewSQLite(*dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening session db: %v\n", err)
			return 1
		}
	}
	defer st.Close()
	restoreSession(st, *session, c, logger)

	code := 0
	switch {
	case *keys != "":
		runScript(c, *keys, logger)
		printState(os.Stdout, c)
		if c.Mode() == calc.ShowingError {
			code = 1
		}

	case !term.IsTerminal(int(os.Stdin.Fd())):
		runLines(c, os.Stdin, os.Stdout, logger)

	default:
		runREPL(c, logger)
	}

	if err := saveSession(st, *session, c); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving session: %v\n", err)
		code = 1
	}

	return code
}

// restoreSession loads a saved session into c. A missing or unusable
// session leaves c fresh.
func restoreSession(st store.Store, name string, c *calc.Controller, logger *slog.Logger) {
	sess, err := st.Get(name)
	if err != nil {
		logger.Warn("could not load session", "session", name, "error", err)
		return
	}
	if sess == nil {
		return
	}
	mode, ok := calc.ParseMode(sess.Mode)
	if !ok {
		logger.Warn("discarding session with unknown mode", "session", name, "mode", sess.Mode)
		return
	}
	err = c.Restore(calc.Snapshot{Buffer: sess.Buffer, Mode: mode, ResultText: sess.ResultText})
	if err != nil {
		logger.Warn("discarding session", "session", name, "error", err)
		return
	}
	logger.Info("restored session", "session", name, "updated_at", sess.UpdatedAt)
}

// saveSession writes c's state under name, replacing any previous one.
func saveSession(st store.Store, name string, c *calc.Controller) error {
	snap := c.Snapshot()
	return st.Put(name, &store.Session{
		Buffer:     snap.Buffer,
		Mode:       snap.Mode.String(),
		ResultText: snap.ResultText,
	})
}

// runLines treats each input line as a key script and prints the state
// after each one. State carries over between lines.
func runLines(c *calc.Controller, r io.Reader, w io.Writer, logger *slog.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		runScript(c, scanner.Text(), logger)
		printState(w, c)
	}
	if err := scanner.Err(); err != nil {
		logger.Error("reading input", "error", err)
	}
}

// printState writes the display line and, when visible, the result line.
func printState(w io.Writer, c *calc.Controller) {
	fmt.Fprintln(w, c.CurrentDisplayText())
	if c.IsShowingResult() {
		fmt.Fprintln(w, c.CurrentResultText())
	}
}
