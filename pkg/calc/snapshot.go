package calc

import (
	"errors"
	"fmt"
	"strings"

	"nickandperla.net/calc/internal/eval"
	"nickandperla.net/calc/internal/format"
)

// ErrInvalidSnapshot is returned by Restore for inconsistent state.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Snapshot captures a Controller's state so it can be persisted.
type Snapshot struct {
	Buffer     string
	Mode       Mode
	ResultText string
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Buffer:     c.buffer,
		Mode:       c.mode,
		ResultText: c.resultText,
	}
}

// Restore replaces the current state with s. The controller is left
// unchanged if s could not have been produced by a sequence of events.
func (c *Controller) Restore(s Snapshot) error {
	if err := s.validate(); err != nil {
		return err
	}
	c.buffer = s.Buffer
	c.mode = s.Mode
	c.resultText = s.ResultText
	return nil
}

func (s Snapshot) validate() error {
	if i := strings.IndexFunc(s.Buffer, func(r rune) bool {
		return !strings.ContainsRune("0123456789.+-*/ ", r)
	}); i >= 0 {
		return fmt.Errorf("%w: buffer has unexpected character at %d", ErrInvalidSnapshot, i)
	}

	switch s.Mode {
	case Editing:
		if s.ResultText != "" {
			return fmt.Errorf("%w: result text while editing", ErrInvalidSnapshot)
		}
	case ShowingResult:
		// Equals leaves the raw value in the buffer and its display form
		// in the result text.
		v, err := eval.Evaluate(s.Buffer)
		if err != nil {
			return fmt.Errorf("%w: result buffer %q does not evaluate: %v", ErrInvalidSnapshot, s.Buffer, err)
		}
		if s.Buffer != format.Raw(v) {
			return fmt.Errorf("%w: result buffer %q is not a value", ErrInvalidSnapshot, s.Buffer)
		}
		if want := resultPrefix + format.Display(v); s.ResultText != want {
			return fmt.Errorf("%w: result text %q, want %q", ErrInvalidSnapshot, s.ResultText, want)
		}
	case ShowingError:
		if s.ResultText != ErrorText {
			return fmt.Errorf("%w: error text %q", ErrInvalidSnapshot, s.ResultText)
		}
		if s.Buffer != "" {
			if _, err := eval.Evaluate(s.Buffer); err == nil {
				return fmt.Errorf("%w: error buffer %q evaluates", ErrInvalidSnapshot, s.Buffer)
			}
		}
	default:
		return fmt.Errorf("%w: mode %d", ErrInvalidSnapshot, s.Mode)
	}

	if s.Mode != Editing && s.Buffer == "" {
		return fmt.Errorf("%w: empty buffer in %s", ErrInvalidSnapshot, s.Mode)
	}
	return nil
}
