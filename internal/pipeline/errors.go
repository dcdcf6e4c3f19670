package pipeline

import (
	"errors"
	"fmt"

	"github.com/nao1215/spelldigest/internal/model"
)

var (
	// ErrNoDocument is returned by steps that need a fetched document.
	ErrNoDocument = errors.New("no document has been fetched")

	// ErrProbesFailed is returned in strict mode when at least one probe
	// was absorbed as a failure.
	ErrProbesFailed = errors.New("one or more spell-check probes failed")
)

// CheckFailures returns ErrProbesFailed, annotated with the failure count,
// if any outcome of run failed. It returns nil otherwise.
func CheckFailures(run *model.Run) error {
	failed := len(run.Failures())
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d", ErrProbesFailed, failed, len(run.Outcomes))
}
