package convert

import (
	"errors"
	"fmt"

	"github.com/ironsheep/colorpad-mcp/internal/model"
)

// ErrNotRegistered matches every *NotRegisteredError via errors.Is.
var ErrNotRegistered = errors.New("no converter registered")

// NotRegisteredError reports a (From, To) pair with no registered function.
type NotRegisteredError struct {
	From model.Kind
	To   model.Kind
}

// Error names the missing pair.
func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("no converter registered from %s to %s", e.From, e.To)
}

// Is makes errors.Is(err, ErrNotRegistered) true.
func (e *NotRegisteredError) Is(target error) bool {
	return target == ErrNotRegistered
}
