package planid

import (
	"strings"

	"github.com/google/uuid"
)

// New returns a fresh component identifier. The token carries the full 122
// random bits of a v4 UUID, which makes collisions across plans practically
// impossible.
func New() string {
	return "comp_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}

// NewPlan returns a fresh test-plan identifier.
func NewPlan() string {
	return "plan_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
