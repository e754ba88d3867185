// Package system provides the default wall-clock and ID generation
// implementations. The pipeline receives these through ports so tests
// can substitute deterministic versions.
package system

import (
	"time"

	"github.com/google/uuid"
)

type Clock struct{}

func (Clock) Now() time.Time { return time.Now().UTC() }

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }
