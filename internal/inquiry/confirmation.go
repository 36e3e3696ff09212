package inquiry

import (
	"fmt"
	"strings"
	"time"

	nanoid "github.com/jaevor/go-nanoid"
)

const (
	suffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	suffixLength   = 9
)

// IDGenerator mints confirmation ids of the form PREFIX-<unix ms>-<suffix>.
// They are unique in practice, not unguessable.
type IDGenerator struct {
	now    func() time.Time
	suffix func() string
}

func NewIDGenerator() (*IDGenerator, error) {
	gen, err := nanoid.CustomASCII(suffixAlphabet, suffixLength)
	if err != nil {
		return nil, fmt.Errorf("confirmation id generator: %w", err)
	}
	return &IDGenerator{now: time.Now, suffix: gen}, nil
}

func (g *IDGenerator) Next(prefix string) string {
	return strings.ToUpper(fmt.Sprintf("%s-%d-%s", prefix, g.now().UnixMilli(), g.suffix()))
}
