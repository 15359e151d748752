
package postgres

import (
	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates ULID ids for every entity. ULIDs sort by creation
// time, which keeps installment rows adjacent in the primary key.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate returns a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}
