package specification

import "gorm.io/gorm"

// Specification is a composable query fragment. Repository methods accept
// any number of them and chain each onto the gorm query, so callers like the
// session listing can mix filters, ordering and pagination freely.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
