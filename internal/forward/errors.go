package forward

import "fmt"

// ShapeError reports two operands whose derivative vectors have different
// lengths. Derivative length is fixed when a Dual is constructed and must
// match across every operand of a binary operation.
type ShapeError struct {
	Op        string
	Want, Got int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("derivative length mismatch for %q: %d vs %d", e.Op, e.Want, e.Got)
}
