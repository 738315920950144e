package elem

import "fmt"

// DomainError reports an operation evaluated outside its mathematical
// domain. It is raised eagerly at the point of evaluation; no operation
// ever substitutes NaN, Inf, or a complex result for a failure.
type DomainError struct {
	Fn     string  // operation name, e.g. "log"
	Value  float64 // the offending primal value
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s (x = %v)", e.Fn, e.Reason, e.Value)
}

// UnknownOperationError reports an operand outside the closed set of
// supported types for an operator.
type UnknownOperationError struct {
	Op      string // operator symbol, e.g. "+"
	Operand any
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unsupported operand type %T for %q", e.Operand, e.Op)
}
