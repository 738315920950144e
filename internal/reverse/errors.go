package reverse

// IncompleteGraphError reports a gradient query against a graph that does
// not support it: the named terminal still feeds other operations (the
// expression above it is still being built), or the queried leaf was never
// connected to the terminal at all.
type IncompleteGraphError struct {
	Reason string
}

func (e *IncompleteGraphError) Error() string {
	return "incomplete graph: " + e.Reason
}
