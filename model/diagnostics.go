package model

// Warning is the structured, non-fatal diagnostic shape used by both the
// TXC parser (malformed/unresolvable elements) and the converter (dropped
// or downgraded entities). Never a bare string: every warning names the
// entity it concerns and why it was skipped, so callers can triage without
// re-parsing the source.
type Warning struct {
	Kind       string // e.g. "dangling_reference", "malformed_element", "missing_coordinates"
	EntityType string
	EntityID   string
	Reason     string
}
