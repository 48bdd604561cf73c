package request_models

// EventFilters carries the optional listing predicates. Zero-valued fields
// contribute no predicate; Active is nil when the flag was absent or could
// not be parsed as a boolean.
type EventFilters struct {
	Category string
	Location string
	Date     string
	Active   *bool
}
