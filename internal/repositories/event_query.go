package repositories

import (
	"strings"

	"givehub/internal/models/request_models"
)

// predicate is one conjunctive WHERE fragment with its bound values. Keeping
// predicates as an ordered list guarantees placeholders and arguments never
// drift apart.
type predicate struct {
	expr string
	args []interface{}
}

const listingBaseQuery = `
SELECT
    e.*,
    c.name AS category_name,
    c.description AS category_description
FROM events e
JOIN categories c ON e.category_id = c.id
WHERE 1=1`

const listingOrderClause = " ORDER BY e.date_time ASC"

// listingPredicates returns the predicates for the supplied filters in the
// fixed binding order: category, location, date, active. Absent filters
// contribute nothing.
func listingPredicates(f request_models.EventFilters) []predicate {
	var preds []predicate
	if f.Category != "" {
		preds = append(preds, predicate{expr: "e.category_id = ?", args: []interface{}{f.Category}})
	}
	if f.Location != "" {
		preds = append(preds, predicate{expr: "e.location ILIKE ?", args: []interface{}{"%" + f.Location + "%"}})
	}
	if f.Date != "" {
		preds = append(preds, predicate{expr: "e.date_time::date = ?", args: []interface{}{f.Date}})
	}
	if f.Active != nil {
		preds = append(preds, predicate{expr: "e.is_active = ?", args: []interface{}{*f.Active}})
	}
	return preds
}

// BuildListingQuery assembles the full listing statement and its positional
// arguments. Every user-supplied value is bound, never interpolated.
func BuildListingQuery(f request_models.EventFilters) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString(listingBaseQuery)

	var args []interface{}
	for _, p := range listingPredicates(f) {
		sb.WriteString(" AND ")
		sb.WriteString(p.expr)
		args = append(args, p.args...)
	}

	sb.WriteString(listingOrderClause)
	return sb.String(), args
}
