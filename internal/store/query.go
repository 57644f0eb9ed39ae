package store

import (
	"fmt"
	"strings"

	"github.com/donaldgifford/listing-valuator/pkg/comps"
	domain "github.com/donaldgifford/listing-valuator/pkg/types"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

const listingColumns = `id, vin, condition, make, model, year, mileage, color,
	price, latitude, longitude, owner_id, views, favorites,
	sold, sold_at, created_at, updated_at`

const baseListingsSelect = "SELECT " + listingColumns + " FROM listings"

// predicates accumulates AND-joined WHERE conditions with positional params.
type predicates struct {
	conds []string
	args  []any
}

// add appends a condition. Each %s in format is replaced by the next
// positional placeholder, one per arg.
func (p *predicates) add(format string, args ...any) {
	placeholders := make([]any, len(args))
	for i, a := range args {
		p.args = append(p.args, a)
		placeholders[i] = fmt.Sprintf("$%d", len(p.args))
	}
	p.conds = append(p.conds, fmt.Sprintf(format, placeholders...))
}

func (p *predicates) where() string {
	if len(p.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.conds, " AND ")
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return min(limit, maxLimit)
}

// comparableSQL builds the query for one comparable search tier. Text fields
// match case-insensitively; sold and active listings are both returned.
func comparableSQL(q comps.Query) (string, []any) {
	var p predicates

	p.add("condition = %s", string(q.Condition))
	p.add("lower(make) = lower(%s)", q.Make)
	p.add("lower(model) = lower(%s)", q.Model)
	p.add("year BETWEEN %s AND %s", q.YearMin, q.YearMax)

	if q.MileageMin != nil {
		p.add("mileage >= %s", *q.MileageMin)
	}
	if q.MileageMax != nil {
		p.add("mileage <= %s", *q.MileageMax)
	}

	return baseListingsSelect + p.where() + " ORDER BY created_at DESC, id", p.args
}

// filterSQL builds the candidate query for a saved search filter. Sold
// listings and the user's own listings are excluded.
func filterSQL(userID string, f *domain.SearchFilter, limit int) (string, []any) {
	var p predicates

	p.add("sold = false")
	p.add("(owner_id IS NULL OR owner_id <> %s)", userID)

	if f.Condition != nil {
		p.add("condition = %s", strings.ToLower(string(*f.Condition)))
	}
	if f.Make != nil {
		p.add("lower(make) = lower(%s)", *f.Make)
	}
	if f.Model != nil {
		p.add("lower(model) = lower(%s)", *f.Model)
	}
	if f.YearMin != nil {
		p.add("year >= %s", *f.YearMin)
	}
	if f.YearMax != nil {
		p.add("year <= %s", *f.YearMax)
	}
	if f.MaxPrice != nil {
		p.add("price <= %s", *f.MaxPrice)
	}
	if f.MaxMileage != nil {
		p.add("mileage <= %s", *f.MaxMileage)
	}

	return fmt.Sprintf(
		"%s%s ORDER BY created_at DESC, id LIMIT %d",
		baseListingsSelect, p.where(), clampLimit(limit),
	), p.args
}
