package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CostLookup resolves unit cost prices for sold or consumed line items
// within a single branch. It prefers a cost that was frozen on the line
// at transaction time over the current catalog price, because catalog
// prices drift after the fact.
//
// Resolution order:
//  1. frozen cost recorded on the line, when positive
//  2. current catalog cost by part id
//  3. current catalog cost by SKU
//  4. zero
//
// A lookup never fails: an unresolvable cost degrades to zero so that a
// single unpriced line cannot sink a whole aggregation.
type CostLookup struct {
	byID  map[uuid.UUID]decimal.Decimal
	bySKU map[string]decimal.Decimal
}

// NewCostLookup builds a lookup over the parts of one branch.
// Later duplicates win, matching upsert order from the catalog store.
func NewCostLookup(parts []Part) *CostLookup {
	l := &CostLookup{
		byID:  make(map[uuid.UUID]decimal.Decimal, len(parts)),
		bySKU: make(map[string]decimal.Decimal, len(parts)),
	}
	for _, p := range parts {
		if p.ID != uuid.Nil {
			l.byID[p.ID] = p.CostPrice
		}
		if sku := normalizeSKU(p.SKU); sku != "" {
			l.bySKU[sku] = p.CostPrice
		}
	}
	return l
}

// ResolveUnitCost returns the unit cost to use for a line item.
// frozen wins when positive; otherwise the catalog is consulted by part
// id, then by SKU; unknown parts resolve to zero.
func (l *CostLookup) ResolveUnitCost(partID uuid.UUID, sku string, frozen decimal.Decimal) decimal.Decimal {
	if frozen.IsPositive() {
		return frozen
	}
	if partID != uuid.Nil {
		if cost, ok := l.byID[partID]; ok {
			return cost
		}
	}
	if key := normalizeSKU(sku); key != "" {
		if cost, ok := l.bySKU[key]; ok {
			return cost
		}
	}
	return decimal.Zero
}

// Len returns the number of parts indexed by id
func (l *CostLookup) Len() int {
	return len(l.byID)
}

func normalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}
