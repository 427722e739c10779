package inventory

import "sort"

// ItemFields carries the user-editable columns of an inventory row. A nil
// field means absent: left untouched when used as a patch, stored as NULL when
// used as a new row.
type ItemFields struct {
	Name         *string  `json:"item_name"`
	Price        *float64 `json:"price" validate:"omitempty,gte=0"`
	UnitsSold    *int64   `json:"units_sold" validate:"omitempty,gte=0"`
	UnitsLeft    *int64   `json:"units_left" validate:"omitempty,gte=0"`
	CostPrice    *float64 `json:"cost_price" validate:"omitempty,gte=0"`
	ReorderPoint *int64   `json:"reorder_point" validate:"omitempty,gte=0"`
	Description  *string  `json:"description"`
}

// Merge overlays present patch fields onto f, leaving absent fields at their
// baseline values. Required so a partial edit never nulls untouched columns.
func (f ItemFields) Merge(patch ItemFields) ItemFields {
	out := f
	if patch.Name != nil {
		out.Name = patch.Name
	}
	if patch.Price != nil {
		out.Price = patch.Price
	}
	if patch.UnitsSold != nil {
		out.UnitsSold = patch.UnitsSold
	}
	if patch.UnitsLeft != nil {
		out.UnitsLeft = patch.UnitsLeft
	}
	if patch.CostPrice != nil {
		out.CostPrice = patch.CostPrice
	}
	if patch.ReorderPoint != nil {
		out.ReorderPoint = patch.ReorderPoint
	}
	if patch.Description != nil {
		out.Description = patch.Description
	}
	return out
}

// Item is one inventory row as stored. ID is assigned by storage on insert and
// is never editable.
type Item struct {
	ID int64 `json:"id"`
	ItemFields
}

// Snapshot is the ordered set of rows as last read from storage. Positions are
// only meaningful for the edit session that was computed against it.
type Snapshot []Item

// LowStock returns the items whose stock has fallen strictly below their
// reorder point, in baseline order.
func LowStock(snap Snapshot) []Item {
	var out []Item
	for _, it := range snap {
		if it.UnitsLeft != nil && it.ReorderPoint != nil && *it.UnitsLeft < *it.ReorderPoint {
			out = append(out, it)
		}
	}
	return out
}

// BestSellers returns a copy of the snapshot ordered by units sold, best
// first. Rows without a recorded figure sort last.
func BestSellers(snap Snapshot) []Item {
	out := append([]Item(nil), snap...)
	sort.SliceStable(out, func(i, j int) bool {
		return soldOf(out[i]) > soldOf(out[j])
	})
	return out
}

func soldOf(it Item) int64 {
	if it.UnitsSold == nil {
		return -1
	}
	return *it.UnitsSold
}
