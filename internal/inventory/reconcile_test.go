package inventory

import (
	"errors"
	"testing"
)

func strptr(s string) *string   { return &s }
func f64ptr(v float64) *float64 { return &v }
func i64ptr(v int64) *int64     { return &v }

func testBaseline() Snapshot {
	return Snapshot{
		{ID: 11, ItemFields: sample("Bisleri Water (500ml)", 50, 115, 15, 20, 5, "Pure mineral water")},
		{ID: 12, ItemFields: sample("Thums Up (300ml)", 40, 93, 8, 35, 10, "Strong carbonated cola drink")},
		{ID: 15, ItemFields: sample("Lays Chips (small)", 50, 34, 16, 20, 10, "Crispy salted potato chips")},
	}
}

func TestPlanEmptyEditSetIsNoOp(t *testing.T) {
	muts, err := Plan(testBaseline(), EditSet{})
	if err != nil {
		t.Fatalf("plan returned error: %v", err)
	}
	if len(muts) != 0 {
		t.Fatalf("expected no mutations, got %d", len(muts))
	}
}

func TestPlanMergesPatchOverBaseline(t *testing.T) {
	edits := EditSet{
		Updated: map[int]ItemFields{
			0: {UnitsLeft: i64ptr(7)},
		},
	}

	muts, err := Plan(testBaseline(), edits)
	if err != nil {
		t.Fatalf("plan returned error: %v", err)
	}
	if len(muts) != 1 {
		t.Fatalf("expected one mutation, got %d", len(muts))
	}
	m := muts[0]
	if m.Kind != MutationUpdate || m.ID != 11 {
		t.Fatalf("unexpected mutation %+v", m)
	}
	if m.Fields.UnitsLeft == nil || *m.Fields.UnitsLeft != 7 {
		t.Fatalf("expected patched units_left 7, got %+v", m.Fields.UnitsLeft)
	}
	if m.Fields.Price == nil || *m.Fields.Price != 50 {
		t.Fatalf("untouched price must carry the baseline value, got %+v", m.Fields.Price)
	}
	if m.Fields.Description == nil || *m.Fields.Description != "Pure mineral water" {
		t.Fatalf("untouched description must carry the baseline value")
	}
}

func TestPlanDeleteWinsOverUpdate(t *testing.T) {
	edits := EditSet{
		Updated: map[int]ItemFields{
			2: {Price: f64ptr(99)},
		},
		Removed: []int{2},
	}

	muts, err := Plan(testBaseline(), edits)
	if err != nil {
		t.Fatalf("plan returned error: %v", err)
	}
	if len(muts) != 1 {
		t.Fatalf("expected exactly one mutation, got %d", len(muts))
	}
	if muts[0].Kind != MutationDelete || muts[0].ID != 15 {
		t.Fatalf("expected delete of id 15, got %+v", muts[0])
	}
}

func TestPlanInsertKeepsAbsentFields(t *testing.T) {
	edits := EditSet{
		Added: []ItemFields{
			{Name: strptr("Maggi Noodles"), Price: f64ptr(14)},
		},
	}

	muts, err := Plan(testBaseline(), edits)
	if err != nil {
		t.Fatalf("plan returned error: %v", err)
	}
	if len(muts) != 1 || muts[0].Kind != MutationInsert {
		t.Fatalf("expected one insert, got %+v", muts)
	}
	f := muts[0].Fields
	if f.UnitsSold != nil || f.UnitsLeft != nil || f.CostPrice != nil || f.ReorderPoint != nil || f.Description != nil {
		t.Fatalf("absent draft fields must stay absent, got %+v", f)
	}
}

func TestPlanOrdersUpdatesInsertsDeletes(t *testing.T) {
	edits := EditSet{
		Updated: map[int]ItemFields{0: {Price: f64ptr(55)}},
		Added:   []ItemFields{{Name: strptr("Maggi Noodles")}},
		Removed: []int{1},
	}

	muts, err := Plan(testBaseline(), edits)
	if err != nil {
		t.Fatalf("plan returned error: %v", err)
	}
	kinds := make([]MutationKind, len(muts))
	for i, m := range muts {
		kinds[i] = m.Kind
	}
	want := []MutationKind{MutationUpdate, MutationInsert, MutationDelete}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d mutations, got %d", len(want), len(kinds))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, kinds)
		}
	}
	if muts[2].ID != 12 {
		t.Fatalf("delete must resolve the baseline id, got %d", muts[2].ID)
	}
}

func TestPlanRejectsOutOfRangeRemove(t *testing.T) {
	_, err := Plan(testBaseline(), EditSet{Removed: []int{3}})
	if !errors.Is(err, ErrInvalidRowReference) {
		t.Fatalf("expected ErrInvalidRowReference, got %v", err)
	}
}

func TestPlanRejectsOutOfRangeUpdate(t *testing.T) {
	_, err := Plan(testBaseline(), EditSet{Updated: map[int]ItemFields{-1: {Price: f64ptr(1)}}})
	if !errors.Is(err, ErrInvalidRowReference) {
		t.Fatalf("expected ErrInvalidRowReference, got %v", err)
	}
}
