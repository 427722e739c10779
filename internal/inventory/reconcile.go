package inventory

import (
	"fmt"
	"sort"
)

// MutationKind enumerates the storage operations a commit can emit.
type MutationKind string

const (
	// MutationInsert appends a new row; storage assigns the id.
	MutationInsert MutationKind = "INSERT"
	// MutationUpdate rewrites every editable column of an existing row.
	MutationUpdate MutationKind = "UPDATE"
	// MutationDelete removes an existing row by id.
	MutationDelete MutationKind = "DELETE"
)

// Mutation is one storage operation produced by reconciling an edit session.
type Mutation struct {
	Kind   MutationKind
	ID     int64      // target row for UPDATE and DELETE
	Fields ItemFields // full column set for INSERT and UPDATE
}

// Plan translates an edit session against the baseline it was computed from
// into an ordered mutation sequence: updates first, then inserts, then
// deletes. A row index present in both Updated and Removed yields only the
// delete. Row indices are validated against the baseline bounds; a stale
// session surfaces as ErrInvalidRowReference instead of being skipped.
func Plan(baseline Snapshot, edits EditSet) ([]Mutation, error) {
	if edits.Empty() {
		return nil, nil
	}

	removed := make(map[int]struct{}, len(edits.Removed))
	for _, idx := range edits.Removed {
		if idx < 0 || idx >= len(baseline) {
			return nil, fmt.Errorf("%w: removed row %d outside baseline of %d rows", ErrInvalidRowReference, idx, len(baseline))
		}
		removed[idx] = struct{}{}
	}

	updatedIdx := make([]int, 0, len(edits.Updated))
	for idx := range edits.Updated {
		if idx < 0 || idx >= len(baseline) {
			return nil, fmt.Errorf("%w: updated row %d outside baseline of %d rows", ErrInvalidRowReference, idx, len(baseline))
		}
		updatedIdx = append(updatedIdx, idx)
	}
	sort.Ints(updatedIdx)

	muts := make([]Mutation, 0, len(updatedIdx)+len(edits.Added)+len(removed))

	for _, idx := range updatedIdx {
		if _, gone := removed[idx]; gone {
			// delete wins
			continue
		}
		row := baseline[idx]
		muts = append(muts, Mutation{
			Kind:   MutationUpdate,
			ID:     row.ID,
			Fields: row.ItemFields.Merge(edits.Updated[idx]),
		})
	}

	for _, draft := range edits.Added {
		muts = append(muts, Mutation{Kind: MutationInsert, Fields: draft})
	}

	removedIdx := make([]int, 0, len(removed))
	for idx := range removed {
		removedIdx = append(removedIdx, idx)
	}
	sort.Ints(removedIdx)
	for _, idx := range removedIdx {
		muts = append(muts, Mutation{Kind: MutationDelete, ID: baseline[idx].ID})
	}

	return muts, nil
}
