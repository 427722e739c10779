package inventory

// EditSet describes the pending changes of one editing session, keyed by row
// index into the baseline Snapshot the session was loaded from. It mirrors the
// shape the grid produces: patches for edited rows, drafts for appended rows,
// indices for deleted rows.
type EditSet struct {
	Updated map[int]ItemFields `json:"updated_rows"`
	Added   []ItemFields       `json:"added_rows"`
	Removed []int              `json:"removed_rows"`
}

// Empty reports whether the session holds no pending change. An empty edit
// set must never open a storage transaction.
func (e EditSet) Empty() bool {
	return len(e.Updated) == 0 && len(e.Added) == 0 && len(e.Removed) == 0
}
