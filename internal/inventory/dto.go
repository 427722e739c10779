package inventory

// CommitRequest is the JSON body of the commit endpoint: the pending edits
// plus the exact baseline snapshot the client computed them against.
type CommitRequest struct {
	Edits    EditSet  `json:"edits"`
	Baseline Snapshot `json:"baseline"`
}

// ItemsResponse wraps a snapshot for the read endpoint and for the refreshed
// state returned after a commit.
type ItemsResponse struct {
	Items Snapshot `json:"items"`
}
