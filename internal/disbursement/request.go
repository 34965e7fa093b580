package disbursement

// CreateDisbursementRequest is the admin payload for recording a
// release of funds.
type CreateDisbursementRequest struct {
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

// ActivityFileInput is one file pointer attached to a new activity.
// The URL normally comes from a prior call to the upload endpoint.
type ActivityFileInput struct {
	FileURL     string `json:"file_url"`
	DisplayName string `json:"display_name"`
	FileType    string `json:"file_type"`
}

// CreateActivityRequest is the admin payload for one timeline entry.
// ActivityDate accepts "2006-01-02" or RFC 3339.
type CreateActivityRequest struct {
	ActivityDate string              `json:"activity_date"`
	Description  string              `json:"description"`
	Files        []ActivityFileInput `json:"files"`
}

// ActivityTree is an activity together with its files, ordered by file
// creation time.
type ActivityTree struct {
	DisbursementActivity
	Files []ActivityFile `json:"files"`
}

// DisbursementTree is the public feed shape: one disbursement with its
// full activity timeline.
type DisbursementTree struct {
	Disbursement
	Activities []ActivityTree `json:"activities"`
}
