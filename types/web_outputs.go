package types

// OutputParse is the response body of the parse endpoint. The enumeration
// order of UniqueEmails is unspecified and may differ between identical
// calls.
type OutputParse struct {
	UniqueEmails   []string `json:"unique_emails"`
	TotalProcessed int      `json:"total_processed"`
}
