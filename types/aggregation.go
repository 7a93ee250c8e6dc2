package types

// AggregationResult is the outcome of folding one header batch.
// TotalProcessed equals the number of input headers, whether or not a
// record contributed addresses. UniqueAddresses carries no ordering
// guarantee.
type AggregationResult struct {
	UniqueAddresses []string
	TotalProcessed  int
}
