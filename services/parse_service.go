package services

import (
	"github.com/maildiscovery/go-parser-server/types"
)

// ParseService folds email header batches into a deduplicated address set.
// It holds no state; a fresh set is allocated per call so concurrent
// requests never share memory.
type ParseService struct {
}

func NewParseService() *ParseService {
	return &ParseService{}
}

// Aggregate collects every address appearing in the from/to/cc/bcc fields
// of the given headers, in input order. Uniqueness is exact string
// equality. The enumeration order of the returned addresses is
// map-iteration order, i.e. unspecified.
func (ps *ParseService) Aggregate(headers []*types.EmailHeader) *types.AggregationResult {
	seen := make(map[string]struct{})
	for _, header := range headers {
		if header.From != nil {
			seen[*header.From] = struct{}{}
		}
		for _, addr := range header.To {
			seen[addr] = struct{}{}
		}
		for _, addr := range header.Cc {
			seen[addr] = struct{}{}
		}
		for _, addr := range header.Bcc {
			seen[addr] = struct{}{}
		}
	}

	unique := make([]string, 0, len(seen))
	for addr := range seen {
		unique = append(unique, addr)
	}

	return &types.AggregationResult{
		UniqueAddresses: unique,
		TotalProcessed:  len(headers),
	}
}
