package services

import (
	"testing"

	"github.com/maildiscovery/go-parser-server/types"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func TestAggregateEmptyBatch(t *testing.T) {
	result := NewParseService().Aggregate([]*types.EmailHeader{})

	assert.Equal(t, 0, result.TotalProcessed)
	assert.NotNil(t, result.UniqueAddresses)
	assert.Empty(t, result.UniqueAddresses)
}

func TestAggregateSingleFrom(t *testing.T) {
	headers := []*types.EmailHeader{
		{ID: strPtr("1"), Folder: strPtr("inbox"), From: strPtr("a@x.com")},
	}
	result := NewParseService().Aggregate(headers)

	assert.Equal(t, 1, result.TotalProcessed)
	assert.Equal(t, []string{"a@x.com"}, result.UniqueAddresses)
}

func TestAggregateCollectsAllAddressFields(t *testing.T) {
	headers := []*types.EmailHeader{
		{
			ID:     strPtr("1"),
			Folder: strPtr("inbox"),
			From:   strPtr("from@x.com"),
			To:     []string{"to@x.com"},
			Cc:     []string{"cc@x.com"},
			Bcc:    []string{"bcc@x.com"},
		},
	}
	result := NewParseService().Aggregate(headers)

	assert.Equal(t, 1, result.TotalProcessed)
	assert.ElementsMatch(t, []string{"from@x.com", "to@x.com", "cc@x.com", "bcc@x.com"}, result.UniqueAddresses)
}

func TestAggregateDeduplicatesAcrossFieldsAndRecords(t *testing.T) {
	headers := []*types.EmailHeader{
		{ID: strPtr("1"), Folder: strPtr("inbox"), To: []string{"a@x.com", "a@x.com"}},
		{ID: strPtr("2"), Folder: strPtr("sent"), From: strPtr("a@x.com"), Bcc: []string{"a@x.com"}},
	}
	result := NewParseService().Aggregate(headers)

	assert.Equal(t, 2, result.TotalProcessed)
	assert.Equal(t, []string{"a@x.com"}, result.UniqueAddresses)
}

func TestAggregateCountsRecordsWithoutAddresses(t *testing.T) {
	headers := []*types.EmailHeader{
		{ID: strPtr("1"), Folder: strPtr("inbox"), Subject: strPtr("no addresses here"), Date: strPtr("2024-01-01")},
		{ID: strPtr("2"), Folder: strPtr("inbox"), From: strPtr("a@x.com")},
	}
	result := NewParseService().Aggregate(headers)

	assert.Equal(t, 2, result.TotalProcessed)
	assert.Equal(t, []string{"a@x.com"}, result.UniqueAddresses)
}

func TestAggregateKeepsEmptyStringAddress(t *testing.T) {
	headers := []*types.EmailHeader{
		{ID: strPtr("1"), Folder: strPtr("inbox"), From: strPtr(""), To: []string{"a@x.com"}},
	}
	result := NewParseService().Aggregate(headers)

	assert.Equal(t, 1, result.TotalProcessed)
	assert.ElementsMatch(t, []string{"", "a@x.com"}, result.UniqueAddresses)
}

func TestAggregateIsCaseSensitive(t *testing.T) {
	headers := []*types.EmailHeader{
		{ID: strPtr("1"), Folder: strPtr("inbox"), From: strPtr("A@x.com"), To: []string{"a@x.com"}},
	}
	result := NewParseService().Aggregate(headers)

	assert.ElementsMatch(t, []string{"A@x.com", "a@x.com"}, result.UniqueAddresses)
}
