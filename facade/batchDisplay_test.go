package facade

import (
	"strings"
	"testing"

	"github.com/multiversx/mx-chain-transfer-relay-go/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBatchOutcomeTable(t *testing.T) {
	t.Parallel()

	outcome := data.BatchOutcome{
		{ItemKey: "receiver-0", Status: data.BatchItemSucceeded, TxStatus: data.StatusSuccess, TransactionID: "hash-0"},
		{ItemKey: "receiver-1", Status: data.BatchItemFailed, Error: "broadcast failure"},
	}

	table, err := createBatchOutcomeTable(outcome)
	require.Nil(t, err)

	assert.True(t, strings.Contains(table, "Tx hash"))
	assert.True(t, strings.Contains(table, "receiver-0"))
	assert.True(t, strings.Contains(table, "hash-0"))
	assert.True(t, strings.Contains(table, "broadcast failure"))
}

func TestDisplayBatchOutcome_EmptyOutcomeShouldNotPanic(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		displayBatchOutcome(make(data.BatchOutcome, 0))
	})
}
