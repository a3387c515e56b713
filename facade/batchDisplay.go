package facade

import (
	"github.com/multiversx/mx-chain-core-go/display"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-transfer-relay-go/data"
)

var batchOutcomeHeader = []string{"Key", "Status", "Tx status", "Tx hash", "Error"}

func createBatchOutcomeTable(outcome data.BatchOutcome) (string, error) {
	lines := make([]*display.LineData, 0, len(outcome))
	for _, item := range outcome {
		lines = append(lines, display.NewLineData(false, []string{
			item.ItemKey,
			string(item.Status),
			string(item.TxStatus),
			item.TransactionID,
			item.Error,
		}))
	}

	return display.CreateTableString(batchOutcomeHeader, lines)
}

func displayBatchOutcome(outcome data.BatchOutcome) {
	if log.GetLevel() > logger.LogDebug {
		return
	}

	table, err := createBatchOutcomeTable(outcome)
	if err != nil {
		log.Debug("cannot display batch outcome", "error", err)
		return
	}

	log.Debug("batch outcome\n" + table)
}
