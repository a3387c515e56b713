package process

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-transfer-relay-go/data"
)

// EncodeBigInt returns the even-length hex representation of the value magnitude, as expected in a data field
func EncodeBigInt(value *big.Int) string {
	if value == nil || value.Sign() == 0 {
		return "00"
	}

	return hex.EncodeToString(value.Bytes())
}

// EncodeUint64 returns the even-length hex representation of the value
func EncodeUint64(value uint64) string {
	return EncodeBigInt(big.NewInt(0).SetUint64(value))
}

// EncodeString returns the hex representation of the provided string
func EncodeString(value string) string {
	return hex.EncodeToString([]byte(value))
}

// BuildDataField joins the function name and the already encoded arguments
func BuildDataField(function string, args ...string) string {
	if len(args) == 0 {
		return function
	}

	return function + ArgumentsSeparator + strings.Join(args, ArgumentsSeparator)
}

// StatusFromLedger maps a ledger status code to the relay status. Invalid transactions count as failed
// since the ledger will not execute them anymore. Every other code is still pending.
func StatusFromLedger(status transaction.TxStatus) data.TxStatus {
	switch status {
	case transaction.TxStatusSuccess:
		return data.StatusSuccess
	case transaction.TxStatusFail, transaction.TxStatusInvalid:
		return data.StatusFail
	default:
		return data.StatusPending
	}
}
