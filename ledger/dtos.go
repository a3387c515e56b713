package ledger

import "encoding/json"

const returnCodeSuccess = "successful"

// gatewayResponse is the envelope every gateway endpoint answers with
type gatewayResponse struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
	Code  string          `json:"code"`
}

type nonceResponseData struct {
	Nonce uint64 `json:"nonce"`
}

type sendTransactionResponseData struct {
	TxHash string `json:"txHash"`
}

type transactionStatusResponseData struct {
	Status string `json:"status"`
}
