package ledger

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-core-go/marshal"
	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/multiversx/mx-chain-transfer-relay-go/process"
	"golang.org/x/time/rate"
)

var log = logger.GetOrCreate("ledger")

const (
	addressNoncePath      = "/address/%s/nonce"
	sendTransactionPath   = "/transaction/send"
	transactionStatusPath = "/transaction/%s/status"
	maxIdleConnsPerHost   = 15
)

// ArgsGatewayClient holds the arguments needed to create a new gateway client
type ArgsGatewayClient struct {
	URL                  string
	RequestTimeout       time.Duration
	MaxRequestsPerSecond float64
	Burst                int
	PubkeyConverter      core.PubkeyConverter
	Marshaller           marshal.Marshalizer
}

// gatewayClient talks to the ledger through the REST API of a gateway (proxy) instance
type gatewayClient struct {
	baseURL         string
	httpClient      *http.Client
	limiter         *rate.Limiter
	pubkeyConverter core.PubkeyConverter
	marshaller      marshal.Marshalizer
}

// NewGatewayClient creates a new ledger provider backed by a gateway instance
func NewGatewayClient(args ArgsGatewayClient) (*gatewayClient, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	return &gatewayClient{
		baseURL: strings.TrimSuffix(args.URL, "/"),
		httpClient: &http.Client{
			Timeout:   args.RequestTimeout,
			Transport: newTransport(args.RequestTimeout),
		},
		limiter:         rate.NewLimiter(rate.Limit(args.MaxRequestsPerSecond), args.Burst),
		pubkeyConverter: args.PubkeyConverter,
		marshaller:      args.Marshaller,
	}, nil
}

func checkArgs(args ArgsGatewayClient) error {
	if len(args.URL) == 0 {
		return ErrEmptyGatewayURL
	}
	if args.RequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}
	if args.MaxRequestsPerSecond <= 0 || args.Burst < 1 {
		return fmt.Errorf("%w: %v requests per second, burst %d", ErrInvalidRateLimit, args.MaxRequestsPerSecond, args.Burst)
	}
	if check.IfNil(args.PubkeyConverter) {
		return process.ErrNilPubkeyConverter
	}
	if check.IfNil(args.Marshaller) {
		return ErrNilMarshaller
	}

	return nil
}

func newTransport(timeout time.Duration) *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: timeout * 3,
		}).DialContext,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     timeout * 9,
		TLSHandshakeTimeout: timeout,
	}
}

// GetAccountNonce returns the current nonce of the account, as seen by the gateway
func (gc *gatewayClient) GetAccountNonce(ctx context.Context, address string) (uint64, error) {
	responseData := &nonceResponseData{}
	endpoint := fmt.Sprintf(addressNoncePath, url.PathEscape(address))
	err := gc.doRequest(ctx, http.MethodGet, endpoint, nil, responseData)
	if err != nil {
		return 0, err
	}

	log.Trace("fetched account nonce", "address", address, "nonce", responseData.Nonce)

	return responseData.Nonce, nil
}

// SendTransaction broadcasts the signed transaction and returns its hash
func (gc *gatewayClient) SendTransaction(ctx context.Context, tx *transaction.Transaction) (string, error) {
	if tx == nil {
		return "", process.ErrNilTransaction
	}

	frontendTx, err := gc.toFrontendTransaction(tx)
	if err != nil {
		return "", err
	}

	payload, err := gc.marshaller.Marshal(frontendTx)
	if err != nil {
		return "", err
	}

	responseData := &sendTransactionResponseData{}
	err = gc.doRequest(ctx, http.MethodPost, sendTransactionPath, payload, responseData)
	if err != nil {
		return "", err
	}
	if len(responseData.TxHash) == 0 {
		return "", ErrEmptyTxHash
	}

	return responseData.TxHash, nil
}

// GetTransactionStatus returns the status code of the transaction
func (gc *gatewayClient) GetTransactionStatus(ctx context.Context, txHash string) (transaction.TxStatus, error) {
	responseData := &transactionStatusResponseData{}
	endpoint := fmt.Sprintf(transactionStatusPath, url.PathEscape(txHash))
	err := gc.doRequest(ctx, http.MethodGet, endpoint, nil, responseData)
	if err != nil {
		return "", err
	}

	return transaction.TxStatus(responseData.Status), nil
}

func (gc *gatewayClient) toFrontendTransaction(tx *transaction.Transaction) (*transaction.FrontendTransaction, error) {
	sender, err := gc.pubkeyConverter.Encode(tx.SndAddr)
	if err != nil {
		return nil, fmt.Errorf("%w while encoding the sender", err)
	}
	receiver, err := gc.pubkeyConverter.Encode(tx.RcvAddr)
	if err != nil {
		return nil, fmt.Errorf("%w while encoding the receiver", err)
	}

	value := "0"
	if tx.Value != nil {
		value = tx.Value.String()
	}

	return &transaction.FrontendTransaction{
		Nonce:     tx.Nonce,
		Value:     value,
		Receiver:  receiver,
		Sender:    sender,
		GasPrice:  tx.GasPrice,
		GasLimit:  tx.GasLimit,
		Data:      tx.Data,
		Signature: hex.EncodeToString(tx.Signature),
		ChainID:   string(tx.ChainID),
		Version:   tx.Version,
		Options:   tx.Options,
	}, nil
}

func (gc *gatewayClient) doRequest(ctx context.Context, method string, endpoint string, payload []byte, responseData interface{}) error {
	err := gc.limiter.Wait(ctx)
	if err != nil {
		return err
	}

	var body io.Reader
	if len(payload) > 0 {
		body = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, gc.baseURL+endpoint, body)
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := gc.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer func() {
		_ = response.Body.Close()
	}()

	buff, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	envelope := &gatewayResponse{}
	err = gc.marshaller.Unmarshal(envelope, buff)
	if err != nil {
		return fmt.Errorf("%w: http status %d, cannot decode response: %v", ErrGatewayRequest, response.StatusCode, err)
	}
	if response.StatusCode != http.StatusOK || envelope.Code != returnCodeSuccess {
		return fmt.Errorf("%w: http status %d, code %s, error: %s", ErrGatewayRequest, response.StatusCode, envelope.Code, envelope.Error)
	}

	return gc.marshaller.Unmarshal(responseData, envelope.Data)
}

// IsInterfaceNil returns true if there is no value under the interface
func (gc *gatewayClient) IsInterfaceNil() bool {
	return gc == nil
}
