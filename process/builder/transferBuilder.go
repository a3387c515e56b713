package builder

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/multiversx/mx-chain-core-go/core"
	"github.com/multiversx/mx-chain-core-go/core/check"
	"github.com/multiversx/mx-chain-core-go/data/transaction"
	"github.com/multiversx/mx-chain-transfer-relay-go/config"
	"github.com/multiversx/mx-chain-transfer-relay-go/data"
	"github.com/multiversx/mx-chain-transfer-relay-go/process"
)

// ArgsTransferBuilder holds the arguments needed to create a new transfer builder
type ArgsTransferBuilder struct {
	PubkeyConverter  core.PubkeyConverter
	DecimalsProvider process.DecimalsProvider
	Config           config.GeneralConfig
}

type transferBuilder struct {
	pubkeyConverter  core.PubkeyConverter
	decimalsProvider process.DecimalsProvider
	config           config.GeneralConfig
}

// NewTransferBuilder creates a builder that turns transfer intents into unsigned transactions
func NewTransferBuilder(args ArgsTransferBuilder) (*transferBuilder, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	return &transferBuilder{
		pubkeyConverter:  args.PubkeyConverter,
		decimalsProvider: args.DecimalsProvider,
		config:           args.Config,
	}, nil
}

func checkArgs(args ArgsTransferBuilder) error {
	if check.IfNil(args.PubkeyConverter) {
		return process.ErrNilPubkeyConverter
	}
	if check.IfNil(args.DecimalsProvider) {
		return process.ErrNilDecimalsProvider
	}
	if len(args.Config.ChainID) == 0 {
		return process.ErrEmptyChainID
	}
	if args.Config.GasPrice == 0 {
		return process.ErrInvalidGasPrice
	}

	return nil
}

// CheckIntent validates the fields an intent needs for its kind, without consulting any collaborator
func (tb *transferBuilder) CheckIntent(intent *data.TransferIntent) error {
	if intent == nil {
		return fmt.Errorf("%w: nil intent", process.ErrInvalidIntent)
	}

	_, err := tb.decodeAddress("sender", intent.Sender)
	if err != nil {
		return err
	}
	_, err = tb.decodeAddress("receiver", intent.Receiver)
	if err != nil {
		return err
	}

	switch intent.Kind {
	case data.Native:
		_, err = parseAmount(intent.Amount)
		return err
	case data.Fungible:
		return checkTokenTransfer(intent, false)
	case data.NonFungible:
		return checkNFTTransfer(intent)
	case data.SemiFungible:
		return checkTokenTransfer(intent, true)
	case data.ContractCall:
		return checkContractCall(intent)
	default:
		return fmt.Errorf("%w: unknown kind %q", process.ErrInvalidIntent, intent.Kind)
	}
}

func checkTokenTransfer(intent *data.TransferIntent, needsTokenNonce bool) error {
	if len(intent.TokenIdentifier) == 0 {
		return fmt.Errorf("%w: missing token identifier for %s transfer", process.ErrInvalidIntent, intent.Kind)
	}
	if needsTokenNonce && !intent.HasTokenNonce() {
		return fmt.Errorf("%w: missing token nonce for %s transfer", process.ErrInvalidIntent, intent.Kind)
	}

	amount, err := parseAmount(intent.Amount)
	if err != nil {
		return err
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s transfer needs a positive amount", process.ErrInvalidIntent, intent.Kind)
	}

	return nil
}

func checkNFTTransfer(intent *data.TransferIntent) error {
	if len(intent.TokenIdentifier) == 0 {
		return fmt.Errorf("%w: missing token identifier for %s transfer", process.ErrInvalidIntent, intent.Kind)
	}
	if !intent.HasTokenNonce() {
		return fmt.Errorf("%w: missing token nonce for %s transfer", process.ErrInvalidIntent, intent.Kind)
	}
	if len(intent.Amount) == 0 {
		return nil
	}

	amount, err := parseAmount(intent.Amount)
	if err != nil {
		return err
	}
	if !amount.Equal(decimalOne) {
		return fmt.Errorf("%w: %s transfer moves exactly one unit, got %s", process.ErrInvalidIntent, intent.Kind, intent.Amount)
	}

	return nil
}

func checkContractCall(intent *data.TransferIntent) error {
	if len(intent.ContractEndpoint) == 0 {
		return fmt.Errorf("%w: missing contract endpoint", process.ErrInvalidIntent)
	}
	for idx, arg := range intent.ContractArgs {
		_, err := hex.DecodeString(arg)
		if err != nil {
			return fmt.Errorf("%w: contract argument %d is not hex encoded: %v", process.ErrInvalidIntent, idx, err)
		}
	}
	if len(intent.Amount) == 0 {
		return nil
	}

	_, err := parseAmount(intent.Amount)
	return err
}

// Build creates the unsigned transaction for the intent, using the provided nonce
func (tb *transferBuilder) Build(ctx context.Context, intent *data.TransferIntent, nonce uint64) (*transaction.Transaction, error) {
	err := tb.CheckIntent(intent)
	if err != nil {
		return nil, err
	}

	senderBytes, _ := tb.decodeAddress("sender", intent.Sender)
	receiverBytes, _ := tb.decodeAddress("receiver", intent.Receiver)

	tx := &transaction.Transaction{
		Nonce:    nonce,
		Value:    big.NewInt(0),
		SndAddr:  senderBytes,
		RcvAddr:  receiverBytes,
		GasPrice: tb.config.GasPrice,
		ChainID:  []byte(tb.config.ChainID),
		Version:  tb.config.TxVersion,
	}

	switch intent.Kind {
	case data.Native:
		err = tb.fillNativeTransfer(tx, intent)
	case data.Fungible:
		err = tb.fillFungibleTransfer(ctx, tx, intent)
	case data.NonFungible:
		err = tb.fillNFTTransfer(tx, intent, big.NewInt(process.NFTTransferQuantity), receiverBytes)
	case data.SemiFungible:
		err = tb.fillSFTTransfer(ctx, tx, intent, receiverBytes)
	case data.ContractCall:
		err = tb.fillContractCall(tx, intent)
	}
	if err != nil {
		return nil, err
	}

	return tx, nil
}

func (tb *transferBuilder) fillNativeTransfer(tx *transaction.Transaction, intent *data.TransferIntent) error {
	value, err := ToDenominated(intent.Amount, process.EGLDDecimals)
	if err != nil {
		return err
	}

	tx.Value = value
	tx.GasLimit = tb.config.MinGasLimit

	return nil
}

func (tb *transferBuilder) fillFungibleTransfer(ctx context.Context, tx *transaction.Transaction, intent *data.TransferIntent) error {
	amount, err := tb.denominateTokenAmount(ctx, intent)
	if err != nil {
		return err
	}

	tx.Data = []byte(process.BuildDataField(
		core.BuiltInFunctionESDTTransfer,
		process.EncodeString(intent.TokenIdentifier),
		process.EncodeBigInt(amount),
	))
	tx.GasLimit = tb.config.EsdtTransferGasLimit

	return nil
}

func (tb *transferBuilder) fillSFTTransfer(ctx context.Context, tx *transaction.Transaction, intent *data.TransferIntent, receiverBytes []byte) error {
	quantity, err := tb.denominateTokenAmount(ctx, intent)
	if err != nil {
		return err
	}

	return tb.fillNFTTransfer(tx, intent, quantity, receiverBytes)
}

// fillNFTTransfer builds the ESDTNFTTransfer call, which the sender addresses to itself
func (tb *transferBuilder) fillNFTTransfer(tx *transaction.Transaction, intent *data.TransferIntent, quantity *big.Int, receiverBytes []byte) error {
	tx.RcvAddr = tx.SndAddr
	tx.Data = []byte(process.BuildDataField(
		core.BuiltInFunctionESDTNFTTransfer,
		process.EncodeString(intent.TokenIdentifier),
		process.EncodeUint64(*intent.TokenNonce),
		process.EncodeBigInt(quantity),
		hex.EncodeToString(receiverBytes),
	))
	tx.GasLimit = tb.scaledGasLimit(tb.config.NftTransferGasLimitPerUnit, quantity)

	return nil
}

func (tb *transferBuilder) fillContractCall(tx *transaction.Transaction, intent *data.TransferIntent) error {
	if len(intent.Amount) > 0 {
		value, err := ToDenominated(intent.Amount, process.EGLDDecimals)
		if err != nil {
			return err
		}
		tx.Value = value
	}

	tx.Data = []byte(process.BuildDataField(intent.ContractEndpoint, intent.ContractArgs...))

	quantity := big.NewInt(0).SetUint64(intent.Quantity)
	gasLimit := tb.scaledGasLimit(tb.config.ContractCallGasLimitPerUnit, quantity)
	gasLimit += tb.config.GasPerDataByte * uint64(len(tx.Data))
	tx.GasLimit = tb.capGasLimit(gasLimit)

	return nil
}

func (tb *transferBuilder) denominateTokenAmount(ctx context.Context, intent *data.TransferIntent) (*big.Int, error) {
	decimals, err := tb.decimalsProvider.GetDecimals(ctx, intent.TokenIdentifier)
	if err != nil {
		return nil, fmt.Errorf("cannot get decimals for token %s: %w", intent.TokenIdentifier, err)
	}

	amount, err := ToDenominated(intent.Amount, decimals)
	if err != nil {
		return nil, err
	}
	if amount.Sign() == 0 {
		return nil, fmt.Errorf("%w: amount %s of %s is below the token precision", process.ErrInvalidIntent, intent.Amount, intent.TokenIdentifier)
	}

	return amount, nil
}

// scaledGasLimit multiplies the per unit gas by the quantity, a zero quantity counting as one unit
func (tb *transferBuilder) scaledGasLimit(gasPerUnit uint64, quantity *big.Int) uint64 {
	units := big.NewInt(1)
	if quantity != nil && quantity.Sign() > 0 {
		units = quantity
	}

	gasLimit := big.NewInt(0).Mul(big.NewInt(0).SetUint64(gasPerUnit), units)
	if !gasLimit.IsUint64() {
		return tb.capGasLimit(tb.config.MaxGasLimit)
	}

	return tb.capGasLimit(gasLimit.Uint64())
}

func (tb *transferBuilder) capGasLimit(gasLimit uint64) uint64 {
	if tb.config.MaxGasLimit > 0 && gasLimit > tb.config.MaxGasLimit {
		return tb.config.MaxGasLimit
	}

	return gasLimit
}

func (tb *transferBuilder) decodeAddress(field string, address string) ([]byte, error) {
	if len(address) == 0 {
		return nil, fmt.Errorf("%w: empty %s", process.ErrInvalidIntent, field)
	}

	addressBytes, err := tb.pubkeyConverter.Decode(address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", process.ErrInvalidIntent, field, address, err)
	}

	return addressBytes, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (tb *transferBuilder) IsInterfaceNil() bool {
	return tb == nil
}
