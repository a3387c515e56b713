package testscommon

import (
	"context"

	"github.com/multiversx/mx-chain-transfer-relay-go/data"
)

// RelayFacadeStub -
type RelayFacadeStub struct {
	TransferNativeCalled       func(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error)
	TransferFungibleCalled     func(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error)
	TransferNonFungibleCalled  func(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error)
	TransferSemiFungibleCalled func(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error)
	CallContractCalled         func(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error)
	RunBatchCalled             func(ctx context.Context, intents []*data.TransferIntent) (data.BatchOutcome, error)
	DistributeRewardsCalled    func(ctx context.Context, distribution *data.RewardDistribution) (data.BatchOutcome, error)
	GetTransactionStatusCalled func(ctx context.Context, txHash string) (data.TxStatus, error)
	AddToWhitelistCalled       func(address string) error
	RemoveFromWhitelistCalled  func(address string) error
	GetWhitelistCalled         func() ([]string, error)
}

// TransferNative -
func (stub *RelayFacadeStub) TransferNative(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error) {
	if stub.TransferNativeCalled != nil {
		return stub.TransferNativeCalled(ctx, intent)
	}

	return &data.SubmissionResult{}, nil
}

// TransferFungible -
func (stub *RelayFacadeStub) TransferFungible(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error) {
	if stub.TransferFungibleCalled != nil {
		return stub.TransferFungibleCalled(ctx, intent)
	}

	return &data.SubmissionResult{}, nil
}

// TransferNonFungible -
func (stub *RelayFacadeStub) TransferNonFungible(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error) {
	if stub.TransferNonFungibleCalled != nil {
		return stub.TransferNonFungibleCalled(ctx, intent)
	}

	return &data.SubmissionResult{}, nil
}

// TransferSemiFungible -
func (stub *RelayFacadeStub) TransferSemiFungible(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error) {
	if stub.TransferSemiFungibleCalled != nil {
		return stub.TransferSemiFungibleCalled(ctx, intent)
	}

	return &data.SubmissionResult{}, nil
}

// CallContract -
func (stub *RelayFacadeStub) CallContract(ctx context.Context, intent *data.TransferIntent) (*data.SubmissionResult, error) {
	if stub.CallContractCalled != nil {
		return stub.CallContractCalled(ctx, intent)
	}

	return &data.SubmissionResult{}, nil
}

// RunBatch -
func (stub *RelayFacadeStub) RunBatch(ctx context.Context, intents []*data.TransferIntent) (data.BatchOutcome, error) {
	if stub.RunBatchCalled != nil {
		return stub.RunBatchCalled(ctx, intents)
	}

	return make(data.BatchOutcome, 0), nil
}

// DistributeRewards -
func (stub *RelayFacadeStub) DistributeRewards(ctx context.Context, distribution *data.RewardDistribution) (data.BatchOutcome, error) {
	if stub.DistributeRewardsCalled != nil {
		return stub.DistributeRewardsCalled(ctx, distribution)
	}

	return make(data.BatchOutcome, 0), nil
}

// GetTransactionStatus -
func (stub *RelayFacadeStub) GetTransactionStatus(ctx context.Context, txHash string) (data.TxStatus, error) {
	if stub.GetTransactionStatusCalled != nil {
		return stub.GetTransactionStatusCalled(ctx, txHash)
	}

	return data.StatusPending, nil
}

// AddToWhitelist -
func (stub *RelayFacadeStub) AddToWhitelist(address string) error {
	if stub.AddToWhitelistCalled != nil {
		return stub.AddToWhitelistCalled(address)
	}

	return nil
}

// RemoveFromWhitelist -
func (stub *RelayFacadeStub) RemoveFromWhitelist(address string) error {
	if stub.RemoveFromWhitelistCalled != nil {
		return stub.RemoveFromWhitelistCalled(address)
	}

	return nil
}

// GetWhitelist -
func (stub *RelayFacadeStub) GetWhitelist() ([]string, error) {
	if stub.GetWhitelistCalled != nil {
		return stub.GetWhitelistCalled()
	}

	return make([]string, 0), nil
}

// IsInterfaceNil -
func (stub *RelayFacadeStub) IsInterfaceNil() bool {
	return stub == nil
}
