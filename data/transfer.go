package data

// TransferKind defines the kind of move a TransferIntent describes
type TransferKind string

const (
	// Native is a plain EGLD value transfer
	Native TransferKind = "native"
	// Fungible is an ESDT transfer
	Fungible TransferKind = "fungible"
	// NonFungible is an NFT transfer, always of quantity one
	NonFungible TransferKind = "non-fungible"
	// SemiFungible is an SFT transfer of a given quantity
	SemiFungible TransferKind = "semi-fungible"
	// ContractCall is a smart contract endpoint call, optionally carrying native value
	ContractCall TransferKind = "contract-call"
)

// TransferIntent holds what a client asked the relay to move. It must not be altered once created.
type TransferIntent struct {
	Kind             TransferKind `json:"kind"`
	Sender           string       `json:"sender"`
	Receiver         string       `json:"receiver"`
	Amount           string       `json:"amount"`
	TokenIdentifier  string       `json:"tokenIdentifier,omitempty"`
	TokenNonce       *uint64      `json:"tokenNonce,omitempty"`
	ContractEndpoint string       `json:"contractEndpoint,omitempty"`
	ContractArgs     []string     `json:"contractArgs,omitempty"`
	// Quantity scales the gas of contract calls that mint or distribute several units in one call
	Quantity uint64 `json:"quantity,omitempty"`
	// Key identifies the item inside a batch. Defaults to the receiver.
	Key string `json:"key,omitempty"`
}

// ItemKey returns the key used for this intent inside a BatchOutcome
func (intent *TransferIntent) ItemKey() string {
	if len(intent.Key) > 0 {
		return intent.Key
	}

	return intent.Receiver
}

// HasTokenNonce returns true if the token nonce was provided
func (intent *TransferIntent) HasTokenNonce() bool {
	return intent.TokenNonce != nil
}
