package data

// RewardShare is the amount owed to one owner in a reward distribution
type RewardShare struct {
	Owner  string `json:"owner"`
	Amount string `json:"amount"`
}

// RewardDistribution describes a fungible token payout from one sender to many owners
type RewardDistribution struct {
	Sender          string        `json:"sender"`
	TokenIdentifier string        `json:"tokenIdentifier"`
	Shares          []RewardShare `json:"shares"`
}

// Intents returns one fungible transfer intent per share, keyed by the owner address
func (distribution *RewardDistribution) Intents() []*TransferIntent {
	intents := make([]*TransferIntent, 0, len(distribution.Shares))
	for _, share := range distribution.Shares {
		intents = append(intents, &TransferIntent{
			Kind:            Fungible,
			Sender:          distribution.Sender,
			Receiver:        share.Owner,
			Amount:          share.Amount,
			TokenIdentifier: distribution.TokenIdentifier,
			Key:             share.Owner,
		})
	}

	return intents
}
