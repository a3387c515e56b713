package process

// EGLDDecimals is the number of decimals of the native coin
const EGLDDecimals = 18

// ArgumentsSeparator separates the function name and the arguments in a transaction data field
const ArgumentsSeparator = "@"

// NFTTransferQuantity is the quantity moved by a non fungible transfer
const NFTTransferQuantity = 1

// Metric outcomes for the usage fee gate
const (
	// FeeOutcomeWhitelisted is reported when the sender did not owe the fee
	FeeOutcomeWhitelisted = "whitelisted"
	// FeeOutcomePaid is reported when the fee transaction succeeded
	FeeOutcomePaid = "paid"
	// FeeOutcomeRejected is reported when the fee could not be collected
	FeeOutcomeRejected = "rejected"
)

// Submission failure reasons used for metrics
const (
	// ReasonSignature labels signing failures
	ReasonSignature = "signature"
	// ReasonBroadcast labels broadcast failures
	ReasonBroadcast = "broadcast"
)
