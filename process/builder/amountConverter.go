package builder

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/multiversx/mx-chain-transfer-relay-go/process"
	"github.com/shopspring/decimal"
)

// maxAmountDigits bounds both the integer and the fractional digits of an amount, 78 digits hold any 256 bits value
const maxAmountDigits = 78

var decimalOne = decimal.NewFromInt(1)

// ToDenominated converts a human readable amount into the integer amount the ledger works with:
// amount * 10^decimals, truncated toward zero
func ToDenominated(amount string, decimals uint32) (*big.Int, error) {
	value, err := parseAmount(amount)
	if err != nil {
		return nil, err
	}

	if decimals > maxAmountDigits {
		return nil, fmt.Errorf("%w: %d decimals are out of range", process.ErrInvalidIntent, decimals)
	}

	denominated := value.Shift(int32(decimals))
	if integerDigits(denominated) > maxAmountDigits {
		return nil, fmt.Errorf("%w: denominated amount has more than %d digits", process.ErrInvalidIntent, maxAmountDigits)
	}

	return denominated.Truncate(0).BigInt(), nil
}

// ToHuman converts a denominated amount back into its human readable form
func ToHuman(value *big.Int, decimals uint32) string {
	if value == nil {
		return "0"
	}

	return decimal.NewFromBigInt(value, -int32(decimals)).String()
}

func parseAmount(amount string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(amount)
	if len(trimmed) == 0 {
		return decimal.Zero, fmt.Errorf("%w: empty amount", process.ErrInvalidIntent)
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q: %v", process.ErrInvalidIntent, amount, err)
	}
	if value.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative amount %s", process.ErrInvalidIntent, amount)
	}
	if value.Exponent() < -maxAmountDigits || integerDigits(value) > maxAmountDigits {
		return decimal.Zero, fmt.Errorf("%w: amount out of range, at most %d integer and %d fractional digits are allowed",
			process.ErrInvalidIntent, maxAmountDigits, maxAmountDigits)
	}

	return value, nil
}

// integerDigits counts the digits left of the decimal point without expanding the exponent
func integerDigits(value decimal.Decimal) int64 {
	return int64(len(value.Coefficient().String())) + int64(value.Exponent())
}
