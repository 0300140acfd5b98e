package soundconst

const (
	// MaxTax is the highest buy or sell rate accepted by setTax,
	// in hundredths of a percent.
	MaxTax = 100
	// TaxDenominator is the rate value meaning 100%.
	TaxDenominator = 10_000
	// DefaultTax is the rate of every transfer kind unless deploy
	// data specifies another one.
	DefaultTax = 300

	// ErrTaxTooHigh is thrown by setTax when a rate exceeds MaxTax.
	ErrTaxTooHigh = "tax too high"
	// ErrInvalidReceiver is thrown by setReceivers for the token contract itself.
	ErrInvalidReceiver = "invalid receiver"
)
