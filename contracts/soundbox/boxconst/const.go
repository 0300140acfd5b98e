package boxconst

// Payment assets of album prices and listings.
const (
	AssetSound  = 1
	AssetStable = 2
)

const (
	// DefaultMaxSupply is the album cap unless deploy data specifies another one.
	DefaultMaxSupply = 10_000

	// ClaimMessagePrefix is prepended to the SHA-256 digest of claim payload
	// to form the message signed by the claim signer.
	ClaimMessagePrefix = "\x19Ethereum Signed Message:\n32"
)

const (
	ErrInvalidPrice            = "invalid price"
	ErrInsufficientLedgerFunds = "not enough ledger funds"
	ErrInsufficientCustody     = "not enough custody funds"
	ErrExceedsLedgerBalance    = "amount exceeds ledger balance"
	ErrInvalidSignature        = "signature invalid"
	ErrNonceConsumed           = "nonce already consumed"
	ErrSupplyExhausted         = "supply exhausted"
	ErrOutOfStock              = "out of stock"
	ErrMarketDisabled          = "market not enabled"
	ErrNotListed               = "not for sale"

	ErrUnsupportedToken = "unsupported token"
	ErrTokenNotFound    = "token not found"
	ErrInvalidSigner    = "invalid signer key"
	ErrOutOfRange       = "value exceeds 256 bits"
)
