package common

// Failure messages shared by the contracts.
const (
	// ErrNotOwner is thrown when an owner-only method is called without
	// the owner witness or when the caller doesn't own an asset.
	ErrNotOwner = "not owner"
	// ErrNotAuthorized is thrown when neither the owner nor any of the
	// authorized accounts witnessed the call.
	ErrNotAuthorized = "not authorized"
	// ErrNegativeAmount is thrown for negative amounts and prices.
	ErrNegativeAmount = "negative amount"
	// ErrInsufficientBalance is thrown when a wallet balance or an
	// allowance doesn't cover the requested amount.
	ErrInsufficientBalance = "insufficient balance"
)
