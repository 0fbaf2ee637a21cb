package model

// ErrorCategory groups failures by how the client reacts to them.
type ErrorCategory string

const (
	CategoryGeneric           ErrorCategory = "generic"
	CategoryNetworkBusy       ErrorCategory = "network_busy"
	CategoryConnection        ErrorCategory = "connection"
	CategoryWrongNetwork      ErrorCategory = "wrong_network"
	CategoryRejected          ErrorCategory = "rejected"
	CategoryInsufficientFunds ErrorCategory = "insufficient_funds"
	CategoryUnsigned          ErrorCategory = "unsigned"
	CategoryValidation        ErrorCategory = "validation"
	CategoryInFlight          ErrorCategory = "in_flight"
	CategoryWalletMissing     ErrorCategory = "wallet_missing"
	CategoryPleaseConnect     ErrorCategory = "please_connect"
	CategoryConnectPending    ErrorCategory = "connect_pending"
	CategoryNotDeployed       ErrorCategory = "not_deployed"
	CategoryUnreachable       ErrorCategory = "unreachable"
)

// Retryable reports whether the store may retry automatically.
func (c ErrorCategory) Retryable() bool {
	return c == CategoryNetworkBusy
}

// ErrorState is the user-presentable description of the most recent failure.
type ErrorState struct {
	Category ErrorCategory `json:"category"`
	Message  string        `json:"message"`
}

// Is reports whether the state belongs to the category. A nil state matches nothing.
func (e *ErrorState) Is(category ErrorCategory) bool {
	return e != nil && e.Category == category
}
