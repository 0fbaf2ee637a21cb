package model

// View is the immutable state published by the game store.
type View struct {
	Snapshot     *GameSnapshot
	Loaded       bool
	Refreshing   bool
	Error        *ErrorState
	WalletError  *ErrorState
	RetryAttempt int
	MaxRetries   int
	Identity     Identity
	Submission   *OperationResult
}

// LastError returns the error the presentation layer should show, wallet errors first.
func (v View) LastError() *ErrorState {
	if v.WalletError != nil {
		return v.WalletError
	}
	return v.Error
}
