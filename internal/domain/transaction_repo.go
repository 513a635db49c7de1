package domain

type TransactionRepository interface {
	CreateTransaction(tx *PaymentTransaction) error
	GetTransactionByID(id string) (*PaymentTransaction, error)
	GetTransactionByReference(reference string) (*PaymentTransaction, error)
	// UpdateTransactionStatus applies the transition only if the row is still
	// in the expected prior status. Returns ErrStatusConflict otherwise.
	UpdateTransactionStatus(id string, from, to TransactionStatus) error
	// SetProviderReference writes the provider reference at most once.
	// Re-setting the same value is a no-op.
	SetProviderReference(id, providerReference string) error
	AppendMetadata(id string, patch map[string]interface{}) error
	GetTransactions(filter TransactionFilter, page, limit int) ([]*PaymentTransaction, int64, error)
}
