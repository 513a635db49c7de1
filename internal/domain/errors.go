package domain

import "errors"

var (
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrRegistrationNotFound  = errors.New("registration not found")
	ErrRefundNotFound        = errors.New("refund not found")
	ErrStatusConflict        = errors.New("transaction is not in the expected status")
	ErrProviderNotConfigured = errors.New("no active configuration for payment provider")
	ErrUnknownProvider       = errors.New("unknown payment provider")
	ErrMissingSignature      = errors.New("missing webhook signature")
	ErrInvalidSignature      = errors.New("invalid webhook signature")
	ErrRefundNotAllowed      = errors.New("transaction is not refundable")
	ErrRefundExceedsAmount   = errors.New("refund amount exceeds transaction amount")
)
