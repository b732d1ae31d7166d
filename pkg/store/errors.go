package store

import "errors"

var (
	ErrTransactionAlreadyActive = errors.New("txkv: transaction already active")
	ErrNoActiveTransaction      = errors.New("txkv: no active transaction")
)
