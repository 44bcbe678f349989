package models

import "errors"

var (
	ErrGymNotFound        = errors.New("gym not found")
	ErrGymInactive        = errors.New("gym is not active")
	ErrUserNotFound       = errors.New("user not found")
	ErrAlreadyMember      = errors.New("user is already a member of this gym")
	ErrMembershipNotFound = errors.New("membership not found")
)

// ErrTransactionMismatch means a transaction id is already in the ledger for another membership.
var ErrTransactionMismatch = errors.New("transaction already applied to another membership")
