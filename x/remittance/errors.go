package remittance

import "github.com/iov-one/remit/errors"

// Codes 1100 to 1120 are reserved for this extension.
var (
	ErrInsufficientDeposit = errors.Register(1100, "insufficient deposit")
	ErrDurationTooShort    = errors.Register(1101, "duration too short")
	ErrDurationTooLong     = errors.Register(1102, "duration too long")
	ErrDuplicateCommitment = errors.Register(1103, "duplicate commitment")
	ErrNoSuchEscrow        = errors.Register(1104, "no such escrow")
	ErrExpired             = errors.Register(1105, "expired")
	ErrNotYetExpired       = errors.Register(1106, "not yet expired")
	ErrNotSender           = errors.Register(1107, "not sender")
	ErrNotOwner            = errors.Register(1108, "not owner")
	ErrNotNominated        = errors.Register(1109, "not nominated")
	ErrContractPaused      = errors.Register(1110, "contract paused")
	ErrContractKilled      = errors.Register(1111, "contract killed")
	ErrAlreadyKilled       = errors.Register(1112, "already killed")
	ErrNotPaused           = errors.Register(1113, "not paused")
)
