package remittance

import (
	"fmt"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/coin"
	"github.com/iov-one/remit/errors"
	"github.com/iov-one/remit/gconf"
	"github.com/iov-one/remit/orm"
	"github.com/iov-one/remit/x/cash"
)

// Event kinds emitted by the controller.
const (
	EventCreated          = "remittance_created"
	EventWithdrawn        = "remittance_withdrawn"
	EventCancelled        = "remittance_cancelled"
	EventFeesWithdrawn    = "fees_withdrawn"
	EventFeeChanged       = "fee_changed"
	EventOwnerNominated   = "owner_nominated"
	EventOwnershipClaimed = "ownership_claimed"
	EventPaused           = "paused"
	EventUnpaused         = "unpaused"
	EventKilled           = "killed"
)

// Controller implements all state transitions of the service. Callers are
// expected to be authenticated already.
//
// Funds are moved before the registry is modified, so that a failed transfer
// leaves the registry untouched. Handlers run inside of a savepoint, which
// discards partial writes of a failed transition.
type Controller struct {
	records orm.ModelBucket
	states  orm.ModelBucket
	bank    cash.CoinMover
}

// NewController returns a controller moving funds with given mover.
func NewController(bank cash.CoinMover) Controller {
	return Controller{
		records: NewBucket(),
		states:  NewStateBucket(),
		bank:    bank,
	}
}

// State returns the lifecycle state. ErrState is returned if the service was
// never initialized.
func (c Controller) State(db remit.ReadOnlyKVStore) (*State, error) {
	var s State
	switch err := c.states.One(db, StateKey, &s); {
	case err == nil:
		return &s, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrap(errors.ErrState, "remittance not initialized")
	default:
		return nil, err
	}
}

// SetState stores the lifecycle state.
func (c Controller) SetState(db remit.KVStore, s *State) error {
	return c.states.Put(db, StateKey, s)
}

// Config returns the duration bounds, falling back to defaults if none were
// configured.
func (c Controller) Config(db remit.ReadOnlyKVStore) (*Configuration, error) {
	var conf Configuration
	switch err := gconf.Load(db, "remittance", &conf); {
	case err == nil:
		return &conf, nil
	case errors.ErrNotFound.Is(err):
		conf = DefaultConfiguration()
		return &conf, nil
	default:
		return nil, errors.Wrap(err, "load configuration")
	}
}

// Remittance returns the escrow stored under the commitment.
func (c Controller) Remittance(db remit.ReadOnlyKVStore, commitment []byte) (*Remittance, error) {
	var r Remittance
	switch err := c.records.One(db, commitment, &r); {
	case err == nil:
		return &r, nil
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrNoSuchEscrow, "commitment %X", commitment)
	default:
		return nil, err
	}
}

// Create locks the deposit of the sender under the commitment. The fee is
// added to the accrued fees and the rest is payable to the recipient.
func (c Controller) Create(
	ctx remit.Context,
	db remit.KVStore,
	events remit.EventSink,
	sender remit.Address,
	commitment []byte,
	duration remit.UnixDuration,
	deposit coin.Amount,
) (*Remittance, error) {
	state, err := c.State(db)
	if err != nil {
		return nil, err
	}
	if err := state.CanCreate(); err != nil {
		return nil, err
	}
	fee, net, err := FeeFor(deposit, state.Fee)
	if err != nil {
		return nil, err
	}
	conf, err := c.Config(db)
	if err != nil {
		return nil, err
	}
	if err := conf.Check(duration); err != nil {
		return nil, err
	}
	switch ok, err := c.records.Has(db, commitment); {
	case err != nil:
		return nil, err
	case ok:
		return nil, errors.Wrapf(ErrDuplicateCommitment, "commitment %X", commitment)
	}

	expiration, err := remit.MustBlockNow(ctx).AddDuration(duration)
	if err != nil {
		return nil, errors.Wrap(err, "expiration")
	}
	if state.AccruedFees, err = state.AccruedFees.Add(fee); err != nil {
		return nil, errors.Wrap(err, "accrued fees")
	}

	custody := CustodyAddress(remit.GetChainID(ctx))
	if err := c.bank.MoveCoins(db, sender, custody, deposit); err != nil {
		return nil, errors.Wrap(err, "deposit")
	}

	rem := &Remittance{
		Sender:     sender,
		Amount:     net,
		Expiration: expiration,
	}
	if err := c.records.Put(db, commitment, rem); err != nil {
		return nil, errors.Wrap(err, "cannot store remittance")
	}
	if err := c.SetState(db, state); err != nil {
		return nil, errors.Wrap(err, "cannot store state")
	}

	events.Emit(remit.NewEvent(EventCreated,
		"commitment", hexKey(commitment),
		"sender", sender,
		"amount", net,
		"fee", fee,
		"expiration", int64(expiration),
	))
	return rem, nil
}

// Withdraw pays the escrow locked for the recipient with the given secret.
func (c Controller) Withdraw(
	ctx remit.Context,
	db remit.KVStore,
	events remit.EventSink,
	recipient remit.Address,
	secret []byte,
) (*Remittance, error) {
	state, err := c.State(db)
	if err != nil {
		return nil, err
	}
	chainID := remit.GetChainID(ctx)
	commitment := CommitmentFor(chainID, recipient, secret)
	rem, err := c.Remittance(db, commitment)
	if err != nil {
		return nil, err
	}
	if err := state.CanSettle(); err != nil {
		return nil, err
	}
	if remit.IsExpired(ctx, rem.Expiration) {
		return nil, errors.Wrapf(ErrExpired, "expired at %s", rem.Expiration)
	}

	if err := c.bank.MoveCoins(db, CustodyAddress(chainID), recipient, rem.Amount); err != nil {
		return nil, errors.Wrap(err, "payout")
	}
	if err := c.records.Delete(db, commitment); err != nil {
		return nil, err
	}

	events.Emit(remit.NewEvent(EventWithdrawn,
		"commitment", hexKey(commitment),
		"recipient", recipient,
		"amount", rem.Amount,
	))
	return rem, nil
}

// Cancel returns the funds of an expired escrow to its sender.
func (c Controller) Cancel(
	ctx remit.Context,
	db remit.KVStore,
	events remit.EventSink,
	caller remit.Address,
	commitment []byte,
) (*Remittance, error) {
	state, err := c.State(db)
	if err != nil {
		return nil, err
	}
	rem, err := c.Remittance(db, commitment)
	if err != nil {
		return nil, err
	}
	if !rem.Sender.Equals(caller) {
		return nil, errors.Wrapf(ErrNotSender, "caller %s", caller)
	}
	if err := state.CanSettle(); err != nil {
		return nil, err
	}
	if !remit.IsExpired(ctx, rem.Expiration) {
		return nil, errors.Wrapf(ErrNotYetExpired, "expires at %s", rem.Expiration)
	}

	custody := CustodyAddress(remit.GetChainID(ctx))
	if err := c.bank.MoveCoins(db, custody, rem.Sender, rem.Amount); err != nil {
		return nil, errors.Wrap(err, "refund")
	}
	if err := c.records.Delete(db, commitment); err != nil {
		return nil, err
	}

	events.Emit(remit.NewEvent(EventCancelled,
		"commitment", hexKey(commitment),
		"sender", rem.Sender,
		"amount", rem.Amount,
	))
	return rem, nil
}

// WithdrawFees sends all accrued fees to the owner. Withdrawing nothing is
// allowed and does not move any funds.
func (c Controller) WithdrawFees(
	ctx remit.Context,
	db remit.KVStore,
	events remit.EventSink,
	caller remit.Address,
) (coin.Amount, error) {
	state, err := c.State(db)
	if err != nil {
		return 0, err
	}
	if err := state.RequireOwner(caller); err != nil {
		return 0, err
	}

	amount := state.AccruedFees
	if amount.IsPositive() {
		custody := CustodyAddress(remit.GetChainID(ctx))
		if err := c.bank.MoveCoins(db, custody, state.Owner, amount); err != nil {
			return 0, errors.Wrap(err, "fees payout")
		}
	}
	state.AccruedFees = 0
	if err := c.SetState(db, state); err != nil {
		return 0, err
	}

	events.Emit(remit.NewEvent(EventFeesWithdrawn,
		"owner", state.Owner,
		"amount", amount,
	))
	return amount, nil
}

// SetFee changes the fee charged for escrows created from now on.
func (c Controller) SetFee(db remit.KVStore, events remit.EventSink, caller remit.Address, fee coin.Amount) error {
	return c.administer(db, events, caller, func(s *State) (remit.Event, error) {
		if err := fee.Validate(); err != nil {
			return remit.Event{}, errors.Wrap(err, "fee")
		}
		s.Fee = fee
		return remit.NewEvent(EventFeeChanged, "owner", s.Owner, "fee", fee), nil
	})
}

// NominateOwner records the candidate for the ownership, replacing any
// previous nomination.
func (c Controller) NominateOwner(db remit.KVStore, events remit.EventSink, caller, candidate remit.Address) error {
	return c.administer(db, events, caller, func(s *State) (remit.Event, error) {
		s.Nominate(candidate)
		return remit.NewEvent(EventOwnerNominated, "owner", s.Owner, "candidate", s.NominatedOwner), nil
	})
}

// ClaimOwnership makes the nominated caller the owner.
func (c Controller) ClaimOwnership(db remit.KVStore, events remit.EventSink, caller remit.Address) error {
	state, err := c.State(db)
	if err != nil {
		return err
	}
	previous := state.Owner
	if err := state.ClaimOwnership(caller); err != nil {
		return err
	}
	if err := c.SetState(db, state); err != nil {
		return err
	}
	events.Emit(remit.NewEvent(EventOwnershipClaimed, "previous", previous, "owner", state.Owner))
	return nil
}

// Pause freezes the service.
func (c Controller) Pause(db remit.KVStore, events remit.EventSink, caller remit.Address) error {
	return c.administer(db, events, caller, func(s *State) (remit.Event, error) {
		return remit.NewEvent(EventPaused, "owner", s.Owner), s.Pause()
	})
}

// Unpause reactivates a paused service.
func (c Controller) Unpause(db remit.KVStore, events remit.EventSink, caller remit.Address) error {
	return c.administer(db, events, caller, func(s *State) (remit.Event, error) {
		return remit.NewEvent(EventUnpaused, "owner", s.Owner), s.Unpause()
	})
}

// Kill terminates a paused service.
func (c Controller) Kill(db remit.KVStore, events remit.EventSink, caller remit.Address) error {
	return c.administer(db, events, caller, func(s *State) (remit.Event, error) {
		return remit.NewEvent(EventKilled, "owner", s.Owner), s.Kill()
	})
}

// administer runs an owner-only modification of the state. The event is
// emitted only if the modification succeeds.
func (c Controller) administer(db remit.KVStore, events remit.EventSink, caller remit.Address, fn func(*State) (remit.Event, error)) error {
	state, err := c.State(db)
	if err != nil {
		return err
	}
	if err := state.RequireOwner(caller); err != nil {
		return err
	}
	ev, err := fn(state)
	if err != nil {
		return err
	}
	if err := c.SetState(db, state); err != nil {
		return err
	}
	events.Emit(ev)
	return nil
}

func hexKey(b []byte) string {
	return fmt.Sprintf("%X", b)
}
