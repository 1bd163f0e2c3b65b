package remittance

import (
	"github.com/iov-one/remit"
	"github.com/iov-one/remit/errors"
)

// Phase is the administrative phase of the service.
type Phase int

const (
	Active Phase = iota
	Paused
	Killed
)

func (p Phase) String() string {
	switch p {
	case Active:
		return "active"
	case Paused:
		return "paused"
	case Killed:
		return "killed"
	default:
		return "unknown"
	}
}

// Phase returns the current phase. Killed implies paused.
func (s *State) Phase() Phase {
	switch {
	case s.Killed:
		return Killed
	case s.Paused:
		return Paused
	default:
		return Active
	}
}

// RequireOwner returns ErrNotOwner unless the caller is the current owner.
func (s *State) RequireOwner(caller remit.Address) error {
	if caller == nil || !s.Owner.Equals(caller) {
		return errors.Wrapf(ErrNotOwner, "caller %s", caller)
	}
	return nil
}

// CanCreate returns an error unless new escrows are accepted.
func (s *State) CanCreate() error {
	switch s.Phase() {
	case Paused:
		return ErrContractPaused
	case Killed:
		return ErrContractKilled
	}
	return nil
}

// CanSettle returns an error unless escrows can be claimed or cancelled. This
// is allowed while active and after the service was killed, but not while it
// is only paused.
func (s *State) CanSettle() error {
	if s.Phase() == Paused {
		return ErrContractPaused
	}
	return nil
}

// Pause moves an active service into the paused phase.
func (s *State) Pause() error {
	switch s.Phase() {
	case Killed:
		return ErrAlreadyKilled
	case Paused:
		return errors.Wrap(ErrContractPaused, "already paused")
	}
	s.Paused = true
	return nil
}

// Unpause moves a paused service back to the active phase.
func (s *State) Unpause() error {
	switch s.Phase() {
	case Killed:
		return ErrAlreadyKilled
	case Active:
		return ErrNotPaused
	}
	s.Paused = false
	return nil
}

// Kill terminates a paused service. This cannot be undone.
func (s *State) Kill() error {
	switch s.Phase() {
	case Killed:
		return ErrAlreadyKilled
	case Active:
		return ErrNotPaused
	}
	s.Killed = true
	return nil
}

// Nominate records the candidate for the ownership. An empty candidate
// clears the nomination.
func (s *State) Nominate(candidate remit.Address) {
	if len(candidate) == 0 {
		s.NominatedOwner = nil
		return
	}
	s.NominatedOwner = candidate.Clone()
}

// ClaimOwnership promotes the nominated candidate to be the owner.
func (s *State) ClaimOwnership(caller remit.Address) error {
	if len(s.NominatedOwner) == 0 || !s.NominatedOwner.Equals(caller) {
		return errors.Wrapf(ErrNotNominated, "caller %s", caller)
	}
	s.Owner = s.NominatedOwner
	s.NominatedOwner = nil
	return nil
}
