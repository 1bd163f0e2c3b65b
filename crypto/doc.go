/*
Package crypto provides the ed25519 keys used to sign transactions and
the conditions that represent them.

Keys can be generated randomly, built from a seed or derived from a
master seed with a SLIP-10 derivation path.
*/
package crypto
