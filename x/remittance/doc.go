/*
Package remittance implements a custodial escrow of funds for a single
recipient.

A sender locks funds under a commitment key derived from the recipient
address, a secret shared off-band with the recipient and the identity of the
chain. The recipient claims the funds by revealing the secret before the
escrow expires. Once expired, the sender can cancel the escrow and take the
funds back.

Every new escrow is charged a fee that accumulates until the owner withdraws
it. The owner can pause the service, and a paused service can be killed. A
killed service does not accept new escrows but allows recipients and senders
to recover locked funds.

Deposited funds are held by a custody account that is unique for each chain.
All value transfers are done using the cash extension.
*/
package remittance
