/*
Package cash defines a simple implementation of balances of the native
asset and of sending them between accounts.

There is no logic in the asset, except that the balance of any account
may not go below zero. Thus, this implementation is referred to as cash.
Simple and safe.

Other extensions move funds with the Controller. Any failure leaves
all balances unchanged.
*/
package cash
