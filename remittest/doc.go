/*
Package remittest provides test doubles and helpers for testing
extensions: authenticators, mock handlers and decorators, transactions
and random keys.
*/
package remittest
