/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
Each bucket stores protobuf encoded models of a single type, keyed
by an arbitrary primary key. All data is validated before being
written, and a bucket can be exposed to abci queries by registering
it with a query router.
*/
package orm
