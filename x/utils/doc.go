/*
Package utils provides decorators shared by all handlers: savepoints that
roll back failed transactions, panic recovery, logging and tagging of
delivered messages.
*/
package utils
