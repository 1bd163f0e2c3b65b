/*
Package x contains the extensions of the remittance node.

Extensions implement common functionality (Handler, Decorator,
etc.) and are combined together by the app package to construct
the application.

Note that protobuf types in exported code will be prefixed by
the package, so follow standard go naming conventions and avoid
stutter. Use eg. `remittance.CreateMsg` in place of
`remittance.CreateRemittanceMsg`.
*/
package x
