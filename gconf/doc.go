/*
Package gconf implements a configuration store intended to be used as a global,
in-database configuration.

Each extension keeps a single configuration object stored under a package
specific key. Configuration is loaded from the genesis file "conf" section
and can be queried by clients.
*/
package gconf
