/*
Package commands contains the sub-commands of the remitd binary that do not
need a running node. The server sub package holds the commands that set up
and run the abci application.
*/
package commands
