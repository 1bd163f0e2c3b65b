package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/iov-one/remit"
	"github.com/iov-one/remit/client"
	remitd "github.com/iov-one/remit/cmd/remitd/app"
	"github.com/iov-one/remit/commands"
	"github.com/iov-one/remit/commands/server"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	flagHome = "home"
	varHome  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".remit")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("remitd")
	fmt.Println("          Custodial remittance escrow node")
	fmt.Println("")
	fmt.Println("help        Print this message")
	fmt.Println("init        Initialize app options in genesis file")
	fmt.Println("start       Run the abci server")
	fmt.Println("keys        Generate or derive a key pair")
	fmt.Println("commitment  Compute the commitment key of a remittance")
	fmt.Println("query       Read remittance state from a running node")
	fmt.Println("version     Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$HOME/.remit")`)
}

func main() {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "remit")

	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	var err error
	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(remitd.GenInitOptions, logger, *varHome, rest)
	case "start":
		err = server.StartCmd(remitd.GenerateApp, logger, *varHome, rest)
	case "keys":
		err = commands.KeysCmd(os.Stdout, rest)
	case "commitment":
		err = commands.CommitmentCmd(os.Stdout, rest)
	case "query":
		err = commands.QueryCmd(client.NewHTTPConnection, os.Stdout, rest)
	case "version":
		fmt.Println(remit.Version())
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}
