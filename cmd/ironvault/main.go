package main

import (
	"flag"
	"fmt"
	"os"

	pkgversion "github.com/apsislabs/iron-vault/pkg/version"
)

func main() {
	if len(os.Args) < 2 {
		listCommand(os.Args[1:])
		return
	}

	command := os.Args[1]

	switch command {
	case "c", "create":
		createCommand(os.Args[2:])
	case "r", "read":
		readCommand(os.Args[2:])
	case "a", "add":
		addCommand(os.Args[2:])
	case "l", "list":
		listCommand(os.Args[2:])
	case "version":
		fmt.Printf("ironvault version %s\n", pkgversion.String())
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`ironvault - a local, password-protected secrets vault

USAGE:
    ironvault <command> [options]

COMMANDS:
    c, create   Create a new vault
    r, read     Open the vault and print a record by name or uuid
    a, add      Open the vault and add a login record
    l, list     Open the vault and list record names/uuids (default)
    version     Print version information
    help        Show this help message

Run 'ironvault <command> --help' for more information on a command.

EXAMPLES:
    ironvault create --path /tmp/myvault
    ironvault add --name GitHub --username alice
    ironvault list
    ironvault read --name GitHub

PROJECT:
    IronVault - a local, password-protected secrets vault`)
}

// commonFlags registers the flags every subcommand shares.
func commonFlags(fs *flag.FlagSet) (path, logLevel, logFormat *string) {
	path = fs.String("path", "", "Explicit vault directory (overrides IRONVAULT_DATABASE and the default)")
	logLevel = fs.String("log-level", "warn", "Log level: debug, info, warn, error, silent")
	logFormat = fs.String("log-format", "text", "Log format: text or json")
	return
}
