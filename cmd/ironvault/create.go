package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/apsislabs/iron-vault/pkg/vault"
)

func createCommand(args []string) {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	path, logLevel, logFormat := commonFlags(fs)
	fs.Usage = func() {
		fmt.Println(`USAGE: ironvault create [options]

Create a new vault, prompting for a master passphrase.

OPTIONS:`)
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	passphrase, err := promptPassphrase("Master passphrase: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ironvault: %v\n", err)
		os.Exit(1)
	}

	logger := buildLogger(*logLevel, *logFormat)
	v, err := vault.Create(passphrase, *path, vault.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ironvault: could not create vault: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Vault created at %s\n", v.Path())
}
