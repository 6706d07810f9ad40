package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/apsislabs/iron-vault/pkg/record"
	"github.com/apsislabs/iron-vault/pkg/vault"
)

func addCommand(args []string) {
	fs := flag.NewFlagSet("add", flag.ExitOnError)
	path, logLevel, logFormat := commonFlags(fs)
	name := fs.String("name", "", "Record name (required)")
	username := fs.String("username", "", "Username entry")
	fs.Usage = func() {
		fmt.Println(`USAGE: ironvault add --name NAME [options]

Open the vault and add a login record.

OPTIONS:`)
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if *name == "" {
		fmt.Fprintln(os.Stderr, "ironvault: --name is required")
		fs.Usage()
		os.Exit(1)
	}

	passphrase, err := promptPassphrase("Master passphrase: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ironvault: %v\n", err)
		os.Exit(1)
	}
	password, err := promptPassphrase("Password to store: ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "ironvault: %v\n", err)
		os.Exit(1)
	}

	logger := buildLogger(*logLevel, *logFormat)
	v, err := vault.Open(passphrase, *path, vault.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ironvault: could not open vault: %v\n", err)
		os.Exit(1)
	}

	r := record.NewLogin(*name, *username, string(password))
	if err := v.AddRecord(r); err != nil {
		fmt.Fprintf(os.Stderr, "ironvault: could not add record: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Added %q (%s)\n", r.Name, r.UUID)
}
