package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/apsislabs/iron-vault/pkg/vault"
)

func listCommand(args []string) {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	path, logLevel, logFormat := commonFlags(fs)
	fs.Usage = func() {
		fmt.Println(`USAGE: ironvault list [options]

Open the vault and list every record's name and uuid.

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
	v, err := vault.Open(passphrase, *path, vault.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ironvault: could not open vault: %v\n", err)
		os.Exit(1)
	}

	records := v.FetchRecords()
	if len(records) == 0 {
		fmt.Println("(no records)")
		return
	}
	for _, r := range records {
		fmt.Printf("%s\t%s\n", r.UUID, r.Name)
	}
}
