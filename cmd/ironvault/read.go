package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/apsislabs/iron-vault/pkg/record"
	"github.com/apsislabs/iron-vault/pkg/vault"
)

func readCommand(args []string) {
	fs := flag.NewFlagSet("read", flag.ExitOnError)
	path, logLevel, logFormat := commonFlags(fs)
	name := fs.String("name", "", "Record name to look up")
	uuidFlag := fs.String("uuid", "", "Record UUID to look up")
	fs.Usage = func() {
		fmt.Println(`USAGE: ironvault read [--name NAME | --uuid UUID] [options]

Open the vault and print a matching record.

OPTIONS:`)
		fs.PrintDefaults()
	}
	_ = fs.Parse(args)

	if *name == "" && *uuidFlag == "" {
		fmt.Fprintln(os.Stderr, "ironvault: one of --name or --uuid is required")
		fs.Usage()
		os.Exit(1)
	}

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

	var matches []*record.Record
	if *uuidFlag != "" {
		if r, ok := v.GetRecordByUUID(*uuidFlag); ok {
			matches = []*record.Record{r}
		}
	} else {
		matches = v.GetRecordsByName(*name)
	}

	if len(matches) == 0 {
		fmt.Fprintln(os.Stderr, "ironvault: no matching record")
		os.Exit(1)
	}

	for _, r := range matches {
		fmt.Printf("%s\t%s\tusername=%s\n", r.UUID, r.Name, r.Username())
	}
}
