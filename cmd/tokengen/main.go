// Package main prints a signed actor token for calling the services when
// audit.jwt_secret is configured.
//
//	EASYBANK_AUDIT_JWT_SECRET=... tokengen -subject teller-7 -ttl 1h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/easybank/easybank-services/internal/audit"
)

func main() {
	subject := flag.String("subject", "", "actor recorded in created_by/updated_by (max 20 characters)")
	ttl := flag.Duration("ttl", time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("EASYBANK_AUDIT_JWT_SECRET")
	if secret == "" {
		fmt.Fprintln(os.Stderr, "EASYBANK_AUDIT_JWT_SECRET must be set")
		os.Exit(2)
	}

	token, err := audit.IssueToken(secret, audit.Actor(*subject), *ttl, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token for %q: %v\n", *subject, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
