// Command noteboardctl seeds accounts out of band. The HTTP service has no
// registration endpoint; operators create accounts with this tool.
//
// Usage:
//
//	noteboardctl -d <dsn> -email alice@example.com -firstname Alice \
//	    -lastname Smith -username alice -role admin
//
// The password is prompted on the terminal, a fresh 32-byte salt is
// generated, and the account plus its credential row are inserted in a
// single transaction.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"syscall"

	"golang.org/x/term"

	"noteboard/internal/common"
	"noteboard/internal/dbx"
	"noteboard/internal/server/auth"
	"noteboard/internal/server/models"
	"noteboard/internal/server/repositories/repomanager"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func promptPassword() ([]byte, error) {
	fmt.Print("Password: ")
	pw, err := readPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return nil, err
	}
	if len(pw) == 0 {
		return nil, fmt.Errorf("password must not be empty")
	}
	return pw, nil
}

func run(ctx context.Context) error {
	var (
		dsn       = flag.String("d", os.Getenv("NOTEBOARD_DSN"), "database DSN")
		email     = flag.String("email", "", "account email (required)")
		firstname = flag.String("firstname", "", "first name")
		lastname  = flag.String("lastname", "", "last name")
		phone     = flag.String("phone", "", "phone number")
		username  = flag.String("username", "", "username")
		role      = flag.String("role", "user", "account role")
	)
	flag.Parse()

	if *dsn == "" || *email == "" {
		flag.Usage()
		return fmt.Errorf("both -d (or NOTEBOARD_DSN) and -email are required")
	}

	password, err := promptPassword()
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		return fmt.Errorf("db open error: %w", err)
	}
	defer db.Close()

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	salt := common.GenerateRandByteArray(32)
	cred := &models.Credential{
		SaltedHash: auth.DeriveVerifier(password, salt),
		Salt:       salt,
	}
	account := &models.Account{
		Email:     *email,
		FirstName: *firstname,
		LastName:  *lastname,
		Phone:     *phone,
		Username:  *username,
		Role:      *role,
	}

	// the account row and its credential row land together or not at all
	if err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := rm.Accounts(tx).Create(ctx, account, cred)
		return err
	}); err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	fmt.Printf("created account %s (%s)\n", account.ID, account.Email)
	return nil
}

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}
