// Command seedctl applies a YAML desired-state seed file directly against
// the datastore, without going through the HTTP surface. Re-running the
// same file is safe; every entry is an idempotent upsert.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/walletworks/portfolio/internal/portfolio/seed"
	"github.com/walletworks/portfolio/internal/portfolio/service"
	"github.com/walletworks/portfolio/internal/portfolio/store/drivers/sqlite"
)

func main() {
	dbFile := flag.String("db", "portfolio.db", "path to the SQLite database file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: seedctl [-db portfolio.db] <seed-file.yaml>\n")
		os.Exit(2)
	}

	if err := run(*dbFile, flag.Arg(0)); err != nil {
		log.Fatal(err)
	}
}

// run keeps the fallible work out of main so the store's deferred Close
// runs on every exit path.
func run(dbFile, seedPath string) error {
	desired, err := seed.Load(seedPath)
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}

	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", dbFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.ApplyMigrations(); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	reconciler := &service.ReconcileService{Store: db}
	summary, err := reconciler.Reconcile(context.Background(), desired)
	if err != nil {
		return fmt.Errorf("reconciliation failed: %w", err)
	}

	fmt.Printf("created=%d updated=%d failed=%d\n", summary.Created, summary.Updated, summary.Failed)
	for _, failure := range summary.Failures {
		fmt.Fprintf(os.Stderr, "  %s\n", failure)
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d seed entries failed", summary.Failed)
	}
	return nil
}
