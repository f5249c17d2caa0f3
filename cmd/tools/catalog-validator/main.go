// cmd/tools/catalog-validator/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Mattthebillionaire/lead-audit-tool--Kortex-labs/pkg/catalog"
)

func main() {
	path := flag.String("path", "configs/catalog.json", "Path to catalog file")
	flag.Parse()

	file, err := catalog.Load(*path)
	if err != nil {
		fmt.Printf("Catalog validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Catalog validation passed (version %s, %d questions).\n", file.Version, len(file.Questions))
	for _, q := range file.Questions {
		fmt.Printf("  - %s: %d options\n", q.ID, len(q.Options))
	}
}
