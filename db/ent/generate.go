package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Run with `go generate ./...` (or `go run db/ent/generate.go`) to emit the
// client into gen/ent. Generated code is not committed.
func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/harshmriduhash/iq-procure-assist/gen/ent",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
