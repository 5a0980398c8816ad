// Command extract runs the field extraction core over text from a file or
// stdin and prints the result JSON. Useful for tuning the heuristics
// against real OCR dumps without a database or an OCR key.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"github.com/billsnap/billsnap/internal/extraction"
)

func main() {
	pretty := flag.Bool("pretty", false, "indent the output JSON")
	flag.Parse()

	var (
		raw []byte
		err error
	)
	if flag.NArg() > 0 {
		raw, err = os.ReadFile(flag.Arg(0))
	} else {
		raw, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}

	result := extraction.Extract(string(raw))

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		log.Fatalf("encoding result: %v", err)
	}
}
