// Command epubextract extracts the readable text of an EPUB archive as JSON
// and pairs it with translations for bilingual reading.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
