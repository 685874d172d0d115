// Command ocrgrid reconstructs tables from scanned images and OCR output.
package main

import "github.com/tsawler/ocrgrid/internal/cli"

func main() {
	cli.Execute()
}
