// Retint - palette-matched colour scheme translation
//
// Retint rewrites nested JSON colour schemes so that every colour is
// replaced by the nearest colour of a user-supplied palette.
package main

import (
	"github.com/hmarchant/retint/internal/cli"
)

func main() {
	cli.Execute()
}
