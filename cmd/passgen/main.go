// Command passgen generates one password with the example settings and prints
// it along with its entropy.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

var exampleOptions = crypto.GeneratorOptions{
	Length:    20,
	Uppercase: true,
	Lowercase: true,
	Numbers:   true,
	Symbols:   true,
	Exclude:   "lI1O0",
}

func run(w io.Writer, opts crypto.GeneratorOptions) error {
	password, entropy, err := crypto.Generate(opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Generated Secure Password: %s\n", password)
	fmt.Fprintf(w, "Password Entropy: %.2f bits\n", entropy)
	return nil
}

func main() {
	if err := run(os.Stdout, exampleOptions); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
