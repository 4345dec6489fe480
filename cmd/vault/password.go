package main

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// passwordEnv lets scripts supply the master password non-interactively.
const passwordEnv = "VAULT_PASSWORD"

var (
	errEmptyPassword = errors.New("master password must not be empty")
	errNoPassword    = errors.New("no terminal to prompt for the master password; set " + passwordEnv)
)

// readPassword takes the password from VAULT_PASSWORD or prompts on the
// terminal without echo. Stdin stays free for document and note content.
func readPassword(cmd *cobra.Command) (string, error) {
	if pw, ok := os.LookupEnv(passwordEnv); ok {
		return nonEmpty(pw)
	}

	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", errNoPassword
	}

	fmt.Fprint(cmd.ErrOrStderr(), "Enter master password: ")
	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	return nonEmpty(string(pw))
}

func nonEmpty(pw string) (string, error) {
	if pw == "" {
		return "", errEmptyPassword
	}
	return pw, nil
}
