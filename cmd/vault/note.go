package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-doc-vault/internal/service"
)

func newNoteCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage encrypted notes",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "put <title> [content...]",
			Short: "Save a note; content is read from stdin when omitted",
			Args:  cobra.MinimumNArgs(1),
			RunE: c.vaultRunE(func(cmd *cobra.Command, args []string, vault service.VaultService) error {
				content := strings.Join(args[1:], " ")
				if len(args) == 1 {
					b, err := io.ReadAll(cmd.InOrStdin())
					if err != nil {
						return fmt.Errorf("read note content: %w", err)
					}
					content = string(b)
				}
				return vault.SaveNote(cmd.Context(), args[0], content)
			}),
		},
		&cobra.Command{
			Use:   "get <title>",
			Short: "Print a note",
			Args:  cobra.ExactArgs(1),
			RunE: c.vaultRunE(func(cmd *cobra.Command, args []string, vault service.VaultService) error {
				content, err := vault.GetNote(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), content)
				return err
			}),
		},
		&cobra.Command{
			Use:     "ls",
			Aliases: []string{"list"},
			Short:   "List note titles",
			Args:    cobra.NoArgs,
			RunE: c.vaultRunE(func(cmd *cobra.Command, args []string, vault service.VaultService) error {
				titles, err := vault.ListNotes(cmd.Context())
				if err != nil {
					return err
				}
				for _, t := range titles {
					fmt.Fprintln(cmd.OutOrStdout(), t)
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:     "rm <title>",
			Aliases: []string{"delete"},
			Short:   "Delete a note",
			Args:    cobra.ExactArgs(1),
			RunE: c.vaultRunE(func(cmd *cobra.Command, args []string, vault service.VaultService) error {
				return vault.DeleteNote(cmd.Context(), args[0])
			}),
		},
	)

	return cmd
}
