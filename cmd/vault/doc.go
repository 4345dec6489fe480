package main

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/models"
)

func newDocCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Manage encrypted documents",
	}

	cmd.AddCommand(
		newDocPutCmd(c),
		newDocGetCmd(c),
		newDocListCmd(c),
		newDocDeleteCmd(c),
	)

	return cmd
}

func newDocPutCmd(c *cli) *cobra.Command {
	var (
		name      string
		mediaType string
	)

	cmd := &cobra.Command{
		Use:   "put <file|->",
		Short: "Encrypt a file into the vault",
		Args:  cobra.ExactArgs(1),
		RunE: c.vaultRunE(func(cmd *cobra.Command, args []string, vault service.VaultService) error {
			src := args[0]

			var (
				payload []byte
				err     error
			)
			if src == "-" {
				payload, err = io.ReadAll(cmd.InOrStdin())
			} else {
				payload, err = os.ReadFile(src)
			}
			if err != nil {
				return fmt.Errorf("read %s: %w", src, err)
			}

			if name == "" {
				if src == "-" {
					return fmt.Errorf("--name is required when reading stdin")
				}
				name = filepath.Base(src)
			}
			if mediaType == "" {
				mediaType = detectMediaType(name)
			}

			if err = vault.SaveDocument(cmd.Context(), name, payload, mediaType); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%s)\n", name, mediaType)
			return nil
		}),
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Document name (defaults to the file name)")
	cmd.Flags().StringVarP(&mediaType, "type", "t", "", "Media type (detected from the name when empty)")

	return cmd
}

func newDocGetCmd(c *cli) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Decrypt a document to stdout or a file",
		Args:  cobra.ExactArgs(1),
		RunE: c.vaultRunE(func(cmd *cobra.Command, args []string, vault service.VaultService) error {
			doc, err := vault.GetDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(doc.Payload)
				return err
			}
			return os.WriteFile(output, doc.Payload, 0o600)
		}),
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the document to this file")

	return cmd
}

func newDocListCmd(c *cli) *cobra.Command {
	var long bool

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List document names",
		Args:    cobra.NoArgs,
		RunE: c.vaultRunE(func(cmd *cobra.Command, args []string, vault service.VaultService) error {
			if !long {
				names, err := vault.ListDocuments(cmd.Context())
				if err != nil {
					return err
				}
				for _, n := range names {
					fmt.Fprintln(cmd.OutOrStdout(), n)
				}
				return nil
			}

			entries, err := vault.ListDocumentEntries(cmd.Context())
			if err != nil {
				return err
			}
			return printEntries(cmd.OutOrStdout(), entries)
		}),
	}

	cmd.Flags().BoolVarP(&long, "long", "l", false, "Show which backends hold each document")

	return cmd
}

func newDocDeleteCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"delete"},
		Short:   "Delete a document from both backends",
		Args:    cobra.ExactArgs(1),
		RunE: c.vaultRunE(func(cmd *cobra.Command, args []string, vault service.VaultService) error {
			return vault.DeleteDocument(cmd.Context(), args[0])
		}),
	}
}

func printEntries(w io.Writer, entries []models.DocumentEntry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKEY-VALUE\tFILE\tSTATUS")
	for _, e := range entries {
		status := "ok"
		if e.Diverged() {
			status = "diverged"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, yesNo(e.InKeyValue), yesNo(e.InFileSystem), status)
	}
	return tw.Flush()
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func detectMediaType(name string) string {
	if t := mime.TypeByExtension(filepath.Ext(name)); t != "" {
		return t
	}
	return models.DefaultMediaType
}
