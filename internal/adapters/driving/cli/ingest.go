package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var ingestName string

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Ingest a document into the corpus",
	Long: `Reads a plain text, Markdown, or CSV file, classifies it, and adds
it to the document set. With no argument, reads from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestName, "name", "", "document name for stdin input")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	var name, content string
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
		name = filepath.Base(args[0])
		content = string(data)
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		name = ingestName
		content = string(data)
	}

	doc, err := ingestService.Ingest(context.Background(), name, content)
	if err != nil {
		return fmt.Errorf("failed to ingest: %w", err)
	}

	cmd.Printf("Ingested %s\n", doc.Name)
	cmd.Printf("  ID:   %s\n", doc.ID)
	cmd.Printf("  Kind: %s\n", doc.Kind)
	if len(doc.TableHeaders) > 0 {
		cmd.Printf("  Columns: %d\n", len(doc.TableHeaders))
	}
	return nil
}
