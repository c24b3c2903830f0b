package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vsokolov/departures/internal/record"
	"github.com/vsokolov/departures/internal/storage"
)

func newListCmd(kind record.Kind, dataPath *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("Print the %s table from an XML file", kind.Noun),
		Long: fmt.Sprintf(`Load an XML data file and print the %s table.

Examples:
  %s list --file %s.xml
  %s list`, kind.Noun, kind.Plural, kind.Plural, kind.Plural),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveDataFile(kind, file, *dataPath)
			if err != nil {
				return err
			}

			recs, err := storage.Load(path, kind)
			if err != nil {
				return err
			}

			store := record.NewStore(kind)
			store.Replace(recs)
			fmt.Fprintln(cmd.OutOrStdout(), store.Table())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "XML data file (default: configured data_file)")
	return cmd
}
