package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vsokolov/departures/internal/record"
	"github.com/vsokolov/departures/internal/storage"
)

func newSelectCmd(kind record.Kind, dataPath *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "select <no>",
		Short: fmt.Sprintf("Find %s by number in an XML file", kind.Plural),
		Long: fmt.Sprintf(`Load an XML data file and print the %s with the given number.

Numbers are compared as strings, exactly as entered.

Examples:
  %s select 101 --file %s.xml
  %s select 101`, kind.Plural, kind.Plural, kind.Plural, kind.Plural),
		Args: cobra.ExactArgs(1),
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

			found := store.Select(args[0])
			if len(found) == 0 {
				fmt.Fprintf(os.Stderr, "No %s found with number %s\n", kind.Plural, args[0])
				os.Exit(ExitDataError)
			}
			for i, r := range found {
				fmt.Fprintf(cmd.OutOrStdout(), "%4d: %s  %s  %s\n", i+1, r.Name, r.No, r.Time)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "XML data file (default: configured data_file)")
	return cmd
}
