package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/Cyclone1070/oaimcp/internal/config"
	"github.com/Cyclone1070/oaimcp/internal/tool"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type toolsOptions struct {
	JSON bool
}

func newToolsCmd(deps Dependencies) *cobra.Command {
	var options toolsOptions

	cmd := &cobra.Command{
		Use:     "tools [flags]",
		Short:   "List the tools and their input schemas",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Declarations need no credentials, so no provider is built.
			media := tool.NewMediaWriter(afero.NewMemMapFs(), "")
			manager := tool.NewManager(nil, nil, tool.New(nil, config.ModelsConfig{}, media)...)
			decls := manager.Declarations()

			if options.JSON {
				enc := json.NewEncoder(deps.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(decls)
			}

			w := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDESCRIPTION")
			for _, d := range decls {
				fmt.Fprintf(w, "%s\t%s\n", d.Name, d.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&options.JSON, "json", false, "print full declarations with input schemas as JSON")
	return cmd
}
