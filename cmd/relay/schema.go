package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/goran-ethernal/SolanaRelay/pkg/config"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeConfigSchema(cmd.OutOrStdout())
	},
}

// writeConfigSchema reflects config.Config into an indented JSON Schema document.
func writeConfigSchema(w io.Writer) error {
	r := &jsonschema.Reflector{
		FieldNameTag:               "yaml",
		RequiredFromJSONSchemaTags: true,
	}

	schema := r.Reflect(&config.Config{})
	schema.Title = "SolanaRelay configuration"

	encoded, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode schema: %w", err)
	}

	_, err = fmt.Fprintln(w, string(encoded))
	return err
}
