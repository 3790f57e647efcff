// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/recipe-importer/internal/lexicon"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Print the effective classification and unit tables",
	Long: `Tables prints the lookup data the parser runs on as YAML: the built-in
defaults with any --tables file layered over them. The output is a valid
tables file and can be edited and passed back with --tables.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lex, err := lexicon.Load(viper.GetString("parse.tables_path"))
		if err != nil {
			return err
		}
		data, err := lexicon.Marshal(lex)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(tablesCmd)
}
