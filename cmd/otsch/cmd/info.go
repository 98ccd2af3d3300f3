package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/OpenTraceLab/OpenTraceSch/internal/config"
	"github.com/OpenTraceLab/OpenTraceSch/pkg/object"
	"github.com/spf13/cobra"
)

var fillStylesCmd = &cobra.Command{
	Use:   "fill-styles",
	Short: "List fill types and the parameters each one uses",
	Args:  cobra.NoArgs,
	RunE:  runFillStyles,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "otsch %s\n", Version)
	},
}

var configSave string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Show the configuration after applying the config file, OTSCH_*
environment variables and flags. With --save the result is written to
the given file.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(fillStylesCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVar(&configSave, "save", "", "write the effective configuration to this file")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func runFillStyles(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-8s %-6s %-6s %-6s\n", "TYPE", "WIDTH", "PAIR1", "PAIR2")
	for _, info := range object.FillTypes() {
		fmt.Fprintf(out, "%-8s %-6s %-6s %-6s\n",
			info.Name, yesNo(info.UsesWidth), yesNo(info.UsesPair1), yesNo(info.UsesPair2))
	}
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configSave != "" {
		if err := config.Save(configSave, cfg); err != nil {
			return fmt.Errorf("error saving config: %w", err)
		}
		logger.Info("saved config", "path", configSave)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
