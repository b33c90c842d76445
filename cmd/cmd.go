package cmd

import (
	"os"

	"github.com/named-data/backdrop/std/log"
	"github.com/named-data/backdrop/std/utils"
	"github.com/named-data/backdrop/tools"
	"github.com/spf13/cobra"
)

const banner = `
  _                _       _
 | |__   __ _  ___| | ____| |_ __ ___  _ __
 | '_ \ / _' |/ __| |/ / _' | '__/ _ \| '_ \
 | |_) | (_| | (__|   < (_| | | | (_) | |_) |
 |_.__/ \__,_|\___|_|\_\__,_|_|  \___/| .__/
                                      |_|
Reference counted pointers with pluggable disposal
`

var logLevel string
var logFormat string

var CmdBackdrop = &cobra.Command{
	Use:     "backdrop",
	Short:   "Reference counted pointers with pluggable disposal",
	Long:    banner[1:],
	Version: utils.Version,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return setupLogger()
	},
}

func init() {
	cobra.EnableCommandSorting = false
	CmdBackdrop.Root().CompletionOptions.HiddenDefaultCmd = true
	CmdBackdrop.PersistentFlags().BoolP("help", "h", false, "Print usage")
	CmdBackdrop.PersistentFlags().Lookup("help").Hidden = true
	CmdBackdrop.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "log level (TRACE, DEBUG, INFO, WARN, ERROR)")
	CmdBackdrop.PersistentFlags().StringVar(&logFormat, "log-format", "tint", "log format (text, json, tint)")

	CmdBackdrop.AddGroup(&cobra.Group{ID: "tools", Title: "Diagnostic Tools"})
	CmdBackdrop.AddCommand(tools.CmdBench())
	CmdBackdrop.AddCommand(tools.CmdCheck())
}

func setupLogger() error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	logger, err := log.New(os.Stderr, logFormat)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	log.SetDefault(logger)
	return nil
}
