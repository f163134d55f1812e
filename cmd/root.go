// Package cmd implements the command-line interface for yleguide.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yleguide/yleguide/color"
	"github.com/yleguide/yleguide/constant"
	"github.com/yleguide/yleguide/icon"
	"github.com/yleguide/yleguide/key"
	"github.com/yleguide/yleguide/log"
	"github.com/yleguide/yleguide/player"
	"github.com/yleguide/yleguide/style"
	"github.com/yleguide/yleguide/tui"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().StringP("route", "r", "", "Route to open on start, e.g. channels/yle-tv1 or personal")
	rootCmd.Flags().Bool("no-player", false, "Show stream URLs instead of launching a player")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("player", "P", "", "Media player to use")
	lo.Must0(viper.BindPFlag(key.Player, rootCmd.PersistentFlags().Lookup("player")))
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Browse the Yle TV guide and play programs from the terminal",
	Long: constant.Logo + "\n\n" +
		style.New().Italic(true).Foreground(color.Brand).Render("    - Browse the Yle TV guide and play programs from the terminal"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		a, err := newApp()
		handleErr(err)

		options := &tui.Options{
			Route:        lo.Must(cmd.Flags().GetString("route")),
			MaxBandwidth: viper.GetUint32(key.PlayerMaxBandwidth),
		}

		if !lo.Must(cmd.Flags().GetBool("no-player")) {
			options.Player = func() (player.Player, error) {
				return player.New(viper.GetString(key.Player))
			}
		}

		handleErr(tui.Run(a.router, options))
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
