package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yleguide/yleguide/color"
	"github.com/yleguide/yleguide/icon"
	"github.com/yleguide/yleguide/key"
	"github.com/yleguide/yleguide/push"
	"github.com/yleguide/yleguide/style"
)

func init() {
	rootCmd.AddCommand(pushCmd)
	pushCmd.AddCommand(pushKeyCmd)
}

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Push subscription helpers",
}

var pushKeyCmd = &cobra.Command{
	Use:   "key [key]",
	Short: "Validate a VAPID application server key",
	Long:  "Validate a VAPID application server key. Without an argument the configured " + key.PushVapidPublicKey + " is checked.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		value := viper.GetString(key.PushVapidPublicKey)
		if len(args) == 1 {
			value = args[0]
		}

		raw, err := push.DecodeApplicationServerKey(value)
		handleErr(err)

		fmt.Printf(
			"%s valid P-256 public key, %d bytes\n%s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			len(raw),
			push.EncodeApplicationServerKey(raw),
		)
	},
}
