package cmd

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yleguide/yleguide/auth"
	"github.com/yleguide/yleguide/color"
	"github.com/yleguide/yleguide/icon"
	"github.com/yleguide/yleguide/key"
	"github.com/yleguide/yleguide/style"
	"github.com/zalando/go-keyring"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage API credentials",
}

func init() {
	authCmd.AddCommand(authSetCmd)
}

var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the API app id in the config and the key and secret in the system keyring",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var answers struct {
			AppID  string
			AppKey string
			Secret string
		}

		questions := []*survey.Question{
			{
				Name:     "AppID",
				Prompt:   &survey.Input{Message: "App id", Default: viper.GetString(key.APIAppID)},
				Validate: survey.Required,
			},
			{
				Name:     "AppKey",
				Prompt:   &survey.Password{Message: "App key"},
				Validate: survey.Required,
			},
			{
				Name:   "Secret",
				Prompt: &survey.Password{Message: "Playout secret", Help: "Leave empty if you only browse the guide"},
			},
		}

		handleErr(survey.Ask(questions, &answers))

		viper.Set(key.APIAppID, answers.AppID)
		switch err := viper.WriteConfig(); err.(type) {
		case viper.ConfigFileNotFoundError:
			handleErr(viper.SafeWriteConfig())
		default:
			handleErr(err)
		}

		handleErr(auth.Set(auth.AppKey, answers.AppKey))
		if answers.Secret != "" {
			handleErr(auth.Set(auth.Secret, answers.Secret))
		}

		fmt.Printf("%s credentials saved\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authDeleteCmd)
}

var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the API key and secret from the system keyring",
	Aliases: []string{"remove"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		var confirmed bool
		handleErr(survey.AskOne(&survey.Confirm{Message: "Delete stored credentials?"}, &confirmed))
		if !confirmed {
			return
		}

		for _, entry := range []auth.Entry{auth.AppKey, auth.Secret} {
			if err := auth.Delete(entry); err != nil && !errors.Is(err, keyring.ErrNotFound) {
				handleErr(err)
			}
		}

		fmt.Printf("%s credentials deleted\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}
