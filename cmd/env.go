package cmd

import (
	"os"
	"slices"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/yleguide/yleguide/color"
	"github.com/yleguide/yleguide/config"
	"github.com/yleguide/yleguide/style"
	"github.com/yleguide/yleguide/where"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are not set")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the environment variables yleguide reads",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		envs := lo.Map(config.EnvExposed, func(k string, _ int) string {
			field := config.Default[k]
			return field.Env()
		})
		envs = append(envs, where.EnvConfigPath)
		slices.Sort(envs)

		for _, env := range envs {
			value, present := os.LookupEnv(env)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(style.New().Bold(true).Foreground(color.Purple).Render(env))
			cmd.Print("=")

			switch {
			case !present:
				cmd.Println(style.Fg(color.Red)("unset"))
			case lo.Contains(secretEnvs(), env):
				cmd.Println(style.Fg(color.Green)("********"))
			default:
				cmd.Println(style.Fg(color.Green)(value))
			}
		}
	},
}

func secretEnvs() []string {
	return lo.FilterMap(lo.Values(config.Default), func(f config.Field, _ int) (string, bool) {
		return f.Env(), f.Secret()
	})
}
