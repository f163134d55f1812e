package cmd

import (
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/yleguide/yleguide/color"
	"github.com/yleguide/yleguide/style"
	"github.com/yleguide/yleguide/where"
)

type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort string
}

var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", "c"},
	{"Logs", where.Logs, "logs", "l"},
	{"Temp", where.Temp, "temp", "t"},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, n := range wherePaths {
		whereCmd.Flags().BoolP(n.argLong, n.argShort, false, n.name+" path")
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show the paths for files yleguide uses",
	Run: func(cmd *cobra.Command, args []string) {
		headerStyle := style.New().Bold(true).Foreground(color.Purple).Render

		for _, n := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(n.argLong)) {
				cmd.Println(n.where())
				return
			}
		}

		for i, n := range wherePaths {
			cmd.Printf("%s %s\n", headerStyle(n.name+"?"), style.Fg(color.Yellow)("--"+n.argLong))
			cmd.Println(n.where())

			if i < len(wherePaths)-1 {
				cmd.Println()
			}
		}
	},
}
