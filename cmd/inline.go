package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yleguide/yleguide/filesystem"
	"github.com/yleguide/yleguide/guide"
	"github.com/yleguide/yleguide/inline"
	"github.com/yleguide/yleguide/key"
	"github.com/yleguide/yleguide/open"
	"github.com/yleguide/yleguide/player"
	"github.com/yleguide/yleguide/router"
	"github.com/yleguide/yleguide/stream"
	"github.com/yleguide/yleguide/util"
)

func addInlineFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	cmd.Flags().StringP("output", "o", "", "Write the output to a file")
}

func newRenderer(cmd *cobra.Command) (*inline.Renderer, func()) {
	var (
		writer io.Writer = os.Stdout
		closer           = func() {}
	)

	if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
		file, err := filesystem.API().Create(output)
		handleErr(err)
		writer = file
		closer = func() { _ = file.Close() }
	}

	width := 80
	if w, _, err := util.TerminalSize(); err == nil && w > 0 {
		width = w
	}

	variants := false
	if f := cmd.Flags().Lookup("variants"); f != nil {
		variants = lo.Must(cmd.Flags().GetBool("variants"))
	}

	return inline.New(inline.Options{
		Out:          writer,
		Json:         lo.Must(cmd.Flags().GetBool("json")),
		Descriptions: viper.GetBool(key.TUIShowDescriptions),
		Variants:     variants,
		MaxBandwidth: viper.GetUint32(key.PlayerMaxBandwidth),
		Width:        width,
	}), closer
}

func views(r *inline.Renderer) router.Views {
	return router.Views{Toolbar: r, Guide: r, Player: r, Personal: r}
}

// navigateInline runs one route transition and writes what it rendered.
func navigateInline(cmd *cobra.Command, path string) *inline.Renderer {
	a, err := newApp()
	handleErr(err)

	renderer, closer := newRenderer(cmd)
	defer closer()

	handleErr(a.router(views(renderer)).Navigate(context.Background(), path))
	handleErr(renderer.Flush())
	return renderer
}

func init() {
	rootCmd.AddCommand(channelsCmd)
	addInlineFlags(channelsCmd)
	channelsCmd.Flags().StringP("filter", "f", "", "Only list channels fuzzily matching this text")
}

var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "List the channels of the guide",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := newApp()
		handleErr(err)

		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()

		catalog, err := a.fetcher.Refresh(ctx)
		handleErr(err)

		renderer, closer := newRenderer(cmd)
		defer closer()

		renderer.ShowChannels(guide.FilterChannels(catalog.Channels, lo.Must(cmd.Flags().GetString("filter"))))
		handleErr(renderer.Flush())
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
	addInlineFlags(guideCmd)
}

var guideCmd = &cobra.Command{
	Use:     "guide <channel>",
	Short:   "Show the programs of a channel",
	Example: "  yleguide guide yle-tv1",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		navigateInline(cmd, router.ChannelPath(args[0]))
	},
}

func init() {
	rootCmd.AddCommand(personalCmd)
	addInlineFlags(personalCmd)
	personalCmd.Flags().StringP("query", "q", "", "Search term, overrides "+key.PersonalQuery)
	lo.Must0(viper.BindPFlag(key.PersonalQuery, personalCmd.Flags().Lookup("query")))
}

var personalCmd = &cobra.Command{
	Use:   "personal",
	Short: "Show the personal guide, newest first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		navigateInline(cmd, router.PersonalPath)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
	addInlineFlags(playCmd)
	playCmd.Flags().BoolP("variants", "V", false, "List the HLS variants of the stream")
	playCmd.Flags().Bool("no-player", false, "Only print the stream, do not launch a player")
	playCmd.Flags().BoolP("web", "w", false, "Open the program page in the browser instead")
}

var playCmd = &cobra.Command{
	Use:     "play <content> <media>",
	Short:   "Resolve the stream of a program and play it",
	Example: "  yleguide play 1-4553279 6-25a7d2e9a1e34e2b9a5d1f",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("web")) {
			handleErr(open.Start(open.WebPage(args[0])))
			return
		}

		renderer := navigateInline(cmd, guide.PlaybackRoute(args[0], args[1]))

		if lo.Must(cmd.Flags().GetBool("no-player")) || lo.Must(cmd.Flags().GetBool("json")) {
			return
		}

		if playback, ok := renderer.Playback().Get(); ok {
			handleErr(play(playback))
		}
	},
}

func play(playback *stream.Playback) error {
	p, err := player.New(viper.GetString(key.Player))
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	title := playback.ContentID
	if program, ok := playback.Program.Get(); ok {
		title = program.Title
	}

	if err := p.Play(playback.Pick(viper.GetUint32(key.PlayerMaxBandwidth)), title); err != nil {
		return err
	}

	<-p.Wait()
	return nil
}

func init() {
	rootCmd.AddCommand(routeCmd)
	addInlineFlags(routeCmd)
}

var routeCmd = &cobra.Command{
	Use:   "route <path>",
	Short: "Navigate to a route and print what it shows",
	Long: `Navigate to a route and print what it shows.

Routes:
  channels/<channel>        programs of a channel
  play/<content>/<media>    stream of a program
  personal                  personal guide

Anything else reloads the guide and shows the first channel.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		navigateInline(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the --json output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return filepath.Base(t.PkgPath()) + "." + t.Name()
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(reflector.Reflect(&inline.Output{})))
	},
}
