// Package cli implements the synctech command-line tool.
package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const defaultServer = "http://localhost:8080"

// options are resolved from flags, then SYNCTECH_* environment variables
type options struct {
	v *viper.Viper
}

func (o *options) server() string {
	return strings.TrimRight(o.v.GetString("server"), "/")
}

func (o *options) lang() string   { return o.v.GetString("lang") }
func (o *options) output() string { return o.v.GetString("output") }

// NewRootCommand builds a fresh command tree
func NewRootCommand() *cobra.Command {
	opts := &options{v: viper.New()}

	root := &cobra.Command{
		Use:   "synctech",
		Short: "CLI tool for the Synctech site",
		Long: `Command-line companion for the Synctech site server.

Ask the AI assistant from a terminal, and list or validate the blog posts
before they are deployed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("server", defaultServer, "site server URL")
	root.PersistentFlags().String("lang", "pt", "reply language (pt, en)")
	root.PersistentFlags().StringP("output", "o", "table", "output format (table, json, yaml)")

	_ = opts.v.BindPFlag("server", root.PersistentFlags().Lookup("server"))
	_ = opts.v.BindPFlag("lang", root.PersistentFlags().Lookup("lang"))
	_ = opts.v.BindPFlag("output", root.PersistentFlags().Lookup("output"))
	opts.v.SetEnvPrefix("SYNCTECH")
	opts.v.AutomaticEnv()

	root.AddCommand(
		newChatCmd(opts),
		newPostsCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI. It is called by main.main().
func Execute() error {
	return NewRootCommand().Execute()
}
