package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/wikikit/pkg/config"
	"github.com/dmitrymomot/wikikit/pkg/wikiurl"
)

func newRootCmd() *cobra.Command {
	var envFiles []string

	cmd := &cobra.Command{
		Use:   "wikikit",
		Short: "Wiki page helpers: links, parameters, address checks and a page server",
		Long: `wikikit builds wiki links the way the article path expects them, reads query
parameters, validates e-mail and IP addresses, and serves rendered pages with
the table of contents toggle, access-key hints and portlet links applied.

Site settings come from the environment (WIKI_ARTICLE_PATH, WIKI_SCRIPT, ...)
and from a .env file in the working directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return config.LoadEnv(envFiles...)
		},
	}
	cmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "extra .env files to load before the environment is read")

	cmd.AddCommand(
		newServeCmd(),
		newEncodeCmd(),
		newURLCmd(),
		newScriptCmd(),
		newParamCmd(),
		newValidateCmd(),
		newAccessKeyCmd(),
	)
	return cmd
}

func loadSite() (*wikiurl.Site, error) {
	var cfg wikiurl.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return wikiurl.New(cfg)
}
