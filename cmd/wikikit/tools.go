package main

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/wikikit/pkg/useragent"
	"github.com/dmitrymomot/wikikit/pkg/validator"
	"github.com/dmitrymomot/wikikit/pkg/wikidom"
	"github.com/dmitrymomot/wikikit/pkg/wikiurl"
)

func newEncodeCmd() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "encode TEXT",
		Short: "Encode a page title for an article path",
		Example: `  wikikit encode "Help:Sand box"      # Help:Sand_box
  wikikit encode --raw "a b&c"         # a%20b%26c`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), wikiurl.RawURLEncode(args[0]))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), wikiurl.WikiURLEncode(args[0]))
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "encode every reserved character, spaces as %20")
	return cmd
}

func newURLCmd() *cobra.Command {
	var params []string

	cmd := &cobra.Command{
		Use:     "url [TITLE]",
		Short:   "Print the article URL of a page",
		Example: `  wikikit url "Main Page" --param action=edit`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := loadSite()
			if err != nil {
				return err
			}

			query := url.Values{}
			for _, p := range params {
				key, value, ok := strings.Cut(p, "=")
				if !ok || key == "" {
					return fmt.Errorf("param %q: want key=value", p)
				}
				query.Add(key, value)
			}

			var title string
			if len(args) == 1 {
				title = args[0]
			}
			fmt.Fprintln(cmd.OutOrStdout(), site.GetURL(title, query))
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&params, "param", "p", nil, "query parameter as key=value, repeatable")
	return cmd
}

func newScriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "script [NAME]",
		Short: "Print the URL of an entry-point script (index, load, api, ...)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := loadSite()
			if err != nil {
				return err
			}
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			fmt.Fprintln(cmd.OutOrStdout(), site.WikiScript(name))
			return nil
		},
	}
}

func newParamCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "param NAME URL",
		Short:   "Print the value of a query parameter; exits 1 when it is absent",
		Example: `  wikikit param action "/w/index.php?title=Foo&action=edit"`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, ok := wikiurl.GetParamValue(args[0], args[1])
			if !ok {
				return exitError{code: 1}
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

// Exit codes of the validate command.
const (
	exitInvalid       = 1
	exitIndeterminate = 2
)

func newValidateCmd() *cobra.Command {
	var block bool

	cmd := &cobra.Command{
		Use:   "validate KIND VALUE",
		Short: "Check an e-mail address or IP address",
		Long: fmt.Sprintf(`Check VALUE against KIND (one of %s) and print the verdict.

The command exits 0 for a valid value, %d for an invalid one and %d when there
was nothing to judge (an empty e-mail address).`,
			strings.Join(validator.AddressKinds, ", "), exitInvalid, exitIndeterminate),
		Example: `  wikikit validate email user@example.org
  wikikit validate ipv4 10.0.0.0/8 --block`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: validator.AddressKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			verdict, err := validator.ValidateAddress(args[0], args[1], block)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), verdict)
			switch verdict {
			case validator.Invalid:
				return exitError{code: exitInvalid}
			case validator.Indeterminate:
				return exitError{code: exitIndeterminate}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&block, "block", false, "accept CIDR ranges such as 10.0.0.0/8")
	return cmd
}

func newAccessKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accesskey USER_AGENT",
		Short: "Print the access-key modifier prefix a browser uses",
		Long:  "Unrecognised user agents get the default prefix.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile := useragent.MustParse(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", wikidom.AccessKeyPrefix(profile), profile)
			return nil
		},
	}
}
