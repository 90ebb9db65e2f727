// Command otalink resolves device-gated OTA download links from the
// terminal, using the same resolver library as the API server.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vit0-9/otalink_api/pkg/i18n"
	"github.com/vit0-9/otalink_api/pkg/resolver"
	"github.com/vit0-9/otalink_api/pkg/resolver/device"
)

type rootOptions struct {
	getpropBin string
	propFlags  []string
	lang       string
	timeout    time.Duration
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "otalink",
		Short:         "Resolve and inspect OTA download links",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.PersistentFlags().StringVar(&o.getpropBin, "getprop", "getprop", "property accessor binary")
	cmd.PersistentFlags().StringArrayVar(&o.propFlags, "prop", nil, "property override key=value (repeatable)")
	cmd.PersistentFlags().StringVar(&o.lang, "lang", "", "BCP-47 language tag for localized output")
	cmd.PersistentFlags().DurationVar(&o.timeout, "timeout", 2*time.Minute, "overall operation timeout")

	cmd.AddCommand(newResolveCmd(o))
	cmd.AddCommand(newExpiryCmd(o))
	cmd.AddCommand(newHeadersCmd(o))
	return cmd
}

// provider layers --prop overrides over the getprop binary.
func (o *rootOptions) provider() (device.Provider, error) {
	overrides := device.MapProvider{}
	for _, kv := range o.propFlags {
		key, value, found := strings.Cut(kv, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --prop %q, want key=value", kv)
		}
		overrides[key] = value
	}
	return device.Overlay{
		Primary:  overrides,
		Fallback: device.ExecProvider{Bin: o.getpropBin},
	}, nil
}

func (o *rootOptions) builder() (*resolver.HeaderBuilder, error) {
	props, err := o.provider()
	if err != nil {
		return nil, err
	}
	return resolver.NewHeaderBuilder(props), nil
}

func newResolveCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <url>",
		Short: "Walk the redirect chain and print the final URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := o.builder()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
			defer cancel()

			finalURL, err := resolver.New(builder).Resolve(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), finalURL)
			return nil
		},
	}
}

func newExpiryCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "expiry <url>",
		Short: "Print the remaining validity of a signed link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expiresAt, ok := resolver.ExtractExpires(args[0])
			if !ok {
				return fmt.Errorf("url has no parseable Expires parameter")
			}
			display := resolver.FormatRemaining(expiresAt, time.Now().Unix(), i18n.ExpiredLabel(o.lang))
			fmt.Fprintln(cmd.OutOrStdout(), display)
			return nil
		},
	}
}

func newHeadersCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "headers [url]",
		Short: "Print the device header set built for a URL",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, err := o.builder()
			if err != nil {
				return err
			}

			rawURL := ""
			if len(args) == 1 {
				rawURL = args[0]
			}
			headers := builder.Build(rawURL)

			names := make([]string, 0, len(headers))
			for name := range headers {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, headers[name])
			}
			return nil
		},
	}
}
