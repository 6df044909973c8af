package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lessonforge/webutil/hashutil"
	"github.com/lessonforge/webutil/jsonutil"
	"github.com/lessonforge/webutil/randutil"
	"github.com/lessonforge/webutil/urlutil"
	"github.com/lessonforge/webutil/vfspath"
	"github.com/lessonforge/webutil/yamlutil"
)

// Execute runs the CLI.
func Execute() error {
	root := silenceUsageAndErrors(&cobra.Command{
		Use:   "webutil",
		Short: "Path, hashing, and encoding helpers for lessonforge services.",
	})

	root.AddCommand(newNormpathCmd())
	root.AddCommand(newJoinCmd())
	root.AddCommand(newHashCmd())
	root.AddCommand(newRandstrCmd())
	root.AddCommand(newYAMLToJSONCmd())
	root.AddCommand(newJSONToYAMLCmd())
	root.AddCommand(newSetURLParamCmd())
	root.AddCommand(newScriptCmd())
	executed, err := root.ExecuteC()
	if err != nil {
		maybePrintUsage(executed, root, err)
	}
	return err
}

func newNormpathCmd() *cobra.Command {
	return silenceUsageAndErrors(&cobra.Command{
		Use:   "normpath <path>",
		Short: "Normalize a virtual path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), vfspath.Normalize(args[0]))
			return nil
		},
	})
}

func newJoinCmd() *cobra.Command {
	return silenceUsageAndErrors(&cobra.Command{
		Use:   "join <base> [segment...]",
		Short: "Join path segments and normalize the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), vfspath.Normalize(vfspath.Join(args[0], args[1:]...)))
			return nil
		},
	})
}

func newHashCmd() *cobra.Command {
	var length int
	cmd := silenceUsageAndErrors(&cobra.Command{
		Use:   "hash [--length=N] <string>",
		Short: "Print a short URL-safe hash of a string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), hashutil.ShortHash(args[0], length))
			return nil
		},
	})
	cmd.Flags().IntVar(&length, "length", 12, "maximum length of the printed hash; -1 for the full digest")
	return cmd
}

func newRandstrCmd() *cobra.Command {
	var nBytes int
	cmd := silenceUsageAndErrors(&cobra.Command{
		Use:   "randstr [--bytes=N]",
		Short: "Print a random URL-safe string",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := randutil.String(nBytes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	})
	cmd.Flags().IntVar(&nBytes, "bytes", 16, "number of random bytes to encode")
	return cmd
}

func newYAMLToJSONCmd() *cobra.Command {
	return silenceUsageAndErrors(&cobra.Command{
		Use:   "yaml2json [file]",
		Short: "Convert a YAML mapping to HTML-safe JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			m, err := yamlutil.ToMap(string(data))
			if err != nil {
				return err
			}
			out, err := jsonutil.MarshalForHTML(m)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	})
}

func newJSONToYAMLCmd() *cobra.Command {
	return silenceUsageAndErrors(&cobra.Command{
		Use:   "json2yaml [file]",
		Short: "Convert a JSON object to YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			var m map[string]any
			if err := json.Unmarshal(data, &m); err != nil {
				return fmt.Errorf("parse json: %w", err)
			}
			out, err := yamlutil.FromMap(m)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	})
}

func newSetURLParamCmd() *cobra.Command {
	return silenceUsageAndErrors(&cobra.Command{
		Use:   "set-url-param <url> <name> <value>",
		Short: "Set or replace a query parameter on a URL",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := urlutil.SetQueryParam(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	})
}

func newScriptCmd() *cobra.Command {
	return silenceUsageAndErrors(&cobra.Command{
		Use:   "script [file]",
		Short: "Run a file of webutil operations, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runScript(cmd.OutOrStdout(), in)
		},
	})
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(cmd.InOrStdin())
}

func silenceUsageAndErrors(cmd *cobra.Command) *cobra.Command {
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	return cmd
}

func maybePrintUsage(cmd, root *cobra.Command, err error) {
	if err == nil {
		return
	}
	target := cmd
	if target == nil {
		target = root
	}
	if target == nil {
		return
	}
	if shouldShowUsage(err) {
		_ = target.Usage()
	}
}

func shouldShowUsage(err error) bool {
	msg := strings.ToLower(err.Error())
	if strings.HasPrefix(msg, "unknown command") {
		return true
	}
	if strings.HasPrefix(msg, "unknown flag") || strings.HasPrefix(msg, "unknown shorthand flag") {
		return true
	}
	if strings.Contains(msg, "accepts") && strings.Contains(msg, "arg") {
		return true
	}
	if strings.Contains(msg, "required flag") {
		return true
	}
	if strings.Contains(msg, "flag needs an argument") {
		return true
	}
	return false
}
