package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var (
		configPath string
		a          *app
	)
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "ciphers",
		Short: "Caesar and substitution cipher tools",
		Long: `Encrypt and decrypt Caesar and simple substitution ciphers.

Substitution ciphers are broken without a key by hill climbing over
substitution keys, scoring each candidate decryption against English
quadgram frequencies. Run with no command for the interactive menu.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := loadConfig(v, configPath)
			if err != nil {
				return err
			}
			a = newApp(cfg, setupLogger(errOut, cfg.Log.Level), in, out)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMenu(cmd.Context())
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Configuration file (default ./ciphers.yaml if present)")
	pf.StringP("quadgrams", "q", "english_quadgrams.txt", "Quadgram count file, QUAD,count per line")
	pf.StringP("dictionary", "d", "dictionary.txt", "Word list for Caesar decryption, one word per line")
	pf.Uint32("seed", 0, "Seed for the random number generator (default: current time)")
	pf.DurationP("max-runtime", "r", 0, "Stop searching after this amount of time. Ex: 30s or 1m")
	pf.String("log-level", "warn", "Log level: debug, info, warn, error")

	getApp := func() *app { return a }
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "menu",
			Short: "Interactive menu",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runMenu(cmd.Context())
			},
		},
		newCaesarCmd(getApp),
		newScoreCmd(getApp),
		newEncryptCmd(getApp),
		newDecryptCmd(getApp),
	)

	return rootCmd
}

// inputText joins args, or reads one line from the command's input after
// printing prompt when there are none.
func inputText(cmd *cobra.Command, args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	fmt.Fprint(cmd.OutOrStdout(), prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return strings.TrimRight(line, "\r\n"), nil
}
