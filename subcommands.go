package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCaesarCmd(getApp func() *app) *cobra.Command {
	caesarCmd := &cobra.Command{
		Use:   "caesar",
		Short: "Caesar shift cipher",
	}

	var shift int
	encryptCmd := &cobra.Command{
		Use:   "encrypt [text]",
		Short: "Rotate every letter of text forward by --shift places",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args, "Enter text to encrypt: ")
			if err != nil {
				return err
			}
			getApp().caesarEncrypt(text, shift)
			return nil
		},
	}
	encryptCmd.Flags().IntVarP(&shift, "shift", "n", 0, "Number of places to shift each letter")

	decryptCmd := &cobra.Command{
		Use:   "decrypt [text]",
		Short: "Try all 26 shifts and print those made mostly of dictionary words",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args, "Enter text to decrypt: ")
			if err != nil {
				return err
			}
			return getApp().caesarDecrypt(text)
		},
	}

	caesarCmd.AddCommand(encryptCmd, decryptCmd)
	return caesarCmd
}

func newScoreCmd(getApp func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "score [text]",
		Short: "Compute the English-ness score of text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args, "Enter text to compute Englishness: ")
			if err != nil {
				return err
			}
			return getApp().englishness(text)
		},
	}
}

func newEncryptCmd(getApp func() *app) *cobra.Command {
	var (
		keyStr  string
		keyFile string
		inverse bool
	)

	cmd := &cobra.Command{
		Use:   "encrypt [text]",
		Short: "Apply a substitution cipher, random unless a key is given",
		Long: `Apply a substitution cipher to text.

The key is random unless given with --key, either as the 26 letters the
alphabet maps to or as mappings like "ABC=XYZ". --key-file reads the key
from a report written by "decrypt --report". --inverse applies the key
that undoes the given one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()

			var key *Key
			switch {
			case keyStr != "" && keyFile != "":
				return fmt.Errorf("use only one of --key and --key-file")
			case keyStr != "":
				k, err := ParseKey(keyStr)
				if err != nil {
					return err
				}
				key = &k
			case keyFile != "":
				r, err := readReport(keyFile)
				if err != nil {
					return err
				}
				k, err := ParseKey(r.Key)
				if err != nil {
					return fmt.Errorf("%s: %w", keyFile, err)
				}
				key = &k
			}
			if key != nil && inverse {
				inv := key.Invert()
				key = &inv
			}

			text, err := inputText(cmd, args, "Enter text to encrypt: ")
			if err != nil {
				return err
			}

			k := a.encrypt(text, key)
			a.printResult("Key:", k.String())
			return nil
		},
	}

	cmd.Flags().StringVarP(&keyStr, "key", "k", "", "Substitution key")
	cmd.Flags().StringVar(&keyFile, "key-file", "", "Read the key from a decrypt report")
	cmd.Flags().BoolVar(&inverse, "inverse", false, "Apply the inverse of the given key")
	return cmd
}

func newDecryptCmd(getApp func() *app) *cobra.Command {
	var (
		inFile     string
		outFile    string
		reportFile string
	)

	cmd := &cobra.Command{
		Use:   "decrypt [text]",
		Short: "Break a substitution cipher without the key",
		Long: `Break a substitution cipher by hill climbing.

Each restart starts from a random key and swaps pairs of letters, keeping a
swap only when it makes the decryption score higher against English
quadgram statistics. The search stops a restart after --stall swaps in a row
fail, and keeps the best key out of --restarts restarts.

With --in and --out the whole input file is decrypted into the output file,
keeping line breaks and punctuation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := getApp()

			var (
				res Result
				err error
			)
			switch {
			case inFile != "" || outFile != "":
				if inFile == "" || outFile == "" {
					return fmt.Errorf("--in and --out must be used together")
				}
				res, err = a.decryptFile(cmd.Context(), inFile, outFile)
			default:
				var text string
				if text, err = inputText(cmd, args, "Enter text to decrypt: "); err != nil {
					return err
				}
				res, err = a.decryptText(cmd.Context(), text)
			}
			if err != nil {
				return err
			}

			if inFile == "" && a.cfg.Search.Top > 1 {
				fmt.Fprintln(a.out, a.st.Dim.Render(fmt.Sprintf("Top %d of %d restarts:", len(res.solutions.set), res.Restarts)))
				res.solutions.dump(a.out, false)
			}

			if reportFile != "" {
				return writeReport(reportFile, newDecryptReport(res, a.seed))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inFile, "in", "i", "", "Read the ciphertext from this file")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "Write the decryption to this file")
	cmd.Flags().StringVar(&reportFile, "report", "", "Write a YAML report of the search to this file")
	cmd.Flags().Int("restarts", 25, "Number of hill climbing restarts")
	cmd.Flags().Int("stall", 1000, "Failed swaps in a row that end a restart")
	cmd.Flags().Int("top", 3, "Number of best restarts to list")
	return cmd
}
