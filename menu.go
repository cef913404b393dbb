package main

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

var menuItems = []struct{ key, desc string }{
	{"C", "Encrypt with Caesar Cipher"},
	{"D", "Decrypt Caesar Cipher"},
	{"E", "Compute English-ness Score"},
	{"A", "Apply Random Substitution Cipher"},
	{"S", "Decrypt Substitution Cipher from Console"},
	{"F", "Decrypt Substitution Cipher from File"},
	{"R", "Set Random Seed for Testing"},
	{"X", "Exit Program"},
}

// menu is the interactive loop: one command letter per line, each followed
// by the prompts that command needs. It returns on X or end of input.
type menu struct {
	*app
	lines *bufio.Scanner
}

func (a *app) runMenu(ctx context.Context) error {
	m := menu{app: a, lines: bufio.NewScanner(a.in)}

	fmt.Fprintln(a.out, a.st.Title.Render("Welcome to Ciphers!"))
	fmt.Fprintln(a.out, "-------------------")
	fmt.Fprintln(a.out)

	for {
		m.printMenu()
		command, ok := m.prompt("\nEnter a command (case does not matter): ")
		fmt.Fprintln(a.out)
		if !ok {
			return m.lines.Err()
		}

		command = strings.ToUpper(strings.TrimSpace(command))
		if command == "X" {
			return nil
		}
		if err := m.dispatch(ctx, command); err != nil {
			if ctx.Err() != nil {
				return err
			}
			fmt.Fprintln(a.out, a.st.Error.Render("Error:"), err)
		}
		fmt.Fprintln(a.out)
	}
}

func (m menu) printMenu() {
	fmt.Fprintln(m.out, m.st.Title.Render("Ciphers Menu"))
	fmt.Fprintln(m.out, "------------")
	for _, it := range menuItems {
		fmt.Fprintln(m.out, m.st.Key.Render(it.key), "-", it.desc)
	}
}

// prompt prints p and reads one line. ok is false at end of input.
func (m menu) prompt(p string) (string, bool) {
	fmt.Fprint(m.out, p)
	if !m.lines.Scan() {
		return "", false
	}
	return m.lines.Text(), true
}

func (m menu) dispatch(ctx context.Context, command string) error {
	switch command {
	case "R":
		s, _ := m.prompt("Enter a non-negative integer to seed the random number generator: ")
		// Seeds outside the uint32 range wrap, so -1 is 4294967295.
		seed, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed %q", s)
		}
		m.reseed(uint32(seed))

	case "C":
		text, _ := m.prompt("Enter text to encrypt: ")
		s, _ := m.prompt("Enter shift amount: ")
		shift, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("invalid shift amount %q", s)
		}
		m.caesarEncrypt(text, shift)

	case "D":
		text, _ := m.prompt("Enter text to decrypt: ")
		return m.caesarDecrypt(text)

	case "E":
		text, _ := m.prompt("Enter text to compute Englishness: ")
		return m.englishness(text)

	case "A":
		text, _ := m.prompt("Enter text to encrypt: ")
		m.encrypt(text, nil)

	case "S":
		text, _ := m.prompt("Enter text to decrypt: ")
		_, err := m.decryptText(ctx, text)
		return err

	case "F":
		inFile, _ := m.prompt("Enter input file name: ")
		outFile, _ := m.prompt("Enter output file name: ")
		_, err := m.decryptFile(ctx, strings.TrimSpace(inFile), strings.TrimSpace(outFile))
		return err
	}
	return nil
}
