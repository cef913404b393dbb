package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

const noGoodDecryptions = "No good decryptions found"

func (a *app) printResult(label, value string) {
	fmt.Fprintln(a.out, a.st.Label.Render(label), value)
}

func (a *app) caesarEncrypt(text string, shift int) {
	a.printResult("Encrypted Text:", Rot(text, shift))
}

func (a *app) caesarDecrypt(text string) error {
	dict, err := a.dictionary()
	if err != nil {
		return err
	}

	candidates := CaesarDecrypt(text, dict)
	if len(candidates) == 0 {
		fmt.Fprintln(a.out, noGoodDecryptions)
		return nil
	}
	for _, c := range candidates {
		fmt.Fprintln(a.out, c)
	}
	return nil
}

func (a *app) englishness(text string) error {
	scorer, err := a.quadgramScorer()
	if err != nil {
		return err
	}

	score, err := scorer.ScoreString(Clean(text))
	if errors.Is(err, ErrTooShort) {
		fmt.Fprintln(a.out, a.st.Error.Render("Error: Too small of an input"))
		return nil
	}
	if err != nil {
		return err
	}

	a.printResult("The computed Englishness is:", fmt.Sprintf("%.6g", score))
	return nil
}

// encrypt applies key to text, or a fresh random key when key is nil.
func (a *app) encrypt(text string, key *Key) Key {
	var k Key
	if key != nil {
		k = *key
	} else {
		k = GenRandomSubstCipher(a.rng)
	}
	a.printResult("Encrypted text:", k.Apply(text))
	return k
}

func (a *app) decryptSubst(ctx context.Context, ciphertext string) (Result, error) {
	scorer, err := a.quadgramScorer()
	if err != nil {
		return Result{}, err
	}

	ctx, cancel := a.searchContext(ctx)
	defer cancel()

	res, err := a.newSolver(scorer).decrypt(ctx, ciphertext)
	if err != nil {
		return res, err
	}
	if res.Partial {
		a.log.WithField("restarts", res.Restarts).Warn("search stopped early, showing best key so far")
	}
	return res, nil
}

func (a *app) decryptText(ctx context.Context, ciphertext string) (Result, error) {
	res, err := a.decryptSubst(ctx, ciphertext)
	if err != nil {
		return res, err
	}
	a.printResult("Decrypted text:", res.Plaintext)
	return res, nil
}

// decryptFile decrypts the whole of inFile into outFile. The output file
// is only created once decryption has succeeded.
func (a *app) decryptFile(ctx context.Context, inFile, outFile string) (Result, error) {
	data, err := os.ReadFile(inFile)
	if err != nil {
		return Result{}, err
	}

	res, err := a.decryptSubst(ctx, string(data))
	if err != nil {
		return res, fmt.Errorf("%s: %w", inFile, err)
	}

	if err := os.WriteFile(outFile, []byte(res.Plaintext), 0o644); err != nil {
		return res, err
	}
	a.log.WithFields(logrus.Fields{"in": inFile, "out": outFile}).Info("wrote decrypted file")
	return res, nil
}
