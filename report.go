package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

type reportSolution struct {
	Restart int     `yaml:"restart"`
	Key     string  `yaml:"key"`
	Score   float64 `yaml:"score"`
}

// decryptReport is what `decrypt --report` writes: enough to reproduce
// the run and to reuse the key with `encrypt --key`.
type decryptReport struct {
	Key       string           `yaml:"key"`
	Inverse   string           `yaml:"inverse"`
	Mappings  string           `yaml:"mappings"`
	Score     float64          `yaml:"score"`
	Letters   int              `yaml:"letters"`
	Seed      uint32           `yaml:"seed"`
	Restarts  int              `yaml:"restarts"`
	Partial   bool             `yaml:"partial,omitempty"`
	Solutions []reportSolution `yaml:"solutions"`
}

func newDecryptReport(res Result, seed uint32) decryptReport {
	r := decryptReport{
		Key:      res.Key.String(),
		Inverse:  res.Key.Invert().String(),
		Mappings: res.Key.Mappings(),
		Score:    res.Score,
		Letters:  res.solutions.cg.nrLetters(),
		Seed:     seed,
		Restarts: res.Restarts,
		Partial:  res.Partial,
	}
	for _, s := range res.solutions.solutions() {
		r.Solutions = append(r.Solutions, reportSolution{Restart: s.restart, Key: s.key.String(), Score: s.score})
	}
	return r
}

func writeReport(fn string, r decryptReport) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	return os.WriteFile(fn, data, 0o644)
}

func readReport(fn string) (decryptReport, error) {
	var r decryptReport
	data, err := os.ReadFile(fn)
	if err != nil {
		return r, err
	}
	err = yaml.Unmarshal(data, &r)
	return r, err
}
