package main

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/openfiling/edgar/syntax"

	"github.com/urfave/cli/v2"
)

var cmdCheck = &cli.Command{
	Name:      "check",
	Usage:     "validates CIK syntax",
	ArgsUsage: `<cik>`,
	Action:    runCheck,
}

var cmdInspect = &cli.Command{
	Name:      "inspect",
	Usage:     "parses a CIK and prints its canonical forms",
	ArgsUsage: `<cik>`,
	Action:    runInspect,
}

var cmdValidate = &cli.Command{
	Name:      "validate",
	Usage:     "validates a file of CIKs, one per line",
	ArgsUsage: `<file-or-dash>`,
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "json",
			Usage:   "output invalid lines as JSON objects, one per line",
			EnvVars: []string{"EDGAR_JSON_OUTPUT"},
		},
	},
	Action: runValidate,
}

func runCheck(cctx *cli.Context) error {
	s := cctx.Args().First()
	if s == "" {
		return fmt.Errorf("need to provide identifier as argument")
	}
	_, err := syntax.ParseCIK(s)
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, "valid")
	return nil
}

func runInspect(cctx *cli.Context) error {
	s := cctx.Args().First()
	if s == "" {
		return fmt.Errorf("need to provide identifier as argument")
	}
	cik, err := syntax.ParseCIK(s)
	if err != nil {
		return err
	}
	fmt.Fprintf(cctx.App.Writer, "CIK: %s\n", cik)
	fmt.Fprintf(cctx.App.Writer, "Integer: %d\n", cik.Integer())
	fmt.Fprintf(cctx.App.Writer, "Padded: %s\n", cik.Padded())
	return nil
}

type invalidLine struct {
	Line  int    `json:"line"`
	Input string `json:"input"`
	Error string `json:"error"`
}

func runValidate(cctx *cli.Context) error {
	logger := configLogger(cctx, cctx.App.ErrWriter)

	path := cctx.Args().First()
	if path == "" {
		return fmt.Errorf("need to provide file path as an argument (or '-' for stdin)")
	}
	f, err := getFileOrStdin(cctx, path)
	if err != nil {
		return err
	}
	defer f.Close()

	out := cctx.App.Writer
	enc := json.NewEncoder(out)
	total := 0
	invalid := 0
	lineNum := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		total++
		cik, err := syntax.ParseCIK(line)
		if err != nil {
			invalid++
			if cctx.Bool("json") {
				if err := enc.Encode(invalidLine{Line: lineNum, Input: line, Error: err.Error()}); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(out, "%d: %q: %s\n", lineNum, line, err)
			}
			continue
		}
		logger.Debug("valid CIK", "line", lineNum, "cik", cik.String())
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	logger.Info("validation complete", "path", path, "total", total, "invalid", invalid)
	if invalid > 0 {
		return fmt.Errorf("found %d invalid CIKs (of %d)", invalid, total)
	}
	return nil
}
