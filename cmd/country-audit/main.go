package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"phone_input_backend/internal/countries"
	"phone_input_backend/internal/telinput"
	"phone_input_backend/platform/logger"
	"phone_input_backend/platform/sanitize"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}
	log := logger.New(env)
	os.Exit(run(os.Args[1:], os.Stdout, log))
}

// run audits the selected country table and prints the type-ahead
// formatting of the sample. It returns 1 when the audit found errors and
// 2 on usage or load failures.
func run(args []string, out io.Writer, log *logger.Logger) int {
	fs := flag.NewFlagSet("country-audit", flag.ContinueOnError)
	fs.SetOutput(out)
	file := fs.String("file", "", "YAML country table to audit instead of the built-in table")
	territories := fs.Bool("territories", false, "include territories")
	sample := fs.String("sample", "", "digits to format keystroke by keystroke")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var base []countries.Country
	if *file != "" {
		loaded, err := countries.LoadFile(*file)
		if err != nil {
			log.Error("failed to load country table", "file", *file, "error", err)
			return 2
		}
		base = loaded
	}

	list := countries.List(countries.ListOptions{Base: base, IncludeTerritories: *territories})
	findings := countries.Audit(list)
	for _, f := range findings {
		log.AuditFinding(f.Code, string(f.Severity), f.Message)
	}
	log.Info("country audit complete", "countries", len(list), "findings", len(findings))

	if digits := sanitize.Digits(*sample); digits != "" {
		for i := 1; i <= len(digits); i++ {
			prefix := digits[:i]
			c := telinput.Detect(prefix, list)
			code := "-"
			if c != nil {
				code = c.Code
			}
			fmt.Fprintf(out, "%-16s %-3s %s\n", prefix, code, telinput.Format(prefix, c))
		}
	}

	if countries.HasErrors(findings) {
		return 1
	}
	return 0
}
