package main

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/width"

	wareki "github.com/rabitt1ove/jp-wareki"
)

// gregorianPattern matches 2024-05-01 and the 2024/5/1 form used by
// Cabinet Office CSV data.
var gregorianPattern = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})[-/](\d{1,2})$`)

// convert converts a single date in whichever direction its form implies:
// Gregorian input yields the wareki year ("令和6年"), wareki input yields
// an ISO date ("2024-05-01"). Fullwidth digits are accepted in both.
func convert(conv *wareki.Converter, s string) (string, error) {
	s = strings.TrimSpace(width.Fold.String(s))
	if m := gregorianPattern.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		w, err := conv.ToWareki(year, time.Month(month), day)
		if err != nil {
			return "", err
		}
		return w.String(), nil
	}

	d, err := conv.ParseGregorian(s)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// convertArgs converts each argument and writes one line per success.
// It returns an error if any argument failed.
func (a *app) convertArgs(args []string) error {
	failed := 0
	for _, arg := range args {
		out, err := convert(a.conv, arg)
		if err != nil {
			failed++
			a.logger.Error("conversion failed", zap.String("input", arg), zap.Error(err))
			continue
		}
		fmt.Fprintf(a.stdout, "%s\t%s\n", strings.TrimSpace(arg), out)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d dates failed to convert", failed, len(args))
	}
	return nil
}
