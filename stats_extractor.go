// stats_extractor.go
package main

import (
	"regexp"
	"strconv"

	"github.com/mozillazg/go-unidecode"
)

// Stats holds the four descriptive statistics extracted from the
// description text. All values are percentages.
type Stats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

var (
	meanPattern   = regexp.MustCompile(`average is (\d+(?:\.\d+)?)%`)
	stdDevPattern = regexp.MustCompile(`deviation of (\d+(?:\.\d+)?)%`)
	rangePattern  = regexp.MustCompile(`from (\d+)% to (\d+)%`)
)

const parseErrorMessage = `could not parse statistics from the description. ` +
	`The text must contain the exact phrases "average is N%", "deviation of N%" and "from N% to N%", ` +
	`for example: "The class average is 77.31% with a standard deviation of 15.17%. Scores ranged from 24% to 100%."`

// ExtractStats pulls mean, standard deviation and score range out of a
// free-form description. All three phrases must be present; there are no
// partial results.
func ExtractStats(text string) (Stats, error) {
	// Fold typographic unicode (curly quotes, fullwidth percent signs
	// pasted from reports) to plain ASCII before matching.
	text = unidecode.Unidecode(text)

	meanMatch := meanPattern.FindStringSubmatch(text)
	stdDevMatch := stdDevPattern.FindStringSubmatch(text)
	rangeMatch := rangePattern.FindStringSubmatch(text)
	if meanMatch == nil || stdDevMatch == nil || rangeMatch == nil {
		return Stats{}, &ParseError{Message: parseErrorMessage}
	}

	mean, err := strconv.ParseFloat(meanMatch[1], 64)
	if err != nil {
		return Stats{}, &ParseError{Message: parseErrorMessage}
	}
	stdDev, err := strconv.ParseFloat(stdDevMatch[1], 64)
	if err != nil {
		return Stats{}, &ParseError{Message: parseErrorMessage}
	}
	min, err := strconv.ParseFloat(rangeMatch[1], 64)
	if err != nil {
		return Stats{}, &ParseError{Message: parseErrorMessage}
	}
	max, err := strconv.ParseFloat(rangeMatch[2], 64)
	if err != nil {
		return Stats{}, &ParseError{Message: parseErrorMessage}
	}

	return Stats{Mean: mean, StdDev: stdDev, Min: min, Max: max}, nil
}
