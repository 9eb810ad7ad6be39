package scoring

import "github.com/jonathan/career-compass/internal/types"

// Salary compatibility constants.
const (
	// currencyMismatchScore applies when ranges cannot be compared directly.
	currencyMismatchScore = 0.8
	// aboveExpectationFloor is the floor when the career pays more than the
	// user expects; earning more is never a strong mismatch.
	aboveExpectationFloor = 0.3
)

// salaryCompatibility scores the overlap between the user's expectation and
// the career's salary band. Returns the score and the explanation tag.
func salaryCompatibility(expectation, career types.SalaryRange) (float64, string) {
	if expectation.IsZero() {
		return 1.0, types.SalaryUnknown
	}
	if career.IsZero() {
		return 1.0, types.SalaryUnknown
	}

	if expectation.Currency != "" && career.Currency != "" &&
		expectation.Currency != career.Currency {
		return currencyMismatchScore, types.SalaryUnknown
	}

	// Career band entirely below expectations.
	if career.Max < expectation.Min {
		if expectation.Min <= 0 {
			return 0.0, types.SalaryBelowExpected
		}
		score := 1.0 - (expectation.Min-career.Max)/expectation.Min
		if score < 0 {
			score = 0.0
		}
		return score, types.SalaryBelowExpected
	}

	// Career band entirely above expectations.
	if career.Min > expectation.Max {
		if expectation.Max <= 0 {
			return aboveExpectationFloor, types.SalaryAboveExpected
		}
		score := 1.0 - (career.Min-expectation.Max)/(2*expectation.Max)
		if score < aboveExpectationFloor {
			score = aboveExpectationFloor
		}
		return score, types.SalaryAboveExpected
	}

	// Overlapping bands: average the overlap's share of each range.
	overlapLow := expectation.Min
	if career.Min > overlapLow {
		overlapLow = career.Min
	}
	overlapHigh := expectation.Max
	if career.Max < overlapHigh {
		overlapHigh = career.Max
	}
	overlap := overlapHigh - overlapLow

	userShare := rangeShare(overlap, expectation.Max-expectation.Min)
	careerShare := rangeShare(overlap, career.Max-career.Min)

	return clamp01((userShare + careerShare) / 2), types.SalaryCompatible
}

// rangeShare is the overlap's fraction of a range. Point ranges that overlap
// at all count as fully covered.
func rangeShare(overlap, size float64) float64 {
	if size <= 0 {
		return 1.0
	}
	share := overlap / size
	if share > 1 {
		return 1.0
	}
	return share
}
