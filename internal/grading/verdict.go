package grading

// Output is the three-way grading outcome.
type Output string

const (
	Correct   Output = "correct"
	Incorrect Output = "incorrect"
	Invalid   Output = "invalid"
)

// ConversionFailed prefixes the message of every invalid verdict.
const ConversionFailed = "Conversion failed or not supported due to invalid units or other issues"

//
// Verdict is the result of grading one submission.
// Correct and Incorrect verdicts always carry the converted value,
// Invalid verdicts never do; the constructors below keep that true.
//
type Verdict struct {
	Output  Output
	Message string
	// Reason is the classified error behind an invalid verdict
	Reason error

	conversion    string
	hasConversion bool
}

func correct(converted float64) Verdict {
	return Verdict{Output: Correct, conversion: FormatValue(converted), hasConversion: true}
}

func incorrect(converted float64) Verdict {
	return Verdict{Output: Incorrect, conversion: FormatValue(converted), hasConversion: true}
}

func invalid(reason error) Verdict {
	return Verdict{
		Output:  Invalid,
		Message: ConversionFailed + ": " + reason.Error(),
		Reason:  reason,
	}
}

// Conversion returns the converted value as text, if the verdict has one.
func (v Verdict) Conversion() (string, bool) {
	return v.conversion, v.hasConversion
}

// Reject builds an invalid verdict for a submission that could not be
// read at all, e.g. a body that is not JSON.
func Reject(reason error) Verdict {
	return invalid(reason)
}
