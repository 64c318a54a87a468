package grading

//
// Response is the wire shape of a verdict.
// Conversion is present only for correct/incorrect, Message mostly for invalid.
//
type Response struct {
	Output     Output `json:"output"`
	Conversion string `json:"conversion,omitempty"`
	Message    string `json:"message,omitempty"`
}

// ToResponse maps a verdict onto its wire shape.
func ToResponse(v Verdict) Response {
	r := Response{Output: v.Output, Message: v.Message}
	if c, ok := v.Conversion(); ok && v.Output != Invalid {
		r.Conversion = c
	}
	return r
}
