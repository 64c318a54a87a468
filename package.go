//
// web service that grades a student's unit conversion.
// an educator submits a value, the unit it is in, the unit to convert
// to and the student's answer; the service converts the value itself
// and reports whether the student's answer is correct, incorrect,
// or whether the submission could not be graded at all (invalid).
//
// supported families are temperature (celsius, fahrenheit, kelvin,
// rankine) and volume (cubic-feet, cubic-inches, cups, gallons, liters,
// tablespoons).
//
package otfconvert
