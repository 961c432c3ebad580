package types

// InspectRadices are the bases shown when describing a single value.
var InspectRadices = []Radix{2, 8, 10, 16, 36}

// ConversionRequest asks for Input, written in From, to be rewritten in To.
type ConversionRequest struct {
	Input Numeral
	From  Radix
	To    Radix
}

// Conversion is a completed conversion.
type Conversion struct {
	Input   Numeral
	From    Radix
	To      Radix
	Output  Numeral
	Decimal int64 // canonical intermediate value
}

// Rendering is one value written in one base.
type Rendering struct {
	Radix   Radix
	Numeral Numeral
}
