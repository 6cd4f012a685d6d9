package variability

import "strings"

// DeclaredType is the storage class a column was declared with. The
// telemetry schema only uses the three SQLite classes below; anything
// unrecognized is handled as text.
type DeclaredType int

const (
	TypeInteger DeclaredType = iota
	TypeReal
	TypeText
)

// TypeOf maps a declared column type string (as reported by the schema)
// to its storage class.
func TypeOf(declared string) DeclaredType {
	d := strings.ToUpper(declared)
	switch {
	case strings.Contains(d, "INT"):
		return TypeInteger
	case strings.Contains(d, "REAL"), strings.Contains(d, "FLOA"), strings.Contains(d, "DOUB"):
		return TypeReal
	default:
		return TypeText
	}
}
