package dsl

import oaskema "github.com/reoring/oaskema"

// Bound configures Range and Clamp.
type Bound func(*oaskema.Range)

// Min sets an inclusive lower bound.
func Min(v float64) Bound {
	return func(r *oaskema.Range) { r.Min, r.MinExcluded = &v, false }
}

// Max sets an inclusive upper bound.
func Max(v float64) Bound {
	return func(r *oaskema.Range) { r.Max, r.MaxExcluded = &v, false }
}

// MinExclusive sets an open lower bound.
func MinExclusive(v float64) Bound {
	return func(r *oaskema.Range) { r.Min, r.MinExcluded = &v, true }
}

// MaxExclusive sets an open upper bound.
func MaxExclusive(v float64) Bound {
	return func(r *oaskema.Range) { r.Max, r.MaxExcluded = &v, true }
}

// Range bounds a number.
func Range(bounds ...Bound) *oaskema.Range {
	r := &oaskema.Range{}
	for _, b := range bounds {
		b(r)
	}
	return r
}

// Clamp bounds a number inclusively; exclusivity requested by bounds is
// ignored.
func Clamp(bounds ...Bound) *oaskema.Clamp {
	r := Range(bounds...)
	return &oaskema.Clamp{Min: r.Min, Max: r.Max}
}

// LengthBound configures Length.
type LengthBound func(*oaskema.Length)

// MinLen sets the minimum length.
func MinLen(n int) LengthBound { return func(l *oaskema.Length) { l.Min = &n } }

// MaxLen sets the maximum length.
func MaxLen(n int) LengthBound { return func(l *oaskema.Length) { l.Max = &n } }

// Length bounds the length of a string.
func Length(bounds ...LengthBound) *oaskema.Length {
	l := &oaskema.Length{}
	for _, b := range bounds {
		b(l)
	}
	return l
}

// Match requires a string to match expr.
func Match(expr string) *oaskema.Pattern { return &oaskema.Pattern{Expr: expr} }

// Datetime is a date-time string.
func Datetime() *oaskema.Datetime { return &oaskema.Datetime{Layout: "2006-01-02T15:04:05.000Z"} }

// DatetimeLayout is a date-time string with a custom layout.
func DatetimeLayout(layout string) *oaskema.Datetime { return &oaskema.Datetime{Layout: layout} }

// Named formats and string shape markers.
func Email() *oaskema.Format      { return &oaskema.Format{Name: "Email"} }
func URL() *oaskema.Format        { return &oaskema.Format{Name: "Url"} }
func FqdnURL() *oaskema.Format    { return &oaskema.Format{Name: "FqdnUrl"} }
func Lower() *oaskema.Format      { return &oaskema.Format{Name: "Lower"} }
func Upper() *oaskema.Format      { return &oaskema.Format{Name: "Upper"} }
func Capitalize() *oaskema.Format { return &oaskema.Format{Name: "Capitalize"} }
func Title() *oaskema.Format      { return &oaskema.Format{Name: "Title"} }
func Strip() *oaskema.Format      { return &oaskema.Format{Name: "Strip"} }

// Format tags a string with an arbitrary format name.
func Format(name string) *oaskema.Format { return &oaskema.Format{Name: name} }
