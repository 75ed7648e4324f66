// Package radec formats and parses sexagesimal right-ascension and
// declination coordinate strings.
//
// Right ascension is rendered in hours, minutes and seconds of time
// ("HH:MM:SS.SS"); declination in signed degrees, arcminutes and arcseconds
// ("+DD:MM:SS.SS"). Both degree and radian entry points are provided.
//
// # Usage
//
//	s := radec.FormatRADeg(186.65) // "12:26:36.00"
//	d := radec.FormatDecDeg(-32.5) // "-32:30:00.00"
//
//	deg, err := radec.ParseRADeg("12:26:36.00")
//	deg, err = radec.ParseDecDeg("-32 30 00", radec.WithDelimiter(" "))
//
// The parse delimiter defaults to ":" and is interpreted as a regular
// expression fragment, so " " or "[:h ]" both work.
package radec
