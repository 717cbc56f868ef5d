// Package goenum provides closed, named enumerations built from registered
// singletons:
//
// - Family[F] declares a fixed, ordered set of members identified by labels
// - Lookup by label, iteration in declaration order, and sealing after init
// - Stable identity across JSON, YAML, gob, text, SQL and flag boundaries:
// every decode hook returns the registered singleton, never a copy
// - A stable error model via *Error codes and batch Issues (JSON Pointer, code,
// message)
//
// Design policy:
// - Keep only public APIs in the root package; put storage under internal/.
// - Place converters under codec/, messages under i18n/, and the generator
// CLI under cmd/goenum.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	type colorTag struct{}
//	type Color = goenum.Member[colorTag]
//
//	var colors = goenum.MustFamily[colorTag]("Color")
//
//	var (
//		Red   = colors.MustDeclare("red")
//		Green = colors.MustDeclare("green")
//		Blue  = colors.MustDeclare("blue")
//	)
//
//	func init() { colors.Seal() }
//
//	c, err := colors.Lookup("green") // c == Green
//	_, err = colors.Lookup("purple")
//	// Value 'purple' is not a valid Color enumeration value.
package goenum
