// Package common holds enums shared between configuration and commands so
// subcommand packages do not need to import config.
package common

// Specification of requested output rendering.
// ENUM(text, css, json)
type OutputFmt int

// Ext returns the conventional file extension for the format.
func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtCss:
		return ".css"
	case OutputFmtJson:
		return ".json"
	case OutputFmtText:
		return ".txt"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
