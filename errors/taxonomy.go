// Package errors defines the structured error taxonomy shared across the
// TXC parser, the GTFS feed layer, and the converter. Every error here is a
// concrete struct implementing error, never a bare string, so callers can
// switch on type (or on the narrower GtfsError/TxcError marker interfaces)
// to decide how to react.
package errors

import (
	"fmt"

	"github.com/transitkit/txc-gtfs/model"
)

// TransitParserError is the root marker implemented by every error in this
// taxonomy, so a caller can catch the base category (via errors.As against
// this interface) without naming every leaf kind individually.
type TransitParserError interface {
	error
	isTransitParserError()
}

// GtfsError is implemented by every GTFS-side error variant.
type GtfsError interface {
	TransitParserError
	isGtfsError()
}

// TxcError is implemented by every TXC-side error variant.
type TxcError interface {
	TransitParserError
	isTxcError()
}

// GtfsFileNotFoundError reports that a required GTFS table is absent from
// the source directory or archive.
type GtfsFileNotFoundError struct {
	Path         string
	MissingFiles []string
}

func (e *GtfsFileNotFoundError) Error() string {
	return fmt.Sprintf("gtfs feed %q: missing required file(s): %v", e.Path, e.MissingFiles)
}
func (*GtfsFileNotFoundError) isGtfsError()          {}
func (*GtfsFileNotFoundError) isTransitParserError() {}

// GtfsParseError reports a malformed row in a GTFS CSV table.
type GtfsParseError struct {
	FileName   string
	LineNumber int
	Column     string
	Reason     string
}

func (e *GtfsParseError) Error() string {
	return fmt.Sprintf("%s:%d: column %q: %s", e.FileName, e.LineNumber, e.Column, e.Reason)
}
func (*GtfsParseError) isGtfsError()          {}
func (*GtfsParseError) isTransitParserError() {}

// GtfsValidationError reports that a loaded feed failed referential or
// structural integrity checks.
type GtfsValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *GtfsValidationError) Error() string {
	return fmt.Sprintf("gtfs feed failed validation: %d error(s), %d warning(s)", len(e.Errors), len(e.Warnings))
}
func (*GtfsValidationError) isGtfsError()          {}
func (*GtfsValidationError) isTransitParserError() {}

// TxcFileNotFoundError reports that a TXC source path does not exist or
// could not be opened.
type TxcFileNotFoundError struct {
	Path string
}

func (e *TxcFileNotFoundError) Error() string {
	return fmt.Sprintf("txc document not found: %s", e.Path)
}
func (*TxcFileNotFoundError) isTxcError()          {}
func (*TxcFileNotFoundError) isTransitParserError() {}

// TxcParseError reports malformed XML. ByteOffset is -1 when the decoder
// could not attribute the failure to a specific offset.
type TxcParseError struct {
	FileName   string
	ByteOffset int64
	Reason     string
}

func (e *TxcParseError) Error() string {
	if e.FileName != "" {
		return fmt.Sprintf("%s: xml parse error at byte %d: %s", e.FileName, e.ByteOffset, e.Reason)
	}
	return fmt.Sprintf("xml parse error at byte %d: %s", e.ByteOffset, e.Reason)
}
func (*TxcParseError) isTxcError()          {}
func (*TxcParseError) isTransitParserError() {}

// TxcValidationError reports that a parsed TXC document failed semantic
// checks applied above the tolerant parser (currently unused by the core
// parser, which prefers warnings; reserved for stricter callers).
type TxcValidationError struct {
	Errors   []string
	Warnings []string
}

func (e *TxcValidationError) Error() string {
	return fmt.Sprintf("txc document failed validation: %d error(s), %d warning(s)", len(e.Errors), len(e.Warnings))
}
func (*TxcValidationError) isTxcError()          {}
func (*TxcValidationError) isTransitParserError() {}

// ConversionError reports that a TXC→GTFS conversion could not produce the
// minimum viable output (at least one trip with at least two stop_times).
type ConversionError struct {
	Stats    map[string]int
	Warnings []model.Warning
	Reason   string
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion failed: %s (%d warnings)", e.Reason, len(e.Warnings))
}
func (*ConversionError) isTransitParserError() {}

// MappingError reports that a source reference could not be mapped to a
// target GTFS entity kind.
type MappingError struct {
	SourceRef  string
	TargetKind string
	Reason     string
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping %s to %s: %s", e.SourceRef, e.TargetKind, e.Reason)
}
func (*MappingError) isTransitParserError() {}

// CalendarConversionError reports that an OperatingProfile could not be
// expanded into a GTFS calendar.
type CalendarConversionError struct {
	ProfileFingerprint string
	Reason             string
}

func (e *CalendarConversionError) Error() string {
	return fmt.Sprintf("calendar conversion for profile %s: %s", e.ProfileFingerprint, e.Reason)
}
func (*CalendarConversionError) isTransitParserError() {}

// FilterError reports that an index-backed query could not be answered.
type FilterError struct {
	Query  string
	Reason string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("filter query %q: %s", e.Query, e.Reason)
}
func (*FilterError) isTransitParserError() {}

// InvalidDateError reports a date string that does not parse as YYYY-MM-DD.
type InvalidDateError struct {
	DateString     string
	ExpectedFormat string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: expected format %s", e.DateString, e.ExpectedFormat)
}
func (*InvalidDateError) isTransitParserError() {}
