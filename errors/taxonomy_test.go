package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGtfsErrorVariantsImplementMarker(t *testing.T) {
	var gtfsErrs []GtfsError = []GtfsError{
		&GtfsFileNotFoundError{Path: "x", MissingFiles: []string{"stops.txt"}},
		&GtfsParseError{FileName: "stops.txt", LineNumber: 2, Column: "stop_lat", Reason: "not a float"},
		&GtfsValidationError{Errors: []string{"bad"}, Warnings: []string{"meh"}},
	}
	for _, e := range gtfsErrs {
		assert.NotEmpty(t, e.Error())
	}
}

func TestTxcErrorVariantsImplementMarker(t *testing.T) {
	var txcErrs []TxcError = []TxcError{
		&TxcFileNotFoundError{Path: "doc.xml"},
		&TxcParseError{FileName: "doc.xml", ByteOffset: 42, Reason: "unexpected EOF"},
		&TxcValidationError{Errors: []string{"bad"}},
	}
	for _, e := range txcErrs {
		assert.NotEmpty(t, e.Error())
	}
}

func TestGtfsFileNotFoundErrorMessage(t *testing.T) {
	err := &GtfsFileNotFoundError{Path: "/feeds/x", MissingFiles: []string{"agency.txt", "stops.txt"}}
	assert.Contains(t, err.Error(), "/feeds/x")
	assert.Contains(t, err.Error(), "agency.txt")
}

func TestTxcParseErrorMessageWithAndWithoutFileName(t *testing.T) {
	withFile := &TxcParseError{FileName: "doc.xml", ByteOffset: 10, Reason: "bad token"}
	assert.Contains(t, withFile.Error(), "doc.xml")

	withoutFile := &TxcParseError{ByteOffset: 10, Reason: "bad token"}
	assert.NotContains(t, withoutFile.Error(), "doc.xml")
	assert.Contains(t, withoutFile.Error(), "bad token")
}

func TestConversionErrorMessage(t *testing.T) {
	err := &ConversionError{Reason: "no viable trips", Stats: map[string]int{"trips": 0}}
	assert.Contains(t, err.Error(), "no viable trips")
}

func TestInvalidDateErrorMessage(t *testing.T) {
	err := &InvalidDateError{DateString: "2026-13-40", ExpectedFormat: "YYYY-MM-DD"}
	assert.Contains(t, err.Error(), "2026-13-40")
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}
