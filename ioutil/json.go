package ioutil

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"os"
)

// ReadJSONFile decodes the JSON document at path into v.
func ReadJSONFile(path string, v interface{}) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// ParseJSONString decodes the JSON document held in s into v.
func ParseJSONString(s string, v interface{}) error {
	if err := json.Unmarshal([]byte(s), v); err != nil {
		return fmt.Errorf("decoding json string: %w", err)
	}
	return nil
}

// ReadJSONFromZip decodes the JSON document stored at member inside a ZIP
// archive into v. Used to read an optional manifest (e.g. a
// conversion-options override) bundled alongside a GTFS feed's CSV tables.
func ReadJSONFromZip(zr *zip.Reader, member string, v interface{}) error {
	f, err := zr.Open(member)
	if err != nil {
		return fmt.Errorf("opening %s in archive: %w", member, err)
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", member, err)
	}
	return nil
}
