package wallet

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// This file implements the store file format: a single JSON array of record
// objects, pretty-printed with a 4-space indent, non-ASCII text emitted
// literally. An empty stream is equivalent to an empty array.

// jrecord is the object read from the store using the json parser. Fields are
// pointers so that a missing property can be told apart from a zero value.
type jrecord struct {
	Date        *string  `json:"date"`
	Category    *string  `json:"category"`
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
}

// DecodeRecords reads a whole store stream and returns its records in file
// order.
//
// A blank stream decodes to no records. A syntax error is returned as a
// *json.SyntaxError so that callers can decide to treat the store as empty; a
// structurally broken record (not an object, missing property, wrong property
// type) is a plain error: the store is corrupted and silently dropping
// entries would hide it.
func DecodeRecords(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read store: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(elements))
	for i, element := range elements {
		var jr jrecord
		if err := json.Unmarshal(element, &jr); err != nil {
			return nil, fmt.Errorf("parse error in record %d: %w", i, err)
		}
		if err := jr.check(i); err != nil {
			return nil, err
		}
		records = append(records, Record{
			Date:        *jr.Date,
			Category:    *jr.Category,
			Amount:      *jr.Amount,
			Description: *jr.Description,
		})
	}
	return records, nil
}

// check verifies that all four properties were present in record i.
func (jr jrecord) check(i int) error {
	missing := func(name string) error {
		return fmt.Errorf("parse error in record %d: missing the property %q", i, name)
	}
	switch {
	case jr.Date == nil:
		return missing("date")
	case jr.Category == nil:
		return missing("category")
	case jr.Amount == nil:
		return missing("amount")
	case jr.Description == nil:
		return missing("description")
	}
	return nil
}

// EncodeRecords writes records to w in the store file format. A nil slice is
// written as an empty array so a fresh store is still a valid JSON document.
func EncodeRecords(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("cannot encode records: %w", err)
	}
	return nil
}
