package wallet

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
)

// Wallet is an ordered collection of records backed by a single store file.
//
// Insertion order is the only iteration order, and the position of a record
// is its address for Edit and Remove. Every successful mutation synchronously
// rewrites the whole file, so the store always matches the in-memory state.
// There is no locking: the wallet is a single-user, single-process store and
// the last writer wins.
type Wallet struct {
	filename string
	records  []Record
}

// Open loads the wallet stored in filename.
//
// A missing, empty or syntactically broken store is the normal state of a
// fresh wallet and yields an empty one. A store that parses but holds a
// malformed record (missing property, wrong property type) is corrupted and
// returns an error instead.
func Open(filename string) (*Wallet, error) {
	w := &Wallet{filename: filename}
	if err := w.load(); err != nil {
		return nil, err
	}
	return w, nil
}

// load reads the whole store file into w.records.
func (w *Wallet) load() error {
	f, err := os.Open(w.filename)
	if errors.Is(err, fs.ErrNotExist) {
		w.records = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot open store %q: %w", w.filename, err)
	}
	defer f.Close()

	records, err := DecodeRecords(f)
	var syntax *json.SyntaxError
	if errors.As(err, &syntax) {
		// Not a JSON document at all. Same recovery as a missing file.
		log.Printf("store %q is not valid JSON, starting empty", w.filename)
		w.records = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot load store %q: %w", w.filename, err)
	}
	w.records = records
	return nil
}

// Save rewrites the store file from the in-memory records.
func (w *Wallet) Save() error {
	f, err := os.Create(w.filename)
	if err != nil {
		return fmt.Errorf("cannot create store %q: %w", w.filename, err)
	}
	defer f.Close()

	if err := EncodeRecords(f, w.records); err != nil {
		return fmt.Errorf("cannot save store %q: %w", w.filename, err)
	}
	return nil
}

// Filename returns the path of the store file backing this wallet.
func (w *Wallet) Filename() string { return w.filename }

// Len returns the number of records in the wallet.
func (w *Wallet) Len() int { return len(w.records) }

// Records returns the records in insertion order. The slice is a copy: the
// wallet exclusively owns its record list.
func (w *Wallet) Records() []Record {
	records := make([]Record, len(w.records))
	copy(records, w.records)
	return records
}

// Record returns the record at index i.
func (w *Wallet) Record(i int) (Record, bool) {
	if i < 0 || i >= len(w.records) {
		return Record{}, false
	}
	return w.records[i], true
}

// Add appends a record to the wallet and persists the store. Duplicates are
// allowed; the wallet imposes no uniqueness of any kind.
func (w *Wallet) Add(r Record) error {
	w.records = append(w.records, r)
	return w.Save()
}

// Edit replaces the record at index i wholesale and persists the store. It
// reports whether the index was in range; out of range leaves the wallet
// untouched.
func (w *Wallet) Edit(i int, r Record) (bool, error) {
	if i < 0 || i >= len(w.records) {
		return false, nil
	}
	w.records[i] = r
	return true, w.Save()
}

// Remove deletes the record at index i, shifting subsequent records down, and
// persists the store. It reports whether the index was in range.
func (w *Wallet) Remove(i int) (bool, error) {
	if i < 0 || i >= len(w.records) {
		return false, nil
	}
	w.records = append(w.records[:i], w.records[i+1:]...)
	return true, w.Save()
}

// Find returns the records matching term, preserving insertion order.
//
// A record matches when, case-insensitively, term is a substring of its
// description, of its category, or of its amount text, or when term equals
// its date exactly. The date is deliberately not a substring match: searching
// "2023" should not return the whole year.
func (w *Wallet) Find(term string) []Record {
	q := strings.ToLower(term)
	var found []Record
	for _, r := range w.records {
		if strings.Contains(strings.ToLower(r.Description), q) ||
			strings.Contains(strings.ToLower(r.Category), q) ||
			strings.Contains(strings.ToLower(r.AmountText()), q) ||
			q == strings.ToLower(r.Date) {
			found = append(found, r)
		}
	}
	return found
}
