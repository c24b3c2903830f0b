package record

import "sort"

// Store holds an ordered collection of records, kept sorted by
// destination name after every Add. It is not safe for concurrent
// use; the command loop owns it exclusively.
type Store struct {
	kind    Kind
	records []Record
}

// NewStore returns an empty store for the given record kind.
func NewStore(kind Kind) *Store {
	return &Store{kind: kind}
}

// Kind returns the record kind this store was created with.
func (s *Store) Kind() Kind {
	return s.kind
}

// Add validates the departure time, appends a record keeping the
// original time string, and re-sorts the collection by name. The sort
// is stable, so records with equal names keep their insertion order.
// On a validation error the store is left unchanged.
func (s *Store) Add(name, no, timeStr string) error {
	if _, _, err := parseTime(timeStr); err != nil {
		return err
	}

	s.records = append(s.records, Record{Name: name, No: no, Time: timeStr})
	sort.SliceStable(s.records, func(i, j int) bool {
		return s.records[i].Name < s.records[j].Name
	})
	return nil
}

// Select returns all records whose number equals no, in store order.
// Numbers are compared as strings; no match yields an empty result,
// not an error.
func (s *Store) Select(no string) []Record {
	var result []Record
	for _, r := range s.records {
		if r.No == no {
			result = append(result, r)
		}
	}
	return result
}

// Replace swaps in a new record sequence wholesale. Unlike Add it
// neither validates times nor sorts: loaded data is trusted verbatim.
func (s *Store) Replace(recs []Record) {
	s.records = recs
}

// Records returns the current sequence in store order.
func (s *Store) Records() []Record {
	return s.records
}

// Len returns the number of records in the store.
func (s *Store) Len() int {
	return len(s.records)
}
