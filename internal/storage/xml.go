// Package storage persists record collections as XML documents. The
// root and per-record element names come from the record kind; the
// three field tags are shared by every kind.
package storage

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/vsokolov/departures/internal/record"
)

// Field tag names inside each entry element.
const (
	nameTag = "name"
	noTag   = "no"
	timeTag = "time"
)

// ParseError reports an XML document that could not be decoded.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the XML document at path and returns the records it
// contains, in document order. Times are not re-validated and the
// order is not changed: file content is trusted verbatim.
//
// An entry that never accumulates all three of name, no and time
// contributes nothing. An empty field element counts as missing, and
// an empty repeat resets a previously seen value. The completeness
// check runs after every child element of an entry, whatever its tag,
// so an entry is emitted as soon as its third field has been seen and
// again for each further child element.
func Load(path string, kind record.Kind) ([]record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	dec := xml.NewDecoder(f)

	var (
		recs    []record.Record
		depth   int
		sawRoot bool

		name, no, timeStr *string
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			switch depth {
			case 1:
				sawRoot = true
			case 2:
				name, no, timeStr = nil, nil, nil
			case 3:
				var text string
				if err := dec.DecodeElement(&text, &t); err != nil {
					return nil, &ParseError{Path: path, Err: err}
				}
				depth-- // DecodeElement consumed the closing tag

				val := &text
				if text == "" {
					val = nil // an empty element leaves the field unset
				}
				switch t.Name.Local {
				case nameTag:
					name = val
				case noTag:
					no = val
				case timeTag:
					timeStr = val
				}
				if name != nil && no != nil && timeStr != nil {
					recs = append(recs, record.Record{Name: *name, No: *no, Time: *timeStr})
				}
			}
		case xml.EndElement:
			depth--
		}
	}

	if !sawRoot {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("no root element")}
	}
	return recs, nil
}

// Save writes recs to path as an XML document in the shape Load
// expects, in the given order, overwriting any existing file. The
// document carries a UTF-8 declaration.
func Save(path string, kind record.Kind, recs []record.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	write := func() error {
		if _, err := f.WriteString(xml.Header); err != nil {
			return err
		}

		enc := xml.NewEncoder(f)
		enc.Indent("", "  ")

		root := xml.StartElement{Name: xml.Name{Local: kind.RootTag}}
		tokens := []xml.Token{root}
		for _, r := range recs {
			entry := xml.StartElement{Name: xml.Name{Local: kind.EntryTag}}
			tokens = append(tokens, entry)
			for _, field := range [...]struct{ tag, value string }{
				{nameTag, r.Name},
				{noTag, r.No},
				{timeTag, r.Time},
			} {
				el := xml.StartElement{Name: xml.Name{Local: field.tag}}
				tokens = append(tokens, el, xml.CharData(field.value), el.End())
			}
			tokens = append(tokens, entry.End())
		}
		tokens = append(tokens, root.End())

		for _, tok := range tokens {
			if err := enc.EncodeToken(tok); err != nil {
				return err
			}
		}
		return enc.Flush()
	}

	if err := write(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
