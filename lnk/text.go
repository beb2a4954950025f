package lnk

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/eikit/errs"
)

// WriteText writes the table as text, one "child<TAB>parent" line per record.
func (f *File) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, rec := range f.Records {
		if strings.ContainsAny(rec.Child, "\t\r\n") || strings.ContainsAny(rec.Parent, "\t\r\n") {
			return fmt.Errorf("record %d: tab or line break in name: %w", i, errs.ErrInvalidName)
		}
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", rec.Child, rec.Parent); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ParseText reads the text form written by WriteText. Blank lines are skipped;
// a line without a tab is a child with no parent.
func ParseText(r io.Reader) (*File, error) {
	f := &File{}
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSuffix(sc.Text(), "\r")
		if text == "" {
			continue
		}
		child, parent, _ := strings.Cut(text, "\t")
		if strings.Contains(parent, "\t") {
			return nil, fmt.Errorf("line %d: more than two fields: %w", line, errs.ErrCorruptData)
		}
		f.Records = append(f.Records, Record{Child: child, Parent: parent})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return f, nil
}
