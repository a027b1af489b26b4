package sonicat

import (
	"io"
	"os"
	"strings"

	"github.com/TuftsBCB/io/fasta"
	"github.com/TuftsBCB/seq"
)

// Record is one FASTA entry: an identifier, an optional free-text
// description and the raw symbol data. Symbols are opaque bytes; no case
// normalization or alphabet check happens here.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// SeqReader reads Records off a FASTA stream one at a time.
type SeqReader struct {
	r *fasta.Reader
}

// NewSeqReader wraps an input FASTA stream.
func NewSeqReader(r io.Reader) *SeqReader {
	fr := fasta.NewReader(r)
	fr.TrustSequences = true // round-trip ambiguity codes and case as-is

	return &SeqReader{r: fr}
}

// Next returns the next record, or io.EOF at the end of the stream.
func (r *SeqReader) Next() (Record, error) {
	s, err := r.r.Read()
	if err != nil {
		return Record{}, err
	}

	id, desc := splitHeader(s.Name)
	return Record{ID: id, Desc: desc, Seq: s.Bytes()}, nil
}

// splitHeader splits a FASTA header into the identifier (the first
// space-delimited word) and the description following it, if any.
func splitHeader(name string) (id, desc string) {
	if j := strings.IndexByte(name, ' '); j >= 0 {
		return name[:j], name[j+1:]
	}
	return name, ""
}

// SeqWriter appends Records to a FASTA stream in the order written.
type SeqWriter struct {
	w *fasta.Writer
}

// NewSeqWriter wraps an output FASTA stream.
func NewSeqWriter(w io.Writer) *SeqWriter {
	return &SeqWriter{w: fasta.NewWriter(w)}
}

// Write appends one record.
func (w *SeqWriter) Write(rec Record) error {
	name := rec.ID
	if rec.Desc != "" {
		name += " " + rec.Desc
	}

	return w.w.Write(seq.NewSequenceString(name, string(rec.Seq)))
}

// Flush writes any buffered records to the underlying stream.
func (w *SeqWriter) Flush() error {
	return w.w.Flush()
}

// openInput opens the input FASTA path, falling back to stdin when empty.
func openInput(path string) (io.ReadCloser, error) {
	if path == "" {
		return os.Stdin, nil
	}
	return os.Open(path)
}

// openOutput creates the output path, falling back to stdout when empty.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return os.Stdout, nil
	}
	return os.Create(path)
}
