package sonicat

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"
)

func Test_splitHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		id, desc string
	}{
		{"id only", "seq1", "seq1", ""},
		{"id and description", "seq1 first test sequence", "seq1", "first test sequence"},
		{"description keeps its spaces", "chr1 assembly GRCh38  primary", "chr1", "assembly GRCh38  primary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, desc := splitHeader(tt.header)
			if id != tt.id || desc != tt.desc {
				t.Errorf("splitHeader(%q) = %q, %q, want %q, %q", tt.header, id, desc, tt.id, tt.desc)
			}
		})
	}
}

func TestSeqReader(t *testing.T) {
	in := strings.NewReader(">seq1 first test sequence\nACGT\nACGT\n>seq2\nNNNNRYKM\n")

	r := NewSeqReader(in)
	want := []Record{
		{ID: "seq1", Desc: "first test sequence", Seq: []byte("ACGTACGT")},
		{ID: "seq2", Seq: []byte("NNNNRYKM")},
	}

	for _, wr := range want {
		rec, err := r.Next()
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(rec, wr) {
			t.Errorf("Next() = %+v, want %+v", rec, wr)
		}
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next() past the last record returned %v, want io.EOF", err)
	}
}

func TestSeqIO_roundTrip(t *testing.T) {
	records := []Record{
		{ID: "seq1", Desc: "a described record", Seq: []byte("GATTACA")},
		{ID: "chr1", Seq: []byte("AAAACCCCGGGG")},
		{ID: "odd", Seq: []byte("acgtNRY-")},
	}

	buf := new(bytes.Buffer)
	w := NewSeqWriter(buf)
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	r := NewSeqReader(buf)
	for _, want := range records {
		rec, err := r.Next()
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(rec, want) {
			t.Errorf("round trip returned %+v, want %+v", rec, want)
		}
	}

	if _, err := r.Next(); err != io.EOF {
		t.Errorf("Next() past the last record returned %v, want io.EOF", err)
	}
}
