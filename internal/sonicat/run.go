package sonicat

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"github.com/mys721tx/sonicat/config"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// parseCmdFlags gathers the in and out paths from a cobra cmd object. The
// numeric parameters come from config (viper) instead, where the command
// line flags are bound.
func parseCmdFlags(cmd *cobra.Command) (in, out string) {
	var err error
	if in, err = cmd.Flags().GetString("in"); err != nil {
		stderr.Fatal(err)
	}
	if out, err = cmd.Flags().GetString("out"); err != nil {
		stderr.Fatal(err)
	}

	return in, out
}

// MutateCmd takes a cobra command (with its flags) and runs Mutate.
func MutateCmd(cmd *cobra.Command, args []string) {
	in, out := parseCmdFlags(cmd)
	c := config.New()

	if err := Mutate(in, out, c.Substitution, c.Insertion, c.Deletion, nil); err != nil {
		stderr.Fatalln(err)
	}
}

// ShearCmd takes a cobra command (with its flags) and runs Shear.
func ShearCmd(cmd *cobra.Command, args []string) {
	in, out := parseCmdFlags(cmd)
	c := config.New()

	if err := Shear(in, out, c.Depth, c.Length, nil); err != nil {
		stderr.Fatalln(err)
	}
}

// Mutate streams records from in to out, injecting per-base substitution,
// insertion and deletion errors at the given rates. Identifiers and
// descriptions are carried over verbatim. Any read, write or configuration
// error aborts the run; records already written stay written.
func Mutate(in, out string, s, i, d float64, src rand.Source) error {
	m, err := NewMutator(s, i, d, src)
	if err != nil {
		return err
	}

	fin, err := openInput(in)
	if err != nil {
		return err
	}
	defer fin.Close()

	fout, err := openOutput(out)
	if err != nil {
		return err
	}
	defer fout.Close()

	r := NewSeqReader(fin)
	w := NewSeqWriter(fout)
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		rec.Seq = m.MutateSeq(rec.Seq)
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	return w.Flush()
}

// Shear streams records from in to out, breaking every sequence into
// overlapping length-sized fragments replicated to a Poisson(depth) depth.
// Fragments are written as they are drawn; ids keep counting up across
// input sequences.
func Shear(in, out string, depth float64, length int, src rand.Source) error {
	s, err := NewSonicator(depth, length, src)
	if err != nil {
		return err
	}

	fin, err := openInput(in)
	if err != nil {
		return err
	}
	defer fin.Close()

	fout, err := openOutput(out)
	if err != nil {
		return err
	}
	defer fout.Close()

	r := NewSeqReader(fin)
	w := NewSeqWriter(fout)
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		err = s.Shear(rec.Seq, func(id string, frag []byte) error {
			return w.Write(Record{ID: id, Seq: frag})
		})
		if err != nil {
			return err
		}
	}

	return w.Flush()
}
