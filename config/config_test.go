package config

import "testing"

// without flags, a settings file or env overrides, New falls back to the
// published default rates and sampling parameters
func TestNew_defaults(t *testing.T) {
	c := New()

	if c.Substitution != DefaultSubstitution {
		t.Errorf("Substitution = %v, want %v", c.Substitution, DefaultSubstitution)
	}
	if c.Insertion != DefaultInsertion {
		t.Errorf("Insertion = %v, want %v", c.Insertion, DefaultInsertion)
	}
	if c.Deletion != DefaultDeletion {
		t.Errorf("Deletion = %v, want %v", c.Deletion, DefaultDeletion)
	}
	if c.Depth != DefaultDepth {
		t.Errorf("Depth = %v, want %v", c.Depth, DefaultDepth)
	}
	if c.Length != DefaultLength {
		t.Errorf("Length = %d, want %d", c.Length, DefaultLength)
	}
}
