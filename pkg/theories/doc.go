// Package theories hosts theory definitions usable with SMT backends.
// Each sub package provides the sorts, node values and logic names of
// one fragment of SMT-LIB2.
package theories
