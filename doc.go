// Package hfst implements a read-only runtime for transducers stored in
// the HFST "optimized-lookup" binary format.
//
// # Overview
//
// An HFST optimized-lookup file packs a finite-state transducer into a
// fixed header, a NUL-terminated symbol alphabet, and two flat tables
// (an index table and a transition table) addressed by a single
// partitioned integer space. Open reads and decodes all of this into
// memory once; Lookup then walks the tables for a given input string
// and returns every (output string, weight) analysis the transducer
// accepts.
//
// This package does not compile, minimize, compose, or write
// transducers. It only reads them.
//
// # Basic Usage
//
//	tr, err := hfst.Open("analyzer.hfstol")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, a := range tr.Lookup("koira+N+Sg+Nom") {
//	    fmt.Printf("%s\t%g\n", a.Output, a.Weight)
//	}
//
// # Flag Diacritics
//
// Symbols of the form "@OP.FEATURE.VALUE@" do not appear in output;
// they guard or mutate a small feature/value stack used to enforce
// long-distance morphotactic constraints (e.g. case agreement) without
// exploding the automaton's state count. See FlagOperator for the
// supported operators.
//
// # Performance Characteristics
//
// Open performs one pass over the file contents and allocates the
// transducer's tables and a rune trie for tokenization; nothing further
// is allocated until a Lookup call. Lookup itself is synchronous,
// single-threaded, and recursive over the decoded tables; a Transducer
// is immutable after Open and safe to share across goroutines as long
// as each concurrent Lookup call is made independently (there is no
// shared mutable lookup state).
package hfst
