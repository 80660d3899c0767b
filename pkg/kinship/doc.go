// Package kinship resolves a classified relation path into a Vietnamese
// address title. The vocabulary is a closed Title type; the resolver is an
// ordered rule table with deterministic tie-breaks, and the greeting table
// is an exhaustive switch over the same closed type so that adding a title
// forces both tables to be revisited together.
package kinship
