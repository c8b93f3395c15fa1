// Package corpus discovers the monthly source documents of a papers corpus.
//
// Source documents live directly inside one directory and are named YYYY-MM.md.
// Organize groups them by year so the converter can walk them in order.
package corpus
