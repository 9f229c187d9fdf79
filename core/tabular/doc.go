// Package tabular parses the delimited text exports produced by RFID readers.
//
// The exports in the field are loosely structured: delimiters vary between
// comma, semicolon and tab (sometimes within one file), header rows may or
// may not be present, quoting is frequently unbalanced and row lengths are
// ragged. The decoder therefore never rejects individual rows; it produces
// whatever well-formed fields it can and lets the aggregation layer decide
// what to skip.
//
// The only fatal condition is input that is not text at all (binary garbage,
// invalid UTF-8), reported as ErrSourceUnreadable.
package tabular
