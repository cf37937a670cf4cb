// Package metrics derives dashboard figures from typed workbook rows.
//
// Every function is a pure function of its arguments: the reference time is always passed in,
// nothing is cached between calls, and malformed rows degrade to zero or empty values instead of
// errors. Concurrent calls need no locking.
package metrics
