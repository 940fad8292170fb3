// Package bench runs the sortbench benchmark session.
//
// A Session owns one run: the canonical input, the declared algorithm list
// with its accumulated CPU-time sums, the selection policy and the report
// writer. Nothing here is global; two sessions never share state.
//
// # Run Loop
//
// Session.Run repeats Config.Trials trials. Each trial walks the algorithms
// in declared order (Declared), skips those the Selection rejects, and for
// every remaining one:
//
//  1. clones the canonical input (the input itself is never mutated)
//  2. reads the process CPU clock, sorts the clone, reads the clock again
//  3. adds the elapsed seconds to the algorithm's running sum
//  4. writes a report, but only when Trials == 1 or this is the last trial
//
// With several trials the printed figure is Sum / Trials over every trial,
// even though only the last trial prints.
//
// # Report Format
//
// The report is the bit-exact external contract. For the input 3 1 2,
// insertion sort, the default delimiter and --time:
//
//	Before:
//	3 1 2
//
//	Insertion Sort:   CPU time: 0.000001 s
//	1 2 3
//
// Every rendered value is followed by the delimiter, the last one included.
// The label is left-justified to the widest declared label. The time text
// appears only with Config.ShowTime, and the sequences only when
// Config.Quiet is false.
//
// Execution is single-threaded and synchronous. The context is consulted
// between algorithm runs, never inside a sort.
package bench
