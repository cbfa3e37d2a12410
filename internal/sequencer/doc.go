// Package sequencer implements the guided testing procedure shown on the
// Testing screen.
//
// The procedure is a fixed, ordered table of five steps. A Sequencer owns the
// current step index and only ever moves forward by one. Rendering a step is a
// pure lookup into the table, so the TUI can ask for the display content of
// any step without touching sequencer state.
//
// # Step Table
//
//	step  indicator  label     button  results
//	0     0          (none)    Next    hidden
//	1     1          Step 2    Next    hidden
//	2     2          Step 3    Next    hidden
//	3     3          Step 4    Next    hidden
//	4     4          Step 5    Finish  revealed
//
// # Terminal Step
//
// Advance clamps at the last step. Calling it on step 4 reports false and
// leaves the sequencer where it is, so the view keeps showing the results.
//
// # Usage Example
//
//	seq := sequencer.New()
//	for {
//	    tr, ok := seq.Advance()
//	    if !ok {
//	        break
//	    }
//	    fmt.Printf("%d -> %d: %s\n", tr.From, tr.To, seq.View().StepLabel)
//	}
package sequencer
