// Package mkdir implements the per-path pipeline of the mkd CLI:
//
//  1. Resolve the raw path against the current working directory
//  2. Create the directory (single level or with all parents)
//  3. Classify and report the outcome
//  4. Apply the requested permission mode, if any
//
// Per-path creation failures are never returned as errors. They are
// classified into a model.Outcome and handed to a Reporter, and the run
// continues with the next path. Only the fatal conditions (unreadable
// working directory, invalid mode, failure to apply a mode) are returned,
// always as *model.CLIError.
package mkdir
