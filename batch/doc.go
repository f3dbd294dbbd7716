// Package batch solves many problem files concurrently and reports on each.
//
// What
//
//   - Run(ctx, files, opts...) solves every file on a bounded worker pool
//     (errgroup.SetLimit) and returns a Report with one Item per file, in
//     input order.
//   - A malformed or unreadable file, or a panic while handling it, marks only
//     its own Item; the run goes on.
//   - When a reference "<name>.out" exists, the answer is checked with
//     verify.Check; a mismatch marks the Item StatusMismatch, is logged with
//     the file name, and processing continues.
//   - Metrics (optional) records per-status counts, round counts, search
//     effort and solve latency in a private Prometheus registry that can be
//     written as a node-exporter textfile.
//
// Cancelling ctx stops outstanding instances; Run then returns the partial
// report together with the context error.
package batch
