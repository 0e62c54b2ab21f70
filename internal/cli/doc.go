// Package cli provides the interactive catalog browser.
//
// It is a consumer of catalog.Store and query.Pipeline: it triggers loads and
// creations on the store and drives the four query controls and the page of
// the pipeline. Output goes to the writer given to NewApp.
//
// Key features:
//   - list / page / next / prev over the filtered, sorted result
//   - search, gender, species, sort, clear
//   - add: interactive wizard creating a local character
//   - reload, stats, counts, show
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// the input ends. See runREPL for the command table.
package cli
