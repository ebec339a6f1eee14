// Package stages implements the built-in slidefilter rewrite stages.
//
// Stages are organized by syntax:
//   - SF000 line-endings: CRLF and CR to LF (disabled by default)
//   - SF001 container: {{{label ... }}} blocks to <div class="label">
//   - SF002 callout: > [!KIND] title blocks to callout boxes
//   - SF003 horizontal-rule: *** lines to <hr>
//   - SF004 heading-count: "## marker#num#title" numbering (disabled by default)
//   - SF005 header-count: Marp header comment numbering (disabled by default)
//
// Each stage scans the document line by line. Counting stages keep their
// registry local to one Rewrite call.
package stages
