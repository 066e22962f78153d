// Package core provides the business logic behind every DataZen interaction.
//
// The package sits between the transport layers (the web server and the
// CLI) and the data packages. It owns no HTTP or terminal concerns and can be
// driven from handlers, commands or tests alike.
//
// # Service
//
// [Service] applies one user action to one session: upload a file, run a
// cleaning action, switch language, draw a chart, export or reset. Each
// action loads the session from the store, computes a new working table when
// needed and swaps it in atomically, then writes an audit entry.
//
//	svc := core.NewService(session.NewStore(2*time.Hour), nil, core.Options{})
//	sess, _ := svc.Sessions().GetOrCreate("", i18n.EN)
//	out, err := svc.Upload(ctx, sess.ID, "sales.csv", file)
//
// # Upload Semantics
//
// Parsing holds a whole table in memory, so uploads are bounded by a
// [ParseLimiter]. A successful upload replaces the working table unless the
// file name matches the previous upload, in which case the edited table is
// kept. A failed upload never touches the session.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Each category has a code for support reference:
//
//   - FILE001-FILE006: file size, format and type errors
//   - CLN001: unknown cleaning action
//   - VIS001-VIS006: chart errors
//   - SES001-SES004: session, language and export format errors
//   - UPL002-UPL005: busy, cancelled and timed out requests
//
// # Audit Logging
//
// Uploads, cleaning actions, exports and resets are recorded through an
// audit.Recorder. Recording failures are logged and never fail the action.
package core
