// Package cli provides the interactive Articles Hub terminal client.
//
// It wires configuration, the local session store, the backend services and
// an interactive REPL. Every view of the hub is addressed by a path
// ("/articles", "/articles/:id/edit", ...); commands open paths through the
// access gate, list views keep a live list pipeline mounted, and form views
// prompt field by field with inline validation.
//
// Key features:
//   - Signup, login, logout and the emailed password links
//   - Published articles and drafts with search and paging
//   - Create, edit, publish and delete articles
//   - Admin user management (create, edit, toggle status, delete)
//   - Profile view and edit
//
// A background session watcher runs next to the REPL and sends the user back
// to the login view when the stored token expires. See App.Run, runREPL and
// App.WatchSession.
package cli
