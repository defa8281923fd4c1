// Package scaffold generates paired C++ header and source files: it parses
// namespace paths, resolves include directives between the two locations,
// maintains the shared copyright notice for a directory, and renders the
// class templates into planned file operations.
package scaffold
