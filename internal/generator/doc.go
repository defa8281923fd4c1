// Package generator provides the file-generation toolkit behind plume:
// template rendering, planned file operations with validation, a staged
// write transaction, and conflict resolution for files that already exist.
package generator
