// Package http implements the JSON API of the blog server.
//
// It wires chi routes for users, blogs, posts, comments and sessions, and
// the middleware that runs before them: tracing, access logging, CORS,
// compression and the session authenticator. Write routes sit behind a guard
// that redirects anonymous callers to the login form.
package http
