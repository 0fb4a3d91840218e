// Package serverlist loads the list of endpoints that echo the caller's IPv4 address.
//
// A list comes either from the built-in default set or from a line-oriented text
// source with one URL per line. Lines are trimmed; blank lines and lines starting
// with '#' are skipped.
//
// Loading never hands back an empty list. In ModeFallback any problem with the
// source is logged and the default list is used instead; in ModeStrict the problem
// is returned as ErrServerListUnavailable.
package serverlist
