// Package external provides public IPv4 address discovery for ipgetter.
//
// The checker asks a random selection of IP echo endpoints, one at a time, and
// reports the first address returned together with the endpoint that answered.
// It is the default checker when no flag is given.
package external
