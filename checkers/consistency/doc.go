// Package consistency audits the whole server list.
//
// Every endpoint is queried in list order and the answers are tallied. Endpoints
// that fail show up as "broken server"; endpoints that report an address other
// than the most common one are flagged. The audit is diagnostic only and never
// changes how lookups pick endpoints.
package consistency
