// Package dataview derives the views the production board renders from raw
// entity collections: date-grouped schedules, the date axis, filtered and
// sorted lists, and progress summaries.
//
// Every function is pure. Inputs are never modified. Returned slices and maps
// are freshly allocated and owned by the caller, except that ExtractItems
// hands a bare list back unchanged. Nothing here caches; memoization belongs
// to the caller.
package dataview
