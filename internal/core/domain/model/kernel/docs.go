// Package kernel holds the value objects shared by the guest and parcel aggregates:
// identifiers, page requests and query specifications.
//
// A Specification carries two views of the same filter. The in-memory view is a
// predicate usable against a slice of aggregates; the declarative view is a list
// of Criterion values that storage adapters translate into their own query
// language. Keeping both on one value means a filter can never mean one thing in
// memory and another in SQL.
package kernel
