// Package guest provides the Guest aggregate: a person staying at the hotel,
// from check-in to check-out.
//
// Key business rules:
//   - A guest is created CHECKED_IN with the check-in time taken from the clock
//   - The name must not be blank; it is the only attribute that can be edited
//   - Check-out happens at most once and the check-out time is strictly after check-in
//   - The check-out time is set if and only if the status is CHECKED_OUT
//
// Whether a guest may check out given its parcels is decided by the
// services.CustodyPolicy domain service, not by the aggregate itself.
package guest
