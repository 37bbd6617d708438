// Package services provides domain services for rules that involve more than
// one aggregate.
//
// The package includes:
//   - CustodyPolicy: the guest and parcel custody rules (check-out guard,
//     parcel receipt guard, guest removal guard)
package services
