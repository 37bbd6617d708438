// Package parcel provides the Parcel aggregate: an item the front desk holds
// for a guest until it is picked up.
//
// A parcel is received PENDING and moves once to PICKED_UP. Its owner and
// received time never change; only the description can be edited.
package parcel
