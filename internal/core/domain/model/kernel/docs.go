// Package kernel contains the shared value objects of the domain model.
//
// Entities in this system are keyed by database identity columns, so the
// central value object is ID, a validated positive integer surrogate key.
// Weight carries parcel and load weights in kilograms.
package kernel
