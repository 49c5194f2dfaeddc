// Package party holds the people-side entities of the registry: Address,
// Person and Client.
//
// Addresses are shared, reference-counted resources: a single address row may
// be pointed at by several people and by a headquarters, and it is mutated in
// place rather than replaced. Deleting the last referrer is the only way an
// address is removed.
//
// A Client is an annotation on an existing Person and comes in exactly one of
// two variants: an individual (PF, carrying CPF and date of birth) or a
// company (PJ, carrying CNPJ and company name). The variants are mutually
// exclusive at all times.
package party
