// Package kernel provides the value objects shared by the client and work
// order aggregates.
//
// The package includes:
//   - Mobile: a client's 10-digit mobile number, the secondary lookup key
//   - Email: an optional, syntactically valid email address
//   - Money: a non-negative decimal amount, exact to four places
//
// Value objects are immutable. Mobile and Email carry a ConstructorGuard so a
// zero value is detected when it reaches a repository; the zero Money is a
// valid amount of 0.
package kernel
