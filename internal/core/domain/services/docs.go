// Package services holds the read side of the work order domain: ordering,
// filtering and aggregation over collections of work orders.
//
// Every function is pure. The current time is always passed in, so the same
// collection, time and parameters give the same result in the same order.
package services
