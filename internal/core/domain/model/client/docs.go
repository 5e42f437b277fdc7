// Package client contains the Client aggregate: a boutique customer
// identified by a unique mobile number.
//
// A Client is created either by explicit registration or implicitly when a
// work order names a mobile number that is not yet known. Clients are built
// through NewClient, or RestoreClient when loaded from storage, and are
// updated through Update. Deletion is decided by the application layer: a
// client that still owns work orders cannot be removed.
package client
