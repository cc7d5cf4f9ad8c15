// Package aggregates owns transaction boundaries for multi-row writes.
//
// Services run their read-check-write sequences through a TxRunner so the
// existence check and the overwrite share one transaction.
package aggregates
