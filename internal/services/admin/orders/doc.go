// Package orders is the order workflow view-model: the status transition
// table, the list filter and a local cache of the last fetched orders.
package orders
