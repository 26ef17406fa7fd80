// Package poller periodically refetches orders for a tracked set of user
// addresses and hands each observation to a snapshot handler, standing in
// for the refetch-interval behavior display layers expect.
package poller
