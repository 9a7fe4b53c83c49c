// Package driver models the couriers a carrier employs. A driver has
// no regular account; the generated 9-digit ID code plus PIN is the
// whole credential.
package driver
