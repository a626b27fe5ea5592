// Package geo holds the coverage reference data: the cities the service
// delivers between and the zones inside them. Both are slowly-changing rows
// maintained by operations staff, not lifecycle aggregates like orders.
package geo
