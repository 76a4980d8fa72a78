// Package lifemath holds the pure calculation core: the lived/remaining
// percentage split and the categorical lookup tables for life stage and
// reflection messages. Nothing here touches I/O.
package lifemath
