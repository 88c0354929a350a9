// Package queue provides the work queues used by ring expansion: a FIFO
// frontier for breadth-first traversal and a min-heap for ordering cells by
// distance.
package queue
