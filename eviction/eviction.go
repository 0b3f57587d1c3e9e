/*
Package eviction decides what the store drops when it runs out of space.

Only one policy exists: FIFO (First In First Out). The victim is always the
key that was inserted longest ago, regardless of how often or how recently
it was read. Re-inserting a key counts as a fresh insertion and moves it to
the back of the line.

The store owns the values. This package only tracks key order.
*/
package eviction
