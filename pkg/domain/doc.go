/*
Package domain contains the core domain models for the scrambler engine.

It defines the typed command tokens of the transformation language, the
direction of a run, the error taxonomy, and the lifecycle events emitted while
a command sequence is folded over a message. This package is kept pure and
free of I/O, following Hexagonal Architecture principles.

# Key Entities

  - Command: A tagged value, one of Shift, Rotate, Duplicate or Trade.
  - Direction: Encode applies each command forward, Decode applies its inverse.
  - LifecycleHooks: Callbacks fired for every applied command and every processed line.
*/
package domain
