/*
Package domain contains the core models of the statenav navigation engine.

It defines the entities of the state graph and the values that flow through a
navigation. The package is kept pure: no I/O, no persistence and no logging.

# Key Entities

  - State: a recognizable application screen or mode, with a static path score.
  - Transition: a directed, costed edge whose hook reports success or failure.
  - Target: where a transition leads; a concrete state or one of the dynamic
    markers Previous and Current.
  - Path / Paths: candidate routes and their aggregate scores.
  - Snapshot: the persisted view of a session (active and hidden states).
*/
package domain
