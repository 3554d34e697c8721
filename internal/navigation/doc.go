/*
Package navigation is the state-graph navigation core.

A Navigator resolves a target state, asks the PathFinder for every route from
the session's active states, lets the PathManager score and sort them, and
walks the best one hop by hop through the Executor. When a hop fails the
remaining candidates are cleaned against the new active set and the failed
edge, and the best survivor is tried next. Running out of candidates is a
normal, reported outcome.

A Session owns the mutable view (ActiveStates and Visibility) and must be used
by one navigation at a time.
*/
package navigation
