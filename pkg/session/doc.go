/*
Package session implements session management and persistence orchestration.

The navigation core expects one navigation at a time per session. The Manager
provides that guarantee: it serialises work on a session id in process with a
reference-counted mutex, optionally across replicas with a distributed lock,
and loads, navigates and saves session snapshots under that lock.
*/
package session
