/*
Package ports defines the driven ports (interfaces) of the statenav engine.

These interfaces decouple navigation from concrete graph sources, snapshot
storage and locking, so the engine works against in-memory registries in tests
and against persistent backends in long-running automation hosts.

# Key Interfaces

  - StateRegistry: resolves states and their transitions by id or name.
  - HookBinder: attaches action-layer hook implementations to a loaded graph.
  - SnapshotStore: persists the active/hidden view of a session between runs.
  - DistributedLocker: keeps a single navigation in flight per session across replicas.
*/
package ports
