/*
Package statenav is a state-graph navigation engine for GUI automation.

An application is modelled as a directed graph of screen states connected by
transitions. Some states are overlays (dialogs, menus) that conceal what they
open over and can later return to it. Given the states currently on screen and
a target, the engine enumerates the candidate paths, scores them, walks the
cheapest one and recovers through the remaining paths when a transition fails.

# Concept

The engine never touches the screen itself. Every transition carries a Hook
(click, type, wait for an image) and every state may carry an Arrival check;
the host application supplies them through a HookBinder. Without one, the
mock behaviours declared in the graph file are used, so graphs can be
exercised without a screen.

# Key Features

  - Cheapest-path navigation: paths are scored by state path scores plus transition costs.
  - Failure recovery: a failed hop prunes every path through it and the next best path is tried.
  - Overlays: hidden states are tracked per overlay and restored on "previous" transitions.
  - Persistence: sessions snapshot to memory or Redis between runs.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/statenav"
	)

	func main() {
		// Load the graph (reads ./app.yaml)
		eng, err := statenav.New("./app.yaml")
		if err != nil {
			log.Fatal(err)
		}

		// Start a session on the graph's start states
		s, err := eng.Start("session-123")
		if err != nil {
			log.Fatal(err)
		}

		ok, err := eng.OpenState(context.Background(), s, "Settings")
		if err != nil {
			log.Fatal(err) // unknown state
		}
		if !ok {
			log.Println("every path to Settings failed")
		}
		log.Println("on screen:", eng.ActiveStateNames(s))
	}
*/
package statenav
