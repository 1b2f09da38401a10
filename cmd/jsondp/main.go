// Command jsondp exposes the codec and its supporting collaborators (a
// key/value block store, a JSON-RPC batch client, and a log-streaming
// watch loop) as a single CLI binary.
package main

import "github.com/dmagro/jsondp/internal/commands"

func main() {
	commands.Execute()
}
