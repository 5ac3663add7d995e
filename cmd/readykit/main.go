// Command readykit tracks a household's emergency preparedness.
package main

import "github.com/mesh-intelligence/readykit/internal/cli"

func main() {
	cli.Execute()
}
