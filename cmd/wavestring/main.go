// Command wavestring runs the reference vibrating-string scenarios and
// writes their snapshot and animation data.
package main

import "github.com/katalvlaran/wavestring/cmd/wavestring/cmd"

func main() {
	cmd.Execute()
}
