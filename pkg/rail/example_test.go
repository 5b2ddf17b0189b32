package rail_test

import (
	"fmt"
	"strings"

	"github.com/railyard/railyard/pkg/rail"
)

func Example() {
	diagram, err := rail.NewDiagram(nil, rail.NewTerminal(nil, "foo"))
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, line := range diagram.TextDiagram().Lines() {
		fmt.Println(strings.TrimRight(line, " "))
	}
	// Output:
	//       ╭─────╮
	// ├┼────│ foo │────┼┤
	//       ╰─────╯
}

func ExampleOptional() {
	// An optional item is a choice between it and an empty path.
	opt := rail.Optional(nil, rail.NewTerminal(nil, "x"), false)
	d := opt.ToDict()
	fmt.Println(d["element"], d["default"])
	// Output: Choice 1
}

func ExampleBuildDiagram() {
	diagram, err := rail.BuildDiagram(nil, rail.Dict{
		"element": "Terminal",
		"text":    "GO",
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(diagram.Width(), diagram.Up(), diagram.Down())
	// Output: 96 11 11
}

func ExampleNewChoice_invalid() {
	_, err := rail.NewChoice(nil, 3, rail.NewTerminal(nil, "a"), rail.NewTerminal(nil, "b"))
	fmt.Println(err)
	// Output: INVALID_DEFAULT: default index 3 out of range for 2 items
}
