package main

import (
	"context"

	"communitysync/cmd/communitysync/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
