package command

var registry []Command

// RegisterCommand adds a command to the global registry. Commands call it
// from init and are mounted onto the console tree by MountAll.
func RegisterCommand(cmd Command) {
	registry = append(registry, cmd)
}

// AllCommands returns all commands registered in the global registry.
func AllCommands() []Command {
	return append([]Command(nil), registry...)
}
