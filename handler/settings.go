package handler

// RegisteredOptions extracts the options of a registered protocol command
// already split into argv: everything after the program up to "%1".
func RegisteredOptions(argv []string) []string {
	if len(argv) < 2 {
		return nil
	}
	var options []string
	for _, arg := range argv[1:] {
		if arg == "%1" {
			break
		}
		options = append(options, arg)
	}
	return options
}

// Selected reports which handler the options select, if any, by replaying
// them on a fresh handler list.
func Selected(options []string) Handler {
	return Parse(New(), options).Selected
}
