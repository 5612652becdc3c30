package argparse

// WithName sets the display name of an element. Arguments use it as their default target.
func WithName(name string) ConfigureElementFunc {
	return func(element *Element) {
		element.Name = name
	}
}

// WithAliases appends the tokens which invoke an option, e.g. "-n", "--number"
func WithAliases(aliases ...string) ConfigureElementFunc {
	return func(element *Element) {
		element.Aliases = append(element.Aliases, aliases...)
	}
}

// WithTarget sets the key under which parsed values are stored
func WithTarget(target string) ConfigureElementFunc {
	return func(element *Element) {
		element.Target = target
	}
}

// WithDescription sets the description of an element
func WithDescription(description string) ConfigureElementFunc {
	return func(element *Element) {
		element.Description = description
	}
}

// WithConvert sets the transform applied to each value before it is stored
func WithConvert(convert ConvertFunc) ConfigureElementFunc {
	return func(element *Element) {
		element.Convert = convert
	}
}

// WithDefault sets the value used to pad invocations with fewer values than the args minimum.
// An empty string is a valid default.
func WithDefault(value string) ConfigureElementFunc {
	return func(element *Element) {
		element.Default = value
		element.hasDefault = true
	}
}

// WithArgs sets how many values one invocation consumes ("N", "*", "+", "?", "a-b", "a+")
func WithArgs(spec string) ConfigureElementFunc {
	return func(element *Element) {
		element.Args = spec
	}
}

// WithCount sets how many times an element may be invoked ("N", "*", "+", "?", "a-b", "a+")
func WithCount(spec string) ConfigureElementFunc {
	return func(element *Element) {
		element.Count = spec
	}
}

// WithOverwrite makes an option discard its oldest invocation instead of failing
// once it has been used more often than its count maximum
func WithOverwrite(overwrite bool) ConfigureElementFunc {
	return func(element *Element) {
		element.Overwrite = overwrite
	}
}
