package bilingual

// ExtractOptions holds configuration for extraction.
type ExtractOptions struct {
	// Reading order
	excludeNonLinear bool
	forceFallback    bool

	// Drop documents whose names match none of these entry names (nil keeps all)
	documents []string
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		excludeNonLinear: false,
		forceFallback:    false,
		documents:        nil,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		excludeNonLinear: o.excludeNonLinear,
		forceFallback:    o.forceFallback,
	}

	if o.documents != nil {
		newOpts.documents = make([]string, len(o.documents))
		copy(newOpts.documents, o.documents)
	}

	return newOpts
}

// wants reports whether a resolved document should be processed.
func (o ExtractOptions) wants(name string) bool {
	if o.documents == nil {
		return true
	}
	for _, d := range o.documents {
		if d == name {
			return true
		}
	}
	return false
}
