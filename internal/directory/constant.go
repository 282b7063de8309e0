package directory

// PlaceholderName is the display string substituted for ids that could not
// be resolved. Substitution affects only the label, never the entry count.
const PlaceholderName = "(unknown)"
