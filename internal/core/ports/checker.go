package ports

// CacheChecker decides whether a cached formatter artifact must be rebuilt.
type CacheChecker interface {
	// NeedsRebuild reports whether entry is missing or older than any of the
	// watched inputs under root. When the entry is absent it also ensures
	// the parent cache directory exists.
	//
	// The decision is mtime based: one stat per watched file, no content
	// hashing. A watched file replaced with an older modification time than
	// the entry is silently missed; that is an accepted limitation.
	NeedsRebuild(entry, root string, watched []string) (bool, error)
}
