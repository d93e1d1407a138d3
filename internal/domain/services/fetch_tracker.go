package services

//go:generate mockery --name FetchTracker --dir . --output ../../../mocks --outpkg mocks --with-expecter --filename FetchTracker.go

// FetchTracker counts in-flight refreshes per repository key. It reports
// whether at least one refresh is running; it does not serialize them.
type FetchTracker interface {
	Begin(key string)
	End(key string)
	IsFetching(key string) bool
	Count(key string) int
}
