package youtube

const (
	defaultWatchURL = "https://www.youtube.com/watch"
	partSnippet     = "snippet"
	scrapeUserAgent = "Mozilla/5.0 (compatible; council-archive/1.0)"
)
