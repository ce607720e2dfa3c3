package newsreels

// ReelsAction is how the reels screen ended.
type ReelsAction int

const (
	ReelsActionOpened ReelsAction = iota // A card was swiped left to open its article
)

// ArticleAction is how the article screen ended.
type ArticleAction int

const (
	ArticleActionBack ArticleAction = iota // User went back to the reels
)
