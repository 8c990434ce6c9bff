package tableinfo

const (
	TweetsTableName = "tweets"

	TweetIDColumn      = "id"
	TweetDateColumn    = "date"
	TweetMessageColumn = "message"
)
