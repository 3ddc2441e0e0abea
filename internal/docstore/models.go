package docstore

// Document shapes stored in MongoDB. The application-level `id` integers
// come from PostgreSQL serials (posts) or a max-id+1 scan (destinations,
// trip goals); the Mongo `_id` is never exposed.

type DestinationRef struct {
	ID   int64  `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}

type Reaction struct {
	UserID   int64  `bson:"user_id" json:"user_id"`
	UserName string `bson:"userName" json:"userName"`
	Reaction string `bson:"reaction" json:"reaction"`
}

type Comment struct {
	CommentID int64      `bson:"comment_id" json:"comment_id"`
	UserID    int64      `bson:"user_id" json:"user_id"`
	UserName  string     `bson:"userName" json:"userName"`
	Comment   string     `bson:"comment" json:"comment"`
	Reactions []Reaction `bson:"reactions" json:"reactions"`
}

type Post struct {
	ID           int64            `bson:"id" json:"id"`
	UserID       int64            `bson:"user_id" json:"user_id"`
	UserName     string           `bson:"userName" json:"userName"`
	Content      string           `bson:"content" json:"content"`
	Media        []string         `bson:"media" json:"media"`
	Destinations []DestinationRef `bson:"destinations" json:"destinations"`
	Reactions    []Reaction       `bson:"reactions" json:"reactions"`
	Comments     []Comment        `bson:"comments" json:"comments"`
}

type Destination struct {
	ID          int64      `bson:"id" json:"id"`
	UserID      int64      `bson:"user_id" json:"user_id"`
	UserName    string     `bson:"userName" json:"userName"`
	Name        string     `bson:"name" json:"name"`
	Description string     `bson:"description" json:"description"`
	City        string     `bson:"city" json:"city"`
	Country     string     `bson:"country" json:"country"`
	Media       []string   `bson:"media" json:"media"`
	Comments    []Comment  `bson:"comments" json:"comments"`
	Reactions   []Reaction `bson:"reactions" json:"reactions"`
}

type Follower struct {
	UserID   int64  `bson:"user_id" json:"user_id"`
	UserName string `bson:"userName" json:"userName"`
}

type TripGoal struct {
	ID           int64            `bson:"id" json:"id"`
	UserID       int64            `bson:"user_id" json:"user_id"`
	UserName     string           `bson:"userName" json:"userName"`
	Destinations []DestinationRef `bson:"destinations" json:"destinations"`
	Followers    []Follower       `bson:"followers" json:"followers"`
}
