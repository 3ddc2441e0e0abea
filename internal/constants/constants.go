package constants

// Centralized constants for headers, routes and API messages.
const (
	// HTTP headers and content types
	HeaderAuthorization = "Authorization"
	HeaderSessionID     = "Session-ID"
	HeaderContentType   = "Content-Type"

	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"

	// Redis key prefixes
	SessionKeyPrefix = "session:"
	PostKeyPrefix    = "post:"

	// Suffix appended to edited posts and comments
	EditedSuffix = " (edited)"
)

// Routes used by the backend router
const (
	RouteSignup       = "/signup"
	RouteLogin        = "/login"
	RouteLogout       = "/logout"
	RouteCheckSession = "/check-session"

	RoutePosts                = "/posts"
	RoutePostByID             = "/posts/:id"
	RoutePostReactions        = "/posts/:id/reactions"
	RoutePostComments         = "/posts/:id/comments"
	RoutePostCommentByID      = "/posts/:id/comments/:commentID"
	RoutePostCommentReactions = "/posts/:id/comments/:commentID/reactions"

	RouteDestinations                = "/destinations"
	RouteDestinationByID             = "/destinations/:id"
	RouteDestinationReactions        = "/destinations/:id/reactions"
	RouteDestinationComments         = "/destinations/:id/comments"
	RouteDestinationCommentByID      = "/destinations/:id/comments/:commentID"
	RouteDestinationCommentReactions = "/destinations/:id/comments/:commentID/reactions"

	RouteTripGoals         = "/trip-goals"
	RouteTripGoalsFollowed = "/trip-goals/followed"
	RouteTripGoalsByUser   = "/trip-goals/:userID"
	RouteTripGoalByID      = "/trip-goals/:id"
	RouteTripGoalFollow    = "/trip-goals/:id/follow"
	RouteTripGoalUnfollow  = "/trip-goals/:id/unfollow"

	RouteCachePosts = "/cache-posts"

	RouteHealthz = "/healthz"
	RouteMetrics = "/metrics"
	RouteVersion = "/version"
)

// Common JSON response keys
const (
	JSONKeyError     = "error"
	JSONKeyMessage   = "message"
	JSONKeyToken     = "token"
	JSONKeySessionID = "session_id"
	JSONKeySub       = "sub"
	JSONKeyCached    = "cached"
	JSONKeyStatus    = "status"
)

// API error messages. Part of the wire contract; clients match on the
// exact text.
const (
	ErrUnauthorized          = "Unauthorized"
	ErrInvalidCredentials    = "Invalid credentials"
	ErrSessionInvalid        = "Session is invalid"
	ErrSessionIDRequired     = "Session-ID is required"
	ErrUserPassRequired      = "Username and password are required"
	ErrUsernameTaken         = "Username already exists"
	ErrPostFieldsRequired    = "Content, destinations, and media are required"
	ErrInvalidDestinations   = "Invalid format for destinations"
	ErrInvalidDestinationIDs = "Invalid format for destination IDs"
	ErrDestinationFields     = "All fields are required"
	ErrDestinationNameTaken  = "Destination name must be unique"
	ErrDestinationIDsNeeded  = "Destination IDs are required"
	ErrCommentRequired       = "Comment is required"
	ErrInvalidReaction       = "Invalid reaction"
	ErrSameReaction          = "User has already reacted with the same reaction"
	ErrAlreadyFollows        = "User already follows this trip goal"
	ErrDoesNotFollow         = "User does not follow this trip goal"
	ErrPostNotFound          = "Post not found"
	ErrCommentNotFound       = "Comment not found"
	ErrDestinationNotFound   = "Destination not found"
	ErrTripGoalNotFound      = "Trip goal not found"
	ErrTripGoalsNotFound     = "Trip goals not found"
)

// API success messages
const (
	MsgUserCreated        = "User created successfully"
	MsgLoginOK            = "Login successful"
	MsgLogoutOK           = "Logout successful"
	MsgSessionValid       = "Session is valid"
	MsgPostCreated        = "Post created successfully"
	MsgPostEdited         = "Post edited successfully"
	MsgPostDeleted        = "Post deleted successfully"
	MsgReactionAdded      = "Reaction added successfully"
	MsgReactionDeleted    = "Reaction deleted successfully"
	MsgCommentAdded       = "Comment added successfully"
	MsgCommentEdited      = "Comment edited successfully"
	MsgCommentDeleted     = "Comment deleted successfully"
	MsgDestinationAdded   = "Destination added successfully"
	MsgDestinationEdited  = "Destination edited successfully"
	MsgDestinationDeleted = "Destination deleted successfully"
	MsgTripGoalAdded      = "Trip goal added successfully"
	MsgTripGoalEdited     = "Trip goal edited successfully"
	MsgTripGoalDeleted    = "Trip goal deleted successfully"
	MsgTripGoalFollowed   = "Trip goal followed successfully"
	MsgTripGoalUnfollowed = "Trip goal unfollowed successfully"
	MsgPostsCached        = "Posts cached successfully"
)

// Log field keys
const (
	LogFieldAddr    = "addr"
	LogFieldPostID  = "post_id"
	LogFieldSub     = "sub"
	LogFieldAttempt = "attempt"
)
