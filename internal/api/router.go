package api

import (
	"github.com/gin-gonic/gin"

	"github.com/wayfarerhq/wayfarer/internal/constants"
	"github.com/wayfarerhq/wayfarer/internal/telemetry"
)

// BuildRouter wires every route. Signup and login are exempt from the
// static token (guarding signup with a token only issued clients hold
// would make first contact impossible); the ops surface is unguarded so
// probes and scrapers work without credentials.
func BuildRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(telemetry.GinMiddleware())

	router.GET(constants.RouteHealthz, h.Healthz)
	router.GET(constants.RouteMetrics, gin.WrapH(telemetry.Handler()))
	router.GET(constants.RouteVersion, Version)

	router.POST(constants.RouteSignup, h.Signup)
	router.POST(constants.RouteLogin, h.Login)

	guarded := router.Group("")
	guarded.Use(TokenRequired(h.staticToken))

	// Session endpoints inspect the Session-ID header themselves:
	// check-session must answer "invalid" rather than reject outright.
	guarded.POST(constants.RouteLogout, h.Logout)
	guarded.POST(constants.RouteCheckSession, h.CheckSession)

	authed := guarded.Group("")
	authed.Use(h.SessionRequired())

	authed.GET(constants.RoutePosts, h.ListPosts)
	authed.POST(constants.RoutePosts, h.CreatePost)
	authed.GET(constants.RoutePostByID, h.GetPost)
	authed.PUT(constants.RoutePostByID, h.EditPost)
	authed.DELETE(constants.RoutePostByID, h.DeletePost)

	authed.POST(constants.RoutePostReactions, h.AddPostReaction)
	authed.DELETE(constants.RoutePostReactions, h.RemovePostReaction)
	authed.POST(constants.RoutePostCommentReactions, h.AddPostReaction)
	authed.DELETE(constants.RoutePostCommentReactions, h.RemovePostReaction)

	authed.POST(constants.RoutePostComments, h.AddPostComment)
	authed.PUT(constants.RoutePostCommentByID, h.EditPostComment)
	authed.DELETE(constants.RoutePostCommentByID, h.DeletePostComment)

	authed.GET(constants.RouteDestinations, h.ListDestinations)
	authed.POST(constants.RouteDestinations, h.CreateDestination)
	authed.PUT(constants.RouteDestinationByID, h.EditDestination)
	authed.DELETE(constants.RouteDestinationByID, h.DeleteDestination)

	authed.POST(constants.RouteDestinationReactions, h.AddDestinationReaction)
	authed.DELETE(constants.RouteDestinationReactions, h.RemoveDestinationReaction)
	authed.POST(constants.RouteDestinationCommentReactions, h.AddDestinationReaction)
	authed.DELETE(constants.RouteDestinationCommentReactions, h.RemoveDestinationReaction)

	authed.POST(constants.RouteDestinationComments, h.AddDestinationComment)
	authed.PUT(constants.RouteDestinationCommentByID, h.EditDestinationComment)
	authed.DELETE(constants.RouteDestinationCommentByID, h.DeleteDestinationComment)

	authed.GET(constants.RouteTripGoalsFollowed, h.GetFollowedTripGoals)
	authed.GET(constants.RouteTripGoalsByUser, h.GetTripGoalsByUser)
	authed.POST(constants.RouteTripGoals, h.CreateTripGoal)
	authed.PUT(constants.RouteTripGoalByID, h.EditTripGoal)
	authed.DELETE(constants.RouteTripGoalByID, h.DeleteTripGoal)
	authed.POST(constants.RouteTripGoalFollow, h.FollowTripGoal)
	authed.POST(constants.RouteTripGoalUnfollow, h.UnfollowTripGoal)

	authed.POST(constants.RouteCachePosts, h.CachePosts)

	return router
}
