// Package social holds the pure reaction and comment rules shared by
// posts and destinations. Nothing here touches a datastore.
package social

import (
	"errors"

	"github.com/wayfarerhq/wayfarer/internal/constants"
	"github.com/wayfarerhq/wayfarer/internal/docstore"
)

// Reactions is the closed set of valid reaction names.
var Reactions = []string{"like", "love", "haha", "wow", "sad", "angry"}

// ErrDuplicateReaction is returned when a user repeats the exact
// reaction they already have on a target.
var ErrDuplicateReaction = errors.New("user has already reacted with the same reaction")

// ValidReaction reports whether the name is one of the recognized
// reactions.
func ValidReaction(name string) bool {
	for _, r := range Reactions {
		if r == name {
			return true
		}
	}
	return false
}

// ApplyReaction adds the user's reaction to the list. A different
// existing reaction from the same user is replaced; repeating the same
// reaction is rejected.
func ApplyReaction(reactions []docstore.Reaction, sub int64, userName, reaction string) ([]docstore.Reaction, error) {
	for _, r := range reactions {
		if r.UserID != sub {
			continue
		}
		if r.Reaction == reaction {
			return nil, ErrDuplicateReaction
		}
		reactions = RemoveReaction(reactions, sub)
		break
	}
	return append(reactions, docstore.Reaction{UserID: sub, UserName: userName, Reaction: reaction}), nil
}

// RemoveReaction drops every reaction by the user. Removing a reaction
// that does not exist is a no-op.
func RemoveReaction(reactions []docstore.Reaction, sub int64) []docstore.Reaction {
	out := reactions[:0]
	for _, r := range reactions {
		if r.UserID != sub {
			out = append(out, r)
		}
	}
	return out
}

// NextCommentID allocates the id for a new comment.
func NextCommentID(comments []docstore.Comment) int64 {
	return int64(len(comments)) + 1
}

// AppendComment adds a comment by the user and returns the updated list.
func AppendComment(comments []docstore.Comment, sub int64, userName, text string) []docstore.Comment {
	return append(comments, docstore.Comment{
		CommentID: NextCommentID(comments),
		UserID:    sub,
		UserName:  userName,
		Comment:   text,
		Reactions: []docstore.Reaction{},
	})
}

// FindComment returns a pointer into the slice for the comment id, or
// nil when absent.
func FindComment(comments []docstore.Comment, commentID int64) *docstore.Comment {
	for i := range comments {
		if comments[i].CommentID == commentID {
			return &comments[i]
		}
	}
	return nil
}

// FindOwnComment returns the comment only when it exists and belongs to
// the user. Edits and deletes are author-only.
func FindOwnComment(comments []docstore.Comment, commentID, sub int64) *docstore.Comment {
	c := FindComment(comments, commentID)
	if c == nil || c.UserID != sub {
		return nil
	}
	return c
}

// EditComment replaces the comment text, marking it as edited.
func EditComment(c *docstore.Comment, text string) {
	c.Comment = text + constants.EditedSuffix
}

// RemoveComment drops the comment with the given id.
func RemoveComment(comments []docstore.Comment, commentID int64) []docstore.Comment {
	out := comments[:0]
	for _, c := range comments {
		if c.CommentID != commentID {
			out = append(out, c)
		}
	}
	return out
}
