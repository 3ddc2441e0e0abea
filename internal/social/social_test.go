package social

import (
	"errors"
	"testing"

	"github.com/wayfarerhq/wayfarer/internal/docstore"
)

func TestValidReaction(t *testing.T) {
	for _, name := range []string{"like", "love", "haha", "wow", "sad", "angry"} {
		if !ValidReaction(name) {
			t.Fatalf("%s should be valid", name)
		}
	}
	for _, name := range []string{"", "dislike", "LIKE", "thumbsup"} {
		if ValidReaction(name) {
			t.Fatalf("%s should be invalid", name)
		}
	}
}

func TestApplyReactionNew(t *testing.T) {
	rs, err := ApplyReaction(nil, 1, "ana", "like")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rs) != 1 || rs[0].Reaction != "like" || rs[0].UserName != "ana" {
		t.Fatalf("unexpected reactions: %+v", rs)
	}
}

func TestApplyReactionReplacesDifferent(t *testing.T) {
	rs := []docstore.Reaction{
		{UserID: 1, UserName: "ana", Reaction: "like"},
		{UserID: 2, UserName: "bob", Reaction: "wow"},
	}
	rs, err := ApplyReaction(rs, 1, "ana", "love")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rs) != 2 {
		t.Fatalf("expected 2 reactions, got %d", len(rs))
	}
	for _, r := range rs {
		if r.UserID == 1 && r.Reaction != "love" {
			t.Fatalf("expected replaced reaction love, got %s", r.Reaction)
		}
	}
}

func TestApplyReactionRejectsDuplicate(t *testing.T) {
	rs := []docstore.Reaction{{UserID: 1, UserName: "ana", Reaction: "like"}}
	if _, err := ApplyReaction(rs, 1, "ana", "like"); !errors.Is(err, ErrDuplicateReaction) {
		t.Fatalf("expected ErrDuplicateReaction, got %v", err)
	}
}

func TestRemoveReaction(t *testing.T) {
	rs := []docstore.Reaction{
		{UserID: 1, Reaction: "like"},
		{UserID: 2, Reaction: "wow"},
	}
	rs = RemoveReaction(rs, 1)
	if len(rs) != 1 || rs[0].UserID != 2 {
		t.Fatalf("unexpected reactions: %+v", rs)
	}
	// removing again is a no-op
	if got := RemoveReaction(rs, 1); len(got) != 1 {
		t.Fatalf("expected no-op, got %+v", got)
	}
}

func TestAppendCommentAssignsSequentialIDs(t *testing.T) {
	var cs []docstore.Comment
	cs = AppendComment(cs, 1, "ana", "first")
	cs = AppendComment(cs, 2, "bob", "second")
	if cs[0].CommentID != 1 || cs[1].CommentID != 2 {
		t.Fatalf("unexpected ids: %d, %d", cs[0].CommentID, cs[1].CommentID)
	}
	if cs[1].Reactions == nil {
		t.Fatal("new comments must carry an empty reactions array")
	}
}

func TestFindOwnComment(t *testing.T) {
	cs := []docstore.Comment{
		{CommentID: 1, UserID: 1, Comment: "mine"},
		{CommentID: 2, UserID: 2, Comment: "theirs"},
	}
	if c := FindOwnComment(cs, 1, 1); c == nil || c.Comment != "mine" {
		t.Fatalf("expected own comment, got %+v", c)
	}
	if c := FindOwnComment(cs, 2, 1); c != nil {
		t.Fatalf("expected nil for someone else's comment, got %+v", c)
	}
	if c := FindOwnComment(cs, 9, 1); c != nil {
		t.Fatalf("expected nil for missing comment, got %+v", c)
	}
}

func TestEditCommentMarksEdited(t *testing.T) {
	cs := []docstore.Comment{{CommentID: 1, UserID: 1, Comment: "old"}}
	EditComment(&cs[0], "new")
	if cs[0].Comment != "new (edited)" {
		t.Fatalf("unexpected comment text: %q", cs[0].Comment)
	}
}

func TestRemoveComment(t *testing.T) {
	cs := []docstore.Comment{
		{CommentID: 1, UserID: 1},
		{CommentID: 2, UserID: 2},
	}
	cs = RemoveComment(cs, 1)
	if len(cs) != 1 || cs[0].CommentID != 2 {
		t.Fatalf("unexpected comments: %+v", cs)
	}
}
